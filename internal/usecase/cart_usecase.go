package usecase

import (
	"context"
	"errors"

	"wildsafari/internal/domain/model"
	repo "wildsafari/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	catalogRepo  repo.CatalogRepository
}

func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	catalogRepo repo.CatalogRepository,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		catalogRepo:  catalogRepo,
	}
}

type AddToCartInput struct {
	ProductType string
	ProductID   int64
	Quantity    int64 // 0なら1扱い
}

type AddToCartOutput struct {
	CartCount int64 `json:"cart_count"`
}

// カート明細の数量操作
const (
	CartActionIncrease = "increase"
	CartActionDecrease = "decrease"
	CartActionRemove   = "remove"
)

type CartLineResponse struct {
	ID          int64   `json:"id"`
	ProductType string  `json:"product_type"`
	ProductID   int64   `json:"product_id"`
	Quantity    int64   `json:"quantity"`
	// 参照先が削除済みなら null
	Product  *model.Product `json:"product"`
	Subtotal float64        `json:"subtotal"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total float64            `json:"total"`
}

// AddToCart はカートに追加（同一商品は数量加算）。バッジ用の行数を返す。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddToCartInput) (AddToCartOutput, error) {
	if userID <= 0 {
		return AddToCartOutput{}, NewAuthorization("unauthorized")
	}

	kind, err := model.ParseProductKind(in.ProductType)
	if err != nil {
		return AddToCartOutput{}, NewValidation("invalid product_type")
	}
	if in.ProductID <= 0 {
		return AddToCartOutput{}, NewValidation("invalid product_id")
	}

	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return AddToCartOutput{}, NewValidation("invalid quantity")
	}

	ref := model.ProductRef{Kind: kind, ID: in.ProductID}

	// 商品チェック（削除済み参照はここで弾く）
	if _, err := u.catalogRepo.ResolveProduct(ctx, ref); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return AddToCartOutput{}, NewNotFound("product")
		}
		return AddToCartOutput{}, NewStore(err)
	}

	if err := u.cartItemRepo.UpsertByUserAndProduct(ctx, userID, ref, qty); err != nil {
		return AddToCartOutput{}, NewStore(err)
	}

	count, err := u.cartItemRepo.CountByUserID(ctx, userID)
	if err != nil {
		return AddToCartOutput{}, NewStore(err)
	}

	return AddToCartOutput{CartCount: count}, nil
}

// UpdateItem は明細の数量操作（increase / decrease / remove）。
// decrease は数量1で止まる（自動削除しない。削除は remove のみ）。
func (u *CartUsecase) UpdateItem(ctx context.Context, userID int64, cartItemID int64, action string) error {
	if userID <= 0 {
		return NewAuthorization("unauthorized")
	}
	if cartItemID <= 0 {
		return NewValidation("invalid id")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewNotFound("cart item")
	}
	if err != nil {
		return NewStore(err)
	}

	// 所有チェック
	if item.UserID != userID {
		return NewAuthorization("not your cart item")
	}

	switch action {
	case CartActionIncrease:
		if err := u.cartItemRepo.UpdateQuantity(ctx, item.ID, item.Quantity+1); err != nil {
			return NewStore(err)
		}
	case CartActionDecrease:
		// 数量1なら何もしない
		if item.Quantity <= 1 {
			return nil
		}
		if err := u.cartItemRepo.UpdateQuantity(ctx, item.ID, item.Quantity-1); err != nil {
			return NewStore(err)
		}
	case CartActionRemove:
		if err := u.cartItemRepo.DeleteByID(ctx, item.ID); err != nil {
			return NewStore(err)
		}
	default:
		return NewValidation("invalid action")
	}

	return nil
}

// GetCart はカート内容と合計を返す。
// 価格はスナップショットではなくカタログの現在価格で計算する。
// 参照先が消えた明細は product=null・小計0のまま残す（自動削除しない）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewAuthorization("unauthorized")
	}

	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewStore(err)
	}

	lines := make([]CartLineResponse, 0, len(items))
	var total float64 = 0

	for _, it := range items {
		line := CartLineResponse{
			ID:          it.ID,
			ProductType: string(it.ProductKind),
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
		}

		p, err := u.catalogRepo.ResolveProduct(ctx, it.Ref())
		if err == nil {
			prod := p
			line.Product = &prod
			line.Subtotal = p.Price * float64(it.Quantity)
			total += line.Subtotal
		} else if !errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewStore(err)
		}

		lines = append(lines, line)
	}

	return CartResponse{Items: lines, Total: total}, nil
}
