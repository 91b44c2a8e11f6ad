package usecase

import (
	"context"
	"errors"
	"time"

	"wildsafari/internal/domain/model"
	repo "wildsafari/internal/repository"
)

// OrderQueryUsecase は注文の読み取り専用アクセス。
type OrderQueryUsecase struct {
	tx repo.TransactionManager
}

func NewOrderQueryUsecase(tx repo.TransactionManager) *OrderQueryUsecase {
	return &OrderQueryUsecase{tx: tx}
}

type OrderItemResponse struct {
	ID          int64   `json:"id"`
	ProductType string  `json:"product_type"`
	ProductID   int64   `json:"product_id"`
	Quantity    int64   `json:"quantity"`
	// スナップショット価格。カタログの現在価格とは独立
	Price float64 `json:"price"`
	// 参照先が削除済みなら null
	Product *model.Product `json:"product"`
}

type OrderResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"user_id"`
	TotalAmount     float64             `json:"total_amount"`
	PaymentStatus   string              `json:"payment_status"`
	PaymentMethod   string              `json:"payment_method"`
	ShippingAddress string              `json:"shipping_address"`
	ShippingCity    string              `json:"shipping_city"`
	ShippingState   string              `json:"shipping_state"`
	ShippingPincode string              `json:"shipping_pincode"`
	CreatedAt       time.Time           `json:"created_at"`
	Items           []OrderItemResponse `json:"items"`
}

// 管理者一覧は所有ユーザーも同梱する
type AdminOrderResponse struct {
	OrderResponse
	UserEmail string `json:"user_email"`
}

// ListForUser は本人の注文を作成日時の降順で返す（明細・商品も解決済み）。
func (u *OrderQueryUsecase) ListForUser(ctx context.Context, userID int64) ([]OrderResponse, error) {
	if userID <= 0 {
		return []OrderResponse{}, NewAuthorization("unauthorized")
	}

	var outs []OrderResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewStore(err)
		}

		outs = make([]OrderResponse, 0, len(orders))
		for _, o := range orders {
			resp, err := buildOrderResponse(ctx, r, o)
			if err != nil {
				return err
			}
			outs = append(outs, resp)
		}
		return nil
	})

	if err != nil {
		return []OrderResponse{}, err
	}
	return outs, nil
}

// ListAll は管理者用。全ユーザーの注文に所有ユーザーを添えて返す。
func (u *OrderQueryUsecase) ListAll(ctx context.Context) ([]AdminOrderResponse, error) {
	var outs []AdminOrderResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListAll(ctx)
		if err != nil {
			return NewStore(err)
		}

		outs = make([]AdminOrderResponse, 0, len(orders))
		for _, o := range orders {
			resp, err := buildOrderResponse(ctx, r, o)
			if err != nil {
				return err
			}

			admin := AdminOrderResponse{OrderResponse: resp}

			// 注文は残っていてもユーザーが消えている場合は空のまま
			user, err := r.Users().FindByID(ctx, o.UserID)
			if err == nil && user != nil {
				admin.UserEmail = user.Email
			} else if err != nil && !errors.Is(err, repo.ErrUserNotFound) {
				return NewStore(err)
			}

			outs = append(outs, admin)
		}
		return nil
	})

	if err != nil {
		return []AdminOrderResponse{}, err
	}
	return outs, nil
}

// GetOne は1件取得。本人か管理者だけが見られる。
func (u *OrderQueryUsecase) GetOne(ctx context.Context, orderID int64, requestingUserID int64, isAdmin bool) (OrderResponse, error) {
	if orderID <= 0 {
		return OrderResponse{}, NewValidation("invalid id")
	}

	var out OrderResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFound("order")
		}
		if err != nil {
			return NewStore(err)
		}

		if o.UserID != requestingUserID && !isAdmin {
			return NewAuthorization("not your order")
		}

		out, err = buildOrderResponse(ctx, r, o)
		return err
	})

	if err != nil {
		return OrderResponse{}, err
	}
	return out, nil
}

// 明細と商品参照を解決してレスポンスを組む
func buildOrderResponse(ctx context.Context, r repo.TxRepos, o model.Order) (OrderResponse, error) {
	items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
	if err != nil {
		return OrderResponse{}, NewStore(err)
	}

	respItems := make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		line := OrderItemResponse{
			ID:          it.ID,
			ProductType: string(it.ProductKind),
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			Price:       it.Price,
		}

		p, err := r.Catalog().ResolveProduct(ctx, it.Ref())
		if err == nil {
			prod := p
			line.Product = &prod
		} else if !errors.Is(err, repo.ErrNotFound) {
			return OrderResponse{}, NewStore(err)
		}

		respItems = append(respItems, line)
	}

	return OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		TotalAmount:     o.TotalAmount,
		PaymentStatus:   o.PaymentStatus,
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
		ShippingCity:    o.ShippingCity,
		ShippingState:   o.ShippingState,
		ShippingPincode: o.ShippingPincode,
		CreatedAt:       o.CreatedAt,
		Items:           respItems,
	}, nil
}
