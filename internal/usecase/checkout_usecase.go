package usecase

import (
	"context"
	"errors"

	"wildsafari/internal/domain/model"
	repo "wildsafari/internal/repository"
)

// CheckoutUsecase はカートを注文へ確定する。
type CheckoutUsecase struct {
	tx repo.TransactionManager
}

func NewCheckoutUsecase(tx repo.TransactionManager) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx}
}

// 配送先。全て任意の自由入力で、形式チェックはしない。
type ShippingInput struct {
	Address string
	City    string
	State   string
	Pincode string
}

type CheckoutOutput struct {
	OrderID     int64   `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
}

// Checkout はカート全明細を1つの注文に変換してカートを空にする。
// 注文作成・明細作成・カート削除は1トランザクション。途中で失敗したら全部戻す。
//
// 価格は確定時点のカタログ価格をスナップショットする。参照先が消えた明細は
// 価格0のまま注文明細に残す（何を注文したかの記録は消さない）。
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, in ShippingInput) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, NewAuthorization("unauthorized")
	}

	var out CheckoutOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cartItems, err := r.CartItems().ListByUserID(ctx, userID)
		if err != nil {
			return NewStore(err)
		}
		if len(cartItems) == 0 {
			return &EmptyCartError{}
		}

		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var total float64 = 0

		for _, ci := range cartItems {
			// 確定時点の価格。削除済み参照は0円で記録
			var price float64 = 0

			p, err := r.Catalog().ResolveProduct(ctx, ci.Ref())
			if err == nil {
				price = p.Price
			} else if !errors.Is(err, repo.ErrNotFound) {
				return NewStore(err)
			}

			orderItems = append(orderItems, model.OrderItem{
				ProductKind: ci.ProductKind,
				ProductID:   ci.ProductID,
				Quantity:    ci.Quantity,
				Price:       price,
			})

			total += price * float64(ci.Quantity)
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:          userID,
			TotalAmount:     total,
			PaymentStatus:   model.PaymentStatusPending,
			ShippingAddress: in.Address,
			ShippingCity:    in.City,
			ShippingState:   in.State,
			ShippingPincode: in.Pincode,
		})
		if err != nil {
			return NewStore(err)
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewStore(err)
		}

		// カートを空にする（再注文防止）
		if err := r.CartItems().DeleteByUserID(ctx, userID); err != nil {
			return NewStore(err)
		}

		out = CheckoutOutput{OrderID: orderID, TotalAmount: total}
		return nil
	})

	if err != nil {
		return CheckoutOutput{}, err
	}
	return out, nil
}
