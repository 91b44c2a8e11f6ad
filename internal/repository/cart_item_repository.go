package repository

import (
	"context"

	"wildsafari/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	// 同一商品は数量加算（1ユーザー×1商品は1行のみ）
	UpsertByUserAndProduct(ctx context.Context, userID int64, ref model.ProductRef, addQty int64) error
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	// チェックアウト確定・ユーザー削除時の全消し
	DeleteByUserID(ctx context.Context, userID int64) error
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}
