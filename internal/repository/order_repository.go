package repository

import (
	"context"

	"wildsafari/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// 作成日時の降順
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	// 管理者用・全ユーザー分を降順
	ListAll(ctx context.Context) ([]model.Order, error)
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)
	// 注文削除は明細を道連れにする（リポジトリ層の明示カスケード）
	Delete(ctx context.Context, orderID int64) error
	DeleteByUserID(ctx context.Context, userID int64) error
}
