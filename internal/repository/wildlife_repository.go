package repository

import (
	"context"

	"wildsafari/internal/domain/model"
)

// 野生動物カタログの永続化（管理画面CRUD＋公開閲覧）。
type WildlifeRepository interface {
	List(ctx context.Context, limit int) ([]model.Wildlife, error)
	FindByID(ctx context.Context, id int64) (model.Wildlife, error)
	// 同カテゴリの別個体（詳細ページの「似ている動物」）
	ListSimilar(ctx context.Context, category string, excludeID int64, limit int) ([]model.Wildlife, error)
	Create(ctx context.Context, w model.Wildlife) (model.Wildlife, error)
	Update(ctx context.Context, w model.Wildlife) error
	Delete(ctx context.Context, id int64) error
}
