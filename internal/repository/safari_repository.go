package repository

import (
	"context"

	"wildsafari/internal/domain/model"
)

// サファリパッケージの永続化。
type SafariRepository interface {
	List(ctx context.Context, limit int) ([]model.Safari, error)
	FindByID(ctx context.Context, id int64) (model.Safari, error)
	// 同tierの別パッケージ（詳細ページの類似表示）
	ListSimilar(ctx context.Context, tier string, excludeID int64, limit int) ([]model.Safari, error)
	Create(ctx context.Context, s model.Safari) (model.Safari, error)
	Delete(ctx context.Context, id int64) error
}
