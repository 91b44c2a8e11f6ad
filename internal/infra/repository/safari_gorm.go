package repository

import (
	"context"
	"errors"

	"wildsafari/internal/domain/model"
	repo "wildsafari/internal/repository"

	"gorm.io/gorm"
)

type SafariGormRepository struct {
	db *gorm.DB
}

// DI
func NewSafariGormRepository(db *gorm.DB) *SafariGormRepository {
	return &SafariGormRepository{db: db}
}

func (r *SafariGormRepository) List(ctx context.Context, limit int) ([]model.Safari, error) {
	var items []model.Safari

	q := r.db.WithContext(ctx).Order("id asc")
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&items).Error; err != nil {
		return []model.Safari{}, err
	}
	return items, nil
}

func (r *SafariGormRepository) FindByID(ctx context.Context, id int64) (model.Safari, error) {
	var s model.Safari

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Safari{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Safari{}, err
	}
	return s, nil
}

// 同tierで自分以外を返す
func (r *SafariGormRepository) ListSimilar(ctx context.Context, tier string, excludeID int64, limit int) ([]model.Safari, error) {
	var items []model.Safari

	err := r.db.WithContext(ctx).
		Where("tier = ? AND id <> ?", tier, excludeID).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return []model.Safari{}, err
	}
	return items, nil
}

func (r *SafariGormRepository) Create(ctx context.Context, s model.Safari) (model.Safari, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Safari{}, err
	}
	return s, nil
}

func (r *SafariGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Safari{}, id)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

