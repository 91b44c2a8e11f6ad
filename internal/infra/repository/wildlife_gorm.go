package repository

import (
	"context"
	"errors"

	"wildsafari/internal/domain/model"
	repo "wildsafari/internal/repository"

	"gorm.io/gorm"
)

type WildlifeGormRepository struct {
	db *gorm.DB
}

// DI
func NewWildlifeGormRepository(db *gorm.DB) *WildlifeGormRepository {
	return &WildlifeGormRepository{db: db}
}

// limit <= 0 なら全件
func (r *WildlifeGormRepository) List(ctx context.Context, limit int) ([]model.Wildlife, error) {
	var items []model.Wildlife

	q := r.db.WithContext(ctx).Order("id asc")
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&items).Error; err != nil {
		return []model.Wildlife{}, err
	}
	return items, nil
}

func (r *WildlifeGormRepository) FindByID(ctx context.Context, id int64) (model.Wildlife, error) {
	var w model.Wildlife

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Wildlife{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Wildlife{}, err
	}
	return w, nil
}

// 同カテゴリで自分以外を返す
func (r *WildlifeGormRepository) ListSimilar(ctx context.Context, category string, excludeID int64, limit int) ([]model.Wildlife, error) {
	var items []model.Wildlife

	err := r.db.WithContext(ctx).
		Where("category = ? AND id <> ?", category, excludeID).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return []model.Wildlife{}, err
	}
	return items, nil
}

func (r *WildlifeGormRepository) Create(ctx context.Context, w model.Wildlife) (model.Wildlife, error) {
	if err := r.db.WithContext(ctx).Create(&w).Error; err != nil {
		return model.Wildlife{}, err
	}
	return w, nil
}

func (r *WildlifeGormRepository) Update(ctx context.Context, w model.Wildlife) error {
	res := r.db.WithContext(ctx).
		Model(&model.Wildlife{}).
		Where("id = ?", w.ID).
		Updates(map[string]interface{}{
			"title":       w.Title,
			"description": w.Description,
			"image_url":   w.ImageURL,
			"category":    w.Category,
			"price":       w.Price,
			"location":    w.Location,
			"status":      w.Status,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// カート・注文の参照は残る（遅延解決で欠落を許容する）
func (r *WildlifeGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Wildlife{}, id)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

