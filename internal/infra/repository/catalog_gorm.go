package repository

import (
	"context"
	"errors"

	"wildsafari/internal/domain/model"
	repo "wildsafari/internal/repository"

	"gorm.io/gorm"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

// DI
func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// 種別タグで分岐して参照先を引く。無ければ repo.ErrNotFound。
func (r *CatalogGormRepository) ResolveProduct(ctx context.Context, ref model.ProductRef) (model.Product, error) {
	switch ref.Kind {
	case model.KindWildlife:
		var w model.Wildlife
		err := r.db.WithContext(ctx).Where("id = ?", ref.ID).First(&w).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Product{}, repo.ErrNotFound
		}
		if err != nil {
			return model.Product{}, err
		}
		return w.Product(), nil

	case model.KindSafari:
		var s model.Safari
		err := r.db.WithContext(ctx).Where("id = ?", ref.ID).First(&s).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Product{}, repo.ErrNotFound
		}
		if err != nil {
			return model.Product{}, err
		}
		return s.Product(), nil

	default:
		return model.Product{}, repo.ErrNotFound
	}
}

func (r *CatalogGormRepository) CountByKind(ctx context.Context, kind model.ProductKind) (int64, error) {
	var count int64
	var err error

	switch kind {
	case model.KindWildlife:
		err = r.db.WithContext(ctx).Model(&model.Wildlife{}).Count(&count).Error
	case model.KindSafari:
		err = r.db.WithContext(ctx).Model(&model.Safari{}).Count(&count).Error
	default:
		return 0, repo.ErrNotFound
	}

	if err != nil {
		return 0, err
	}
	return count, nil
}
