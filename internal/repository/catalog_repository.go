package repository

import (
	"context"
	"errors"

	"wildsafari/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// CatalogRepository は商品参照（種別＋ID）の解決だけを約束する。
// この層からカタログを書き換えることはない。
type CatalogRepository interface {
	// 参照先が存在しなければ ErrNotFound。
	ResolveProduct(ctx context.Context, ref model.ProductRef) (model.Product, error)
	CountByKind(ctx context.Context, kind model.ProductKind) (int64, error)
}
