package model

import "time"

// カートの明細
// 同一ユーザー×同一商品は1行のみ（追加は数量加算）。
// uniqueIndexで同時追加の重複INSERTを直列化する。
type CartItem struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64       `gorm:"not null;index;uniqueIndex:uq_cart_user_product" json:"user_id"`
	ProductKind ProductKind `gorm:"type:varchar(20);not null;column:product_type;uniqueIndex:uq_cart_user_product" json:"product_type"`
	ProductID   int64       `gorm:"not null;uniqueIndex:uq_cart_user_product" json:"product_id"`
	Quantity    int64       `gorm:"not null;default:1" json:"quantity"`
	AddedAt     time.Time   `gorm:"not null;autoCreateTime" json:"added_at"`
}

func (ci CartItem) Ref() ProductRef {
	return ProductRef{Kind: ci.ProductKind, ID: ci.ProductID}
}
