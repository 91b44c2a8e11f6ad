package model

// 注文明細。price は購入時点の商品価格スナップショット。
// カタログ側の価格が後で変わっても履歴は変わらない。
type OrderItem struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64       `gorm:"not null;index" json:"order_id"`
	ProductKind ProductKind `gorm:"type:varchar(20);not null;column:product_type" json:"product_type"`
	ProductID   int64       `gorm:"not null" json:"product_id"`
	Quantity    int64       `gorm:"not null;default:1" json:"quantity"`
	Price       float64     `gorm:"not null" json:"price"`
}

func (oi OrderItem) Ref() ProductRef {
	return ProductRef{Kind: oi.ProductKind, ID: oi.ProductID}
}
