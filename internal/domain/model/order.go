package model

import "time"

// payment_status は自由文字列。この層では遷移させない（pending / completed / failed）。
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// 注文。total_amount はチェックアウト時点のスナップショットで、以後再計算しない。
type Order struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64     `gorm:"not null;index" json:"user_id"`
	TotalAmount     float64   `gorm:"not null" json:"total_amount"`
	PaymentStatus   string    `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	PaymentMethod   string    `gorm:"type:varchar(50)" json:"payment_method"`
	ShippingAddress string    `gorm:"type:text" json:"shipping_address"`
	ShippingCity    string    `gorm:"type:varchar(100)" json:"shipping_city"`
	ShippingState   string    `gorm:"type:varchar(100)" json:"shipping_state"`
	ShippingPincode string    `gorm:"type:varchar(20)" json:"shipping_pincode"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
