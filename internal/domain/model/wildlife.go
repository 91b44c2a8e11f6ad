package model

import "time"

type Wildlife struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ImageURL    string    `gorm:"type:varchar(300)" json:"image_url"`
	Category    string    `gorm:"type:varchar(50);index" json:"category"`
	Price       float64   `gorm:"not null" json:"price"`
	Location    string    `gorm:"type:varchar(100)" json:"location"`
	Status      string    `gorm:"type:varchar(20);default:'Available'" json:"status"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// Product はカタログ解決用の共通ビューへ変換する。
func (w Wildlife) Product() Product {
	return Product{
		Kind:        KindWildlife,
		ID:          w.ID,
		Name:        w.Title,
		Description: w.Description,
		ImageURL:    w.ImageURL,
		Price:       w.Price,
		Category:    w.Category,
		Location:    w.Location,
		Status:      w.Status,
	}
}
