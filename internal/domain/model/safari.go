package model

import "time"

type Safari struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Duration    string    `gorm:"type:varchar(50)" json:"duration"`
	SafariCount int64     `json:"safari_count"`
	Tier        string    `gorm:"type:varchar(30);index" json:"tier"`
	ImageURL    string    `gorm:"type:varchar(300)" json:"image_url"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// Product はカタログ解決用の共通ビューへ変換する。
func (s Safari) Product() Product {
	return Product{
		Kind:        KindSafari,
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		Price:       s.Price,
		Duration:    s.Duration,
		SafariCount: s.SafariCount,
		Tier:        s.Tier,
	}
}
