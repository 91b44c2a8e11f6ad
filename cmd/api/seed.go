package main

import (
	"errors"

	"wildsafari/internal/domain/model"
	auth "wildsafari/internal/usecase/auth_usecase"

	"gorm.io/gorm"
)

// 開発環境の初期データ（空のときだけ入れる）
func seedSampleData(db *gorm.DB, hasher auth.PasswordHasher) error {
	// 管理ユーザー
	var admin model.User
	err := db.Where("email = ?", "admin@wildlife.com").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, err := hasher.Hash("change-me-in-prod")
		if err != nil {
			return err
		}
		if err := db.Create(&model.User{
			Email:        "admin@wildlife.com",
			PasswordHash: hashed,
			IsAdmin:      true,
		}).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var wildlifeCount int64
	if err := db.Model(&model.Wildlife{}).Count(&wildlifeCount).Error; err != nil {
		return err
	}
	if wildlifeCount == 0 {
		sample := []model.Wildlife{
			{
				Title:       "Snow Leopard",
				Description: "The snow leopard, found in India's Himalayas, is an elusive big cat with thick fur and a long tail, perfectly adapted to cold, rocky terrains.",
				ImageURL:    "snow-leopard.jpg",
				Category:    "Big Cats",
				Price:       2999.99,
				Location:    "Himalayas",
				Status:      "Available",
			},
			{
				Title:       "Himalayan Brown Bear",
				Description: "The brown bear, found in the Himalayan and northern regions of India, is a large, powerful mammal with thick fur, adapted to rugged terrains and cold climates.",
				ImageURL:    "brown-bear.jpg",
				Category:    "Bears",
				Price:       2499.99,
				Location:    "Himalayas",
				Status:      "Available",
			},
			{
				Title:       "Gee's Golden Langur",
				Description: "Gee's golden langur, native to the forests of Assam in India and Bhutan, is known for its striking golden fur. This rare and endangered primate resides in high canopies.",
				ImageURL:    "golden-langur.jpg",
				Category:    "Primates",
				Price:       1999.99,
				Location:    "Assam",
				Status:      "Available",
			},
		}
		if err := db.Create(&sample).Error; err != nil {
			return err
		}
	}

	var safariCount int64
	if err := db.Model(&model.Safari{}).Count(&safariCount).Error; err != nil {
		return err
	}
	if safariCount == 0 {
		sample := []model.Safari{
			{
				Name:        "Wildlife pitstop - Kanha",
				Description: "Experience the majestic tigers of Kanha National Park",
				Price:       20110,
				Duration:    "1 Nights, 2 Days",
				SafariCount: 1,
				Tier:        "Premium",
				ImageURL:    "kanha-safari.jpg",
			},
			{
				Name:        "02 Safaris with 1N stay - Corbett",
				Description: "Thrilling jungle safari at Jim Corbett National Park",
				Price:       7100,
				Duration:    "1 Nights, 2 Days",
				SafariCount: 2,
				Tier:        "Economical",
				ImageURL:    "corbett-safari.jpg",
			},
			{
				Name:        "Kuno Weekend Safari Getaway",
				Description: "Weekend adventure at Kuno National Park",
				Price:       22000,
				Duration:    "1 Nights, 2 Days",
				SafariCount: 2,
				Tier:        "Standard",
				ImageURL:    "kuno-safari.jpg",
			},
		}
		if err := db.Create(&sample).Error; err != nil {
			return err
		}
	}

	return nil
}
