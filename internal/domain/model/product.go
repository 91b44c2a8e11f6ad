package model

import "errors"

// 商品種別（wildlife / safari）
type ProductKind string

const (
	KindWildlife ProductKind = "wildlife"
	KindSafari   ProductKind = "safari"
)

var ErrInvalidProductKind = errors.New("invalid product kind")

// ParseProductKind は外部入力の種別文字列を検証する。
func ParseProductKind(s string) (ProductKind, error) {
	switch ProductKind(s) {
	case KindWildlife, KindSafari:
		return ProductKind(s), nil
	default:
		return "", ErrInvalidProductKind
	}
}

// ProductRef はカート・注文明細が持つ商品参照。
// 外部キーではなくタグ付きのペア（種別＋ID）。参照先は削除済みの可能性がある。
type ProductRef struct {
	Kind ProductKind `json:"product_type"`
	ID   int64       `json:"product_id"`
}

// Product は種別を問わない解決済みの読み取りビュー。
// Wildlife / Safari のどちらかをカタログから引いた結果をまとめる。
type Product struct {
	Kind        ProductKind `json:"product_type"`
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageURL    string      `json:"image_url"`
	Price       float64     `json:"price"`

	// wildlife のみ
	Category string `json:"category,omitempty"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status,omitempty"`

	// safari のみ
	Duration    string `json:"duration,omitempty"`
	SafariCount int64  `json:"safari_count,omitempty"`
	Tier        string `json:"tier,omitempty"`
}

func (p Product) Ref() ProductRef {
	return ProductRef{Kind: p.Kind, ID: p.ID}
}
