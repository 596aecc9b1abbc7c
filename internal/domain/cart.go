package domain

import "time"

type CartItem struct {
	ProductID uint64  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int64   `json:"quantity"`
}

// Cart is created lazily on first add. One cart per user; on a successful
// order placement the items are emptied, the row is kept.
type Cart struct {
	ID        uint64     `json:"-" gorm:"primaryKey;autoIncrement"`
	UserID    uint64     `json:"userId" gorm:"uniqueIndex;not null"`
	Items     []CartItem `json:"items" gorm:"serializer:json"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}
