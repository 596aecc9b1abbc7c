package domain

import "time"

type Wishlist struct {
	ID         uint64    `json:"-" gorm:"primaryKey;autoIncrement"`
	UserID     uint64    `json:"userId" gorm:"uniqueIndex;not null"`
	ProductIDs []uint64  `json:"products" gorm:"serializer:json"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
