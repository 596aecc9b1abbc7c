package domain

import "time"

type Review struct {
	ID uint64 `json:"id" gorm:"primaryKey;autoIncrement"`

	// Public product id, same identifier the catalog exposes.
	ProductID   string `json:"productId" gorm:"size:8;not null;uniqueIndex:idx_review_user_product"`
	ProductName string `json:"productName" gorm:"not null"`

	UserID   uint64 `json:"userId" gorm:"not null;uniqueIndex:idx_review_user_product"`
	UserName string `json:"userName" gorm:"not null"`

	Rating    int       `json:"rating" gorm:"not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
