package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID    uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"not null"`
	Email string `json:"email" gorm:"uniqueIndex;not null"`
	Phone string `json:"phone" gorm:"not null"`

	// Bcrypt hash, never serialized.
	Password string `json:"-" gorm:"not null"`

	IsVerified             bool       `json:"isVerified"`
	VerificationCode       string     `json:"-" gorm:"size:8"`
	VerificationCodeExpiry *time.Time `json:"-"`
	ResetToken             string     `json:"-" gorm:"size:64;index"`
	ResetTokenExpiry       *time.Time `json:"-"`

	Role      Role      `json:"role" gorm:"size:10;default:'user'"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
