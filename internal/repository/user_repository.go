package repository

import (
	"context"

	"storefront-api/internal/domain"
)

type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByEmailOrName(ctx context.Context, username string) (*domain.User, error)
	FindByVerificationCode(ctx context.Context, code string) (*domain.User, error)
	FindByResetToken(ctx context.Context, token string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]domain.User, error)
}
