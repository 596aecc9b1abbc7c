package repository

import (
	"context"

	"storefront-api/internal/domain"
)

type ReviewRepository interface {
	Save(ctx context.Context, review *domain.Review) error
	FindByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	ExistsByUserAndProduct(ctx context.Context, userID uint64, productID string) (bool, error)
	FindAll(ctx context.Context) ([]domain.Review, error)
	DeleteByID(ctx context.Context, id uint64) (bool, error)
}
