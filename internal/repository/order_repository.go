package repository

import (
	"context"
	"time"

	"storefront-api/internal/domain"
)

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	FindByPublicID(ctx context.Context, publicID string) (*domain.Order, error)
	ExistsByPublicID(ctx context.Context, publicID string) (bool, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByUser(ctx context.Context, userID uint64) ([]domain.Order, error)
	FindCreatedSince(ctx context.Context, since time.Time) ([]domain.Order, error)
	Count(ctx context.Context) (int64, error)
	SumFinalTotal(ctx context.Context) (float64, error)
}
