package repository

import (
	"context"

	"storefront-api/internal/domain"
)

type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (*domain.Product, error)
	FindByPublicID(ctx context.Context, publicID string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindTopRated(ctx context.Context, limit int) ([]domain.Product, error)
	MaxPublicID(ctx context.Context) (string, error)
	DeleteByPublicID(ctx context.Context, publicID string) (bool, error)
	UpdateRating(ctx context.Context, id uint64, ratings float64, reviewsCount int64) error
	Count(ctx context.Context) (int64, error)
}
