package repository

import (
	"context"

	"storefront-api/internal/domain"
)

type WishlistRepository interface {
	FindByUser(ctx context.Context, userID uint64) (*domain.Wishlist, error)
	Save(ctx context.Context, wishlist *domain.Wishlist) error
}
