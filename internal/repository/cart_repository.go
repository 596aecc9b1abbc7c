package repository

import (
	"context"

	"storefront-api/internal/domain"
)

type CartRepository interface {
	FindByUser(ctx context.Context, userID uint64) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	// Clear empties the cart's items, creating an empty cart if none exists.
	Clear(ctx context.Context, userID uint64) error
}
