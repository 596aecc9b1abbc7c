package mysql

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"

	"gorm.io/gorm"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) FindByUser(ctx context.Context, userID uint64) (*domain.Cart, error) {
	var c domain.Cart
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *cartRepo) Save(ctx context.Context, cart *domain.Cart) error {
	return r.db.WithContext(ctx).Save(cart).Error
}

func (r *cartRepo) Clear(ctx context.Context, userID uint64) error {
	cart, err := r.FindByUser(ctx, userID)
	if err != nil {
		return err
	}
	if cart == nil {
		cart = &domain.Cart{UserID: userID}
	}
	cart.Items = []domain.CartItem{}
	return r.db.WithContext(ctx).Save(cart).Error
}
