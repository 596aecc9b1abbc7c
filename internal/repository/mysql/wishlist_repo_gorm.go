package mysql

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"

	"gorm.io/gorm"
)

type wishlistRepo struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepo{db: db}
}

func (r *wishlistRepo) FindByUser(ctx context.Context, userID uint64) (*domain.Wishlist, error) {
	var w domain.Wishlist
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *wishlistRepo) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	return r.db.WithContext(ctx).Save(wishlist).Error
}
