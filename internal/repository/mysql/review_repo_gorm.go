package mysql

import (
	"context"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"

	"gorm.io/gorm"
)

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Save(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepo) FindByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).
		Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *reviewRepo) ExistsByUserAndProduct(ctx context.Context, userID uint64, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).Count(&count).Error
	return count > 0, err
}

func (r *reviewRepo) FindAll(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *reviewRepo) DeleteByID(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Review{}, id)
	return res.RowsAffected > 0, res.Error
}
