package mysql

import (
	"context"
	"errors"
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepo) Update(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepo) FindByPublicID(ctx context.Context, publicID string) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) ExistsByPublicID(ctx context.Context, publicID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("public_id = ?", publicID).Count(&count).Error
	return count > 0, err
}

func (r *orderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *orderRepo) FindByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *orderRepo) FindCreatedSince(ctx context.Context, since time.Time) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).Where("created_at >= ?", since).Find(&out).Error
	return out, err
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepo) SumFinalTotal(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Select("COALESCE(SUM(final_total), 0)").Scan(&total).Error
	return total, err
}
