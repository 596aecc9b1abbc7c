package mysql

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Save(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByPublicID(ctx context.Context, publicID string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *productRepo) FindTopRated(ctx context.Context, limit int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).Order("ratings DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *productRepo) MaxPublicID(ctx context.Context) (string, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).
		Order("CAST(public_id AS UNSIGNED) DESC").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return p.PublicID, nil
}

func (r *productRepo) DeleteByPublicID(ctx context.Context, publicID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("public_id = ?", publicID).Delete(&domain.Product{})
	return res.RowsAffected > 0, res.Error
}

func (r *productRepo) UpdateRating(ctx context.Context, id uint64, ratings float64, reviewsCount int64) error {
	return r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).
		Updates(map[string]any{"ratings": ratings, "reviews_count": reviewsCount}).Error
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error
	return count, err
}
