package mysql

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Save(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *userRepo) FindByEmailOrName(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "email = ? OR name = ?", username, username)
}

func (r *userRepo) FindByVerificationCode(ctx context.Context, code string) (*domain.User, error) {
	return r.findOne(ctx, "verification_code = ?", code)
}

func (r *userRepo) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return r.findOne(ctx, "reset_token = ?", token)
}

func (r *userRepo) FindByIDs(ctx context.Context, ids []uint64) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, err
}
