package services

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrReviewNotFound    = errors.New("review not found")
	ErrReviewNotAllowed  = errors.New("you can only review products you have ordered")
	ErrAlreadyReviewed   = errors.New("you have already reviewed this product")
	ErrReviewBadProduct  = errors.New("product not found for given productId")
	ErrReviewMissingData = errors.New("all review fields are required")
)

type ReviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	log      *zap.SugaredLogger
}

func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository, orders repository.OrderRepository, log *zap.SugaredLogger) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, orders: orders, log: log}
}

// Add accepts one review per purchaser per product, and only for products
// the purchaser has actually ordered. After saving it refreshes the
// product's rating average and review count.
func (s *ReviewService) Add(ctx context.Context, reviewer domain.User, productID, productName string, rating int, text string) (*domain.Review, error) {
	if productID == "" || productName == "" || rating == 0 || text == "" {
		return nil, ErrReviewMissingData
	}

	product, err := s.products.FindByPublicID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrReviewBadProduct
	}

	ordered, err := s.hasOrdered(ctx, reviewer.ID, product.ID)
	if err != nil {
		return nil, err
	}
	if !ordered {
		return nil, ErrReviewNotAllowed
	}

	exists, err := s.reviews.ExistsByUserAndProduct(ctx, reviewer.ID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	review := &domain.Review{
		ProductID:   productID,
		ProductName: productName,
		UserID:      reviewer.ID,
		UserName:    reviewer.Name,
		Rating:      rating,
		Text:        text,
	}
	if err := s.reviews.Save(ctx, review); err != nil {
		return nil, err
	}

	if err := s.refreshProductRating(ctx, product.ID, productID); err != nil {
		s.log.Warnw("failed to refresh product rating", "productId", productID, "error", err)
	}

	return review, nil
}

func (s *ReviewService) hasOrdered(ctx context.Context, userID, productID uint64) (bool, error) {
	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, o := range orders {
		for _, item := range o.Items {
			if item.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *ReviewService) refreshProductRating(ctx context.Context, productID uint64, productPublicID string) error {
	reviews, err := s.reviews.FindByProduct(ctx, productPublicID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return s.products.UpdateRating(ctx, productID, avg, int64(len(reviews)))
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	return s.reviews.FindByProduct(ctx, productID)
}

func (s *ReviewService) ListAll(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.FindAll(ctx)
}

func (s *ReviewService) Delete(ctx context.Context, id uint64) error {
	deleted, err := s.reviews.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrReviewNotFound
	}
	return nil
}
