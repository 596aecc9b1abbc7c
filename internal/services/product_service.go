package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrProductNotFound = errors.New("product not found")

const productCacheTTL = time.Minute

type ProductInput struct {
	Name             string
	Category         string
	Price            float64
	DiscountedPrice  float64
	ShortDescription string
	Description      string
	Stock            int64
	Colors           []domain.ColorStock
	Images           []string
	ImageURL         string
}

type ProductService struct {
	products    repository.ProductRepository
	redisClient *redis.Client
	log         *zap.SugaredLogger
}

func NewProductService(products repository.ProductRepository, log *zap.SugaredLogger) *ProductService {
	return &ProductService{products: products, log: log}
}

func (s *ProductService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) TopRated(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindTopRated(ctx, 10)
}

// GetByPublicID serves catalog reads through a short-lived redis cache.
func (s *ProductService) GetByPublicID(ctx context.Context, publicID string) (*domain.Product, error) {
	cacheKey := "product:" + publicID

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var p domain.Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	product, err := s.products.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(product); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}

	return product, nil
}

func (s *ProductService) Create(ctx context.Context, input ProductInput) (*domain.Product, error) {
	publicID, err := s.nextPublicID(ctx)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		PublicID:         publicID,
		Name:             input.Name,
		Category:         input.Category,
		Price:            input.Price,
		DiscountedPrice:  input.DiscountedPrice,
		ShortDescription: input.ShortDescription,
		Description:      input.Description,
		Stock:            input.Stock,
		Colors:           input.Colors,
		Images:           input.Images,
		ImageURL:         input.ImageURL,
		Status:           stockStatus(input.Stock),
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, publicID string, input ProductInput) (*domain.Product, error) {
	product, err := s.products.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	product.Name = input.Name
	product.Category = input.Category
	product.Price = input.Price
	product.DiscountedPrice = input.DiscountedPrice
	product.ShortDescription = input.ShortDescription
	product.Description = input.Description
	product.Stock = input.Stock
	product.Colors = input.Colors
	product.Images = input.Images
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}
	product.Status = stockStatus(input.Stock)

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx, publicID)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, publicID string) error {
	deleted, err := s.products.DeleteByPublicID(ctx, publicID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	s.invalidate(ctx, publicID)
	return nil
}

// nextPublicID issues sequential 4-digit catalog ids starting at 1000.
func (s *ProductService) nextPublicID(ctx context.Context) (string, error) {
	last, err := s.products.MaxPublicID(ctx)
	if err != nil {
		return "", err
	}
	if last == "" {
		return "1000", nil
	}
	n, err := strconv.Atoi(last)
	if err != nil {
		return "1000", nil
	}
	return fmt.Sprintf("%04d", n+1), nil
}

func (s *ProductService) invalidate(ctx context.Context, publicID string) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, "product:"+publicID)
	}
}

func stockStatus(stock int64) domain.ProductStatus {
	if stock > 0 {
		return domain.ProductInStock
	}
	return domain.ProductOutOfStock
}
