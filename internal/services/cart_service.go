package services

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"
)

var (
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartItemNotFound  = errors.New("item not found in cart")
	ErrInsufficientStock = errors.New("not enough stock")
)

type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// Get never 404s; a user without a cart gets an empty one.
func (s *CartService) Get(ctx context.Context, userID uint64) (*domain.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
	}
	return cart, nil
}

// Add merges with an existing line for the same product/size/colour,
// snapshotting catalog name, image and price on first add.
func (s *CartService) Add(ctx context.Context, userID, productID uint64, quantity int64, size, color string) (*domain.Cart, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.Stock < quantity {
		return nil, ErrInsufficientStock
	}

	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	}

	merged := false
	for i := range cart.Items {
		item := &cart.Items[i]
		if item.ProductID == productID && item.Size == size && item.Color == color {
			item.Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: productID,
			Name:      product.Name,
			Image:     product.ImageURL,
			Price:     product.Price,
			Size:      size,
			Color:     color,
			Quantity:  quantity,
		})
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID uint64, quantity int64, size, color string) (*domain.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	var item *domain.CartItem
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID && cart.Items[i].Size == size && cart.Items[i].Color == color {
			item = &cart.Items[i]
			break
		}
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.Stock < quantity-item.Quantity {
		return nil, ErrInsufficientStock
	}

	item.Quantity = quantity
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Remove(ctx context.Context, userID, productID uint64, size, color string) (*domain.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID && cart.Items[i].Size == size && cart.Items[i].Color == color {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrCartItemNotFound
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
