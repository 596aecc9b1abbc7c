package services

import (
	"context"
	"testing"

	"storefront-api/internal/domain"
	"storefront-api/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCartService_Get_EmptyCartForNewUser(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)
	s := NewCartService(cartRepo, productRepo)

	cartRepo.On("FindByUser", mock.Anything, uint64(7)).Return(nil, nil)

	cart, err := s.Get(context.Background(), 7)

	assert.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Equal(t, uint64(7), cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestCartService_Add(t *testing.T) {
	product := &domain.Product{ID: 1, Name: "Shirt", ImageURL: "shirt.jpg", Price: 50, Stock: 10}

	tests := []struct {
		name          string
		existing      *domain.Cart
		quantity      int64
		size          string
		color         string
		setupMocks    func(*mocks.MockCartRepository, *mocks.MockProductRepository)
		expectedError error
		check         func(*testing.T, *domain.Cart)
	}{
		{
			name:     "new line snapshots catalog fields",
			existing: nil,
			quantity: 2,
			size:     "M",
			color:    "red",
			setupMocks: func(cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository) {
				productRepo.On("FindByID", mock.Anything, uint64(1)).Return(product, nil)
				cartRepo.On("FindByUser", mock.Anything, uint64(7)).Return(nil, nil)
				cartRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)
			},
			check: func(t *testing.T, cart *domain.Cart) {
				assert.Len(t, cart.Items, 1)
				assert.Equal(t, "Shirt", cart.Items[0].Name)
				assert.Equal(t, "shirt.jpg", cart.Items[0].Image)
				assert.Equal(t, float64(50), cart.Items[0].Price)
				assert.Equal(t, int64(2), cart.Items[0].Quantity)
			},
		},
		{
			name: "same product size and colour merges quantities",
			existing: &domain.Cart{UserID: 7, Items: []domain.CartItem{
				{ProductID: 1, Size: "M", Color: "red", Quantity: 1},
			}},
			quantity: 2,
			size:     "M",
			color:    "red",
			setupMocks: func(cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository) {
				productRepo.On("FindByID", mock.Anything, uint64(1)).Return(product, nil)
				cartRepo.On("FindByUser", mock.Anything, uint64(7)).Return(&domain.Cart{UserID: 7, Items: []domain.CartItem{
					{ProductID: 1, Size: "M", Color: "red", Quantity: 1},
				}}, nil)
				cartRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)
			},
			check: func(t *testing.T, cart *domain.Cart) {
				assert.Len(t, cart.Items, 1)
				assert.Equal(t, int64(3), cart.Items[0].Quantity)
			},
		},
		{
			name:     "different size gets its own line",
			quantity: 1,
			size:     "L",
			color:    "red",
			setupMocks: func(cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository) {
				productRepo.On("FindByID", mock.Anything, uint64(1)).Return(product, nil)
				cartRepo.On("FindByUser", mock.Anything, uint64(7)).Return(&domain.Cart{UserID: 7, Items: []domain.CartItem{
					{ProductID: 1, Size: "M", Color: "red", Quantity: 1},
				}}, nil)
				cartRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)
			},
			check: func(t *testing.T, cart *domain.Cart) {
				assert.Len(t, cart.Items, 2)
			},
		},
		{
			name:     "quantity above stock rejected",
			quantity: 20,
			setupMocks: func(cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository) {
				productRepo.On("FindByID", mock.Anything, uint64(1)).Return(product, nil)
			},
			expectedError: ErrInsufficientStock,
		},
		{
			name:     "unknown product rejected",
			quantity: 1,
			setupMocks: func(cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository) {
				productRepo.On("FindByID", mock.Anything, uint64(1)).Return(nil, nil)
			},
			expectedError: ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cartRepo := new(mocks.MockCartRepository)
			productRepo := new(mocks.MockProductRepository)
			s := NewCartService(cartRepo, productRepo)
			tt.setupMocks(cartRepo, productRepo)

			cart, err := s.Add(context.Background(), 7, 1, tt.quantity, tt.size, tt.color)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				tt.check(t, cart)
			}
			cartRepo.AssertExpectations(t)
			productRepo.AssertExpectations(t)
		})
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	existing := func() *domain.Cart {
		return &domain.Cart{UserID: 7, Items: []domain.CartItem{
			{ProductID: 1, Size: "M", Color: "red", Quantity: 2},
		}}
	}

	t.Run("quantity updated within stock", func(t *testing.T) {
		cartRepo := new(mocks.MockCartRepository)
		productRepo := new(mocks.MockProductRepository)
		s := NewCartService(cartRepo, productRepo)

		cartRepo.On("FindByUser", mock.Anything, uint64(7)).Return(existing(), nil)
		productRepo.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Product{ID: 1, Stock: 5}, nil)
		cartRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

		cart, err := s.UpdateQuantity(context.Background(), 7, 1, 4, "M", "red")

		assert.NoError(t, err)
		assert.Equal(t, int64(4), cart.Items[0].Quantity)
	})

	t.Run("increase beyond stock rejected", func(t *testing.T) {
		cartRepo := new(mocks.MockCartRepository)
		productRepo := new(mocks.MockProductRepository)
		s := NewCartService(cartRepo, productRepo)

		cartRepo.On("FindByUser", mock.Anything, uint64(7)).Return(existing(), nil)
		productRepo.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Product{ID: 1, Stock: 1}, nil)

		_, err := s.UpdateQuantity(context.Background(), 7, 1, 10, "M", "red")
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("item not in cart", func(t *testing.T) {
		cartRepo := new(mocks.MockCartRepository)
		productRepo := new(mocks.MockProductRepository)
		s := NewCartService(cartRepo, productRepo)

		cartRepo.On("FindByUser", mock.Anything, uint64(7)).Return(existing(), nil)

		_, err := s.UpdateQuantity(context.Background(), 7, 2, 1, "M", "red")
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})

	t.Run("no cart at all", func(t *testing.T) {
		cartRepo := new(mocks.MockCartRepository)
		productRepo := new(mocks.MockProductRepository)
		s := NewCartService(cartRepo, productRepo)

		cartRepo.On("FindByUser", mock.Anything, uint64(7)).Return(nil, nil)

		_, err := s.UpdateQuantity(context.Background(), 7, 1, 1, "M", "red")
		assert.ErrorIs(t, err, ErrCartNotFound)
	})
}

func TestCartService_Remove(t *testing.T) {
	t.Run("line removed", func(t *testing.T) {
		cartRepo := new(mocks.MockCartRepository)
		productRepo := new(mocks.MockProductRepository)
		s := NewCartService(cartRepo, productRepo)

		cartRepo.On("FindByUser", mock.Anything, uint64(7)).Return(&domain.Cart{UserID: 7, Items: []domain.CartItem{
			{ProductID: 1, Size: "M", Color: "red", Quantity: 2},
			{ProductID: 2, Size: "L", Color: "blue", Quantity: 1},
		}}, nil)
		cartRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Cart")).Return(nil)

		cart, err := s.Remove(context.Background(), 7, 1, "M", "red")

		assert.NoError(t, err)
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, uint64(2), cart.Items[0].ProductID)
	})

	t.Run("line not present", func(t *testing.T) {
		cartRepo := new(mocks.MockCartRepository)
		productRepo := new(mocks.MockProductRepository)
		s := NewCartService(cartRepo, productRepo)

		cartRepo.On("FindByUser", mock.Anything, uint64(7)).Return(&domain.Cart{UserID: 7, Items: []domain.CartItem{}}, nil)

		_, err := s.Remove(context.Background(), 7, 1, "M", "red")
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}
