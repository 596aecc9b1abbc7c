package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newOrderServiceForTest() (*OrderService, *mocks.MockOrderRepository, *mocks.MockProductRepository, *mocks.MockCartRepository, *mocks.MockUserRepository, *mocks.MockPublisher) {
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)
	cartRepo := new(mocks.MockCartRepository)
	userRepo := new(mocks.MockUserRepository)
	pub := new(mocks.MockPublisher)
	s := NewOrderService(orderRepo, productRepo, cartRepo, userRepo, pub, zap.NewNop().Sugar())
	return s, orderRepo, productRepo, cartRepo, userRepo, pub
}

func testPurchaser() domain.User {
	return domain.User{ID: 7, Name: "Ali", Email: "ali@example.com"}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	items := []domain.OrderItem{{ProductID: 1, Name: "Shirt", Price: 50, Quantity: 2}}
	billing := domain.BillingDetails{Email: "ali@example.com"}

	tests := []struct {
		name          string
		input         PlaceOrderInput
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockProductRepository, *mocks.MockCartRepository, *mocks.MockPublisher)
		expectedError error
		checkOrder    func(*testing.T, *domain.Order)
	}{
		{
			name: "card order starts accepted",
			input: PlaceOrderInput{
				Items:          items,
				BillingDetails: billing,
				PaymentMethod:  domain.PaymentCard,
				Total:          100,
				FinalTotal:     100,
			},
			setupMocks: func(orderRepo *mocks.MockOrderRepository, productRepo *mocks.MockProductRepository, cartRepo *mocks.MockCartRepository, pub *mocks.MockPublisher) {
				orderRepo.On("ExistsByPublicID", mock.Anything, mock.Anything).Return(false, nil)
				orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
				productRepo.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Product{ID: 1, Stock: 10}, nil)
				productRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)
				cartRepo.On("Clear", mock.Anything, uint64(7)).Return(nil)
				pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()
			},
			checkOrder: func(t *testing.T, o *domain.Order) {
				assert.Equal(t, domain.OrderAccepted, o.Status)
				assert.Equal(t, domain.PaymentPending, o.PaymentStatus)
				assert.Len(t, o.PublicID, 4)
				assert.Len(t, o.StatusUpdates, 1)
				assert.Equal(t, domain.OrderAccepted, o.StatusUpdates[0].Status)
			},
		},
		{
			name: "cash on delivery order starts pending",
			input: PlaceOrderInput{
				Items:          items,
				BillingDetails: billing,
				PaymentMethod:  domain.PaymentCashOnDelivery,
				Total:          100,
				FinalTotal:     100,
			},
			setupMocks: func(orderRepo *mocks.MockOrderRepository, productRepo *mocks.MockProductRepository, cartRepo *mocks.MockCartRepository, pub *mocks.MockPublisher) {
				orderRepo.On("ExistsByPublicID", mock.Anything, mock.Anything).Return(false, nil)
				orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
				productRepo.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Product{ID: 1, Stock: 10}, nil)
				productRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)
				cartRepo.On("Clear", mock.Anything, uint64(7)).Return(nil)
				pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()
			},
			checkOrder: func(t *testing.T, o *domain.Order) {
				assert.Equal(t, domain.OrderPending, o.Status)
				assert.Equal(t, float64(100), o.TotalPKR)
				assert.Equal(t, float64(100), o.FinalTotalPKR)
			},
		},
		{
			name: "empty order rejected",
			input: PlaceOrderInput{
				BillingDetails: billing,
				PaymentMethod:  domain.PaymentCard,
			},
			setupMocks:    func(*mocks.MockOrderRepository, *mocks.MockProductRepository, *mocks.MockCartRepository, *mocks.MockPublisher) {},
			expectedError: ErrEmptyOrder,
		},
		{
			name: "billing without email or phone rejected",
			input: PlaceOrderInput{
				Items:         items,
				PaymentMethod: domain.PaymentCard,
			},
			setupMocks:    func(*mocks.MockOrderRepository, *mocks.MockProductRepository, *mocks.MockCartRepository, *mocks.MockPublisher) {},
			expectedError: ErrMissingBillingContact,
		},
		{
			name: "id space exhausted aborts before any write",
			input: PlaceOrderInput{
				Items:          items,
				BillingDetails: billing,
				PaymentMethod:  domain.PaymentCard,
			},
			setupMocks: func(orderRepo *mocks.MockOrderRepository, productRepo *mocks.MockProductRepository, cartRepo *mocks.MockCartRepository, pub *mocks.MockPublisher) {
				orderRepo.On("ExistsByPublicID", mock.Anything, mock.Anything).Return(true, nil).Times(5)
			},
			expectedError: ErrOrderIDExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, orderRepo, productRepo, cartRepo, _, pub := newOrderServiceForTest()
			tt.setupMocks(orderRepo, productRepo, cartRepo, pub)

			order, err := s.PlaceOrder(context.Background(), testPurchaser(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
				orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				if tt.checkOrder != nil {
					tt.checkOrder(t, order)
				}
			}
			orderRepo.AssertExpectations(t)
			productRepo.AssertExpectations(t)
			cartRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_PlaceOrder_VariantStock(t *testing.T) {
	s, orderRepo, productRepo, cartRepo, _, pub := newOrderServiceForTest()

	product := &domain.Product{
		ID:    1,
		Stock: 8,
		Colors: []domain.ColorStock{
			{Color: "red", Stock: 5},
			{Color: "blue", Stock: 3},
		},
		Status: domain.ProductInStock,
	}

	orderRepo.On("ExistsByPublicID", mock.Anything, mock.Anything).Return(false, nil)
	orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	productRepo.On("FindByID", mock.Anything, uint64(1)).Return(product, nil)
	productRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)
	cartRepo.On("Clear", mock.Anything, uint64(7)).Return(nil)
	pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

	_, err := s.PlaceOrder(context.Background(), testPurchaser(), PlaceOrderInput{
		Items:          []domain.OrderItem{{ProductID: 1, Color: "red", Quantity: 2}},
		BillingDetails: domain.BillingDetails{Phone: "03001234567"},
		PaymentMethod:  domain.PaymentCashOnDelivery,
	})
	assert.NoError(t, err)

	assert.Equal(t, int64(3), product.Colors[0].Stock)
	assert.Equal(t, int64(3), product.Colors[1].Stock)
	assert.Equal(t, int64(6), product.Stock)
	assert.Equal(t, domain.ProductInStock, product.Status)
}

func TestOrderService_PlaceOrder_MissingProductSkipped(t *testing.T) {
	s, orderRepo, productRepo, cartRepo, _, pub := newOrderServiceForTest()

	orderRepo.On("ExistsByPublicID", mock.Anything, mock.Anything).Return(false, nil)
	orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	productRepo.On("FindByID", mock.Anything, uint64(99)).Return(nil, nil)
	cartRepo.On("Clear", mock.Anything, uint64(7)).Return(nil)
	pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

	order, err := s.PlaceOrder(context.Background(), testPurchaser(), PlaceOrderInput{
		Items:          []domain.OrderItem{{ProductID: 99, Quantity: 1}},
		BillingDetails: domain.BillingDetails{Email: "ali@example.com"},
		PaymentMethod:  domain.PaymentCard,
	})

	assert.NoError(t, err)
	assert.NotNil(t, order)
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_CartClearFailureNonFatal(t *testing.T) {
	s, orderRepo, productRepo, cartRepo, _, pub := newOrderServiceForTest()

	orderRepo.On("ExistsByPublicID", mock.Anything, mock.Anything).Return(false, nil)
	orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	productRepo.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Product{ID: 1, Stock: 5}, nil)
	productRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)
	cartRepo.On("Clear", mock.Anything, uint64(7)).Return(errors.New("redis down"))
	pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

	order, err := s.PlaceOrder(context.Background(), testPurchaser(), PlaceOrderInput{
		Items:          []domain.OrderItem{{ProductID: 1, Quantity: 1}},
		BillingDetails: domain.BillingDetails{Email: "ali@example.com"},
		PaymentMethod:  domain.PaymentCard,
	})

	assert.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		existing      *domain.Order
		status        domain.OrderStatus
		expectedError error
		check         func(*testing.T, *domain.Order)
	}{
		{
			name: "cash on delivery marked paid when delivered",
			existing: &domain.Order{
				PublicID:      "1234",
				PaymentMethod: domain.PaymentCashOnDelivery,
				PaymentStatus: domain.PaymentPending,
				Status:        domain.OrderOutForDelivery,
				StatusUpdates: []domain.StatusUpdate{{Status: domain.OrderPending}},
			},
			status: domain.OrderDelivered,
			check: func(t *testing.T, o *domain.Order) {
				assert.Equal(t, domain.OrderDelivered, o.Status)
				assert.Equal(t, domain.PaymentPaid, o.PaymentStatus)
				assert.Len(t, o.StatusUpdates, 2)
				assert.Equal(t, domain.OrderDelivered, o.StatusUpdates[1].Status)
			},
		},
		{
			name: "card payment status untouched on transition",
			existing: &domain.Order{
				PublicID:      "1234",
				PaymentMethod: domain.PaymentCard,
				PaymentStatus: domain.PaymentPaid,
				Status:        domain.OrderAccepted,
			},
			status: domain.OrderOutForDelivery,
			check: func(t *testing.T, o *domain.Order) {
				assert.Equal(t, domain.OrderOutForDelivery, o.Status)
				assert.Equal(t, domain.PaymentPaid, o.PaymentStatus)
			},
		},
		{
			name:          "unknown order",
			existing:      nil,
			status:        domain.OrderAccepted,
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, orderRepo, _, _, _, pub := newOrderServiceForTest()
			if tt.existing != nil {
				orderRepo.On("FindByPublicID", mock.Anything, "1234").Return(tt.existing, nil)
				orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
				pub.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).Maybe()
			} else {
				orderRepo.On("FindByPublicID", mock.Anything, "1234").Return(nil, nil)
			}

			order, err := s.UpdateStatus(context.Background(), "1234", tt.status, "", "")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				tt.check(t, order)
			}
			orderRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_CancelOwnOrder(t *testing.T) {
	tests := []struct {
		name          string
		existing      *domain.Order
		reason        string
		expectedError error
		check         func(*testing.T, *domain.Order)
	}{
		{
			name: "pending order cancelled with default reason",
			existing: &domain.Order{
				PublicID:      "4321",
				UserID:        7,
				PaymentMethod: domain.PaymentCashOnDelivery,
				Status:        domain.OrderPending,
			},
			check: func(t *testing.T, o *domain.Order) {
				assert.Equal(t, domain.OrderCancelled, o.Status)
				assert.Equal(t, "cancelled by user", o.CancellationReason)
				assert.Equal(t, domain.CancelledByUser, o.CancelledBy)
			},
		},
		{
			name: "custom reason kept",
			existing: &domain.Order{
				PublicID: "4321",
				UserID:   7,
				Status:   domain.OrderAccepted,
			},
			reason: "ordered by mistake",
			check: func(t *testing.T, o *domain.Order) {
				assert.Equal(t, "ordered by mistake", o.CancellationReason)
			},
		},
		{
			name: "someone else's order",
			existing: &domain.Order{
				PublicID: "4321",
				UserID:   99,
				Status:   domain.OrderPending,
			},
			expectedError: ErrNotOrderOwner,
		},
		{
			name: "delivered order cannot be cancelled",
			existing: &domain.Order{
				PublicID: "4321",
				UserID:   7,
				Status:   domain.OrderDelivered,
			},
			expectedError: ErrOrderNotCancellable,
		},
		{
			name: "already cancelled order cannot be cancelled again",
			existing: &domain.Order{
				PublicID: "4321",
				UserID:   7,
				Status:   domain.OrderCancelled,
			},
			expectedError: ErrOrderNotCancellable,
		},
		{
			name:          "unknown order",
			existing:      nil,
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, orderRepo, _, _, _, pub := newOrderServiceForTest()
			if tt.existing != nil {
				orderRepo.On("FindByPublicID", mock.Anything, "4321").Return(tt.existing, nil)
			} else {
				orderRepo.On("FindByPublicID", mock.Anything, "4321").Return(nil, nil)
			}
			if tt.expectedError == nil {
				orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
				pub.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).Maybe()
			}

			order, err := s.CancelOwnOrder(context.Background(), testPurchaser(), "4321", tt.reason)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				tt.check(t, order)
			}
			orderRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_ListAll_JoinsEmails(t *testing.T) {
	s, orderRepo, _, _, userRepo, _ := newOrderServiceForTest()

	orderRepo.On("FindAll", mock.Anything).Return([]domain.Order{
		{PublicID: "1111", UserID: 1},
		{PublicID: "2222", UserID: 2},
		{PublicID: "3333", UserID: 1},
	}, nil)
	userRepo.On("FindByIDs", mock.Anything, []uint64{1, 2}).Return([]domain.User{
		{ID: 1, Email: "a@example.com"},
		{ID: 2, Email: "b@example.com"},
	}, nil)

	out, err := s.ListAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Equal(t, "a@example.com", out[0].UserEmail)
	assert.Equal(t, "b@example.com", out[1].UserEmail)
	assert.Equal(t, "a@example.com", out[2].UserEmail)
}

func TestOrderService_WeeklyRevenue(t *testing.T) {
	s, orderRepo, _, _, _, _ := newOrderServiceForTest()

	now := time.Now()
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	monday := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location()).
		AddDate(0, 0, -daysSinceMonday)

	orderRepo.On("FindCreatedSince", mock.Anything, mock.Anything).Return([]domain.Order{
		{FinalTotal: 100, CreatedAt: monday},
		{FinalTotal: 50, CreatedAt: monday},
		{FinalTotal: 75, CreatedAt: now},
	}, nil)

	out, err := s.WeeklyRevenue(context.Background())

	assert.NoError(t, err)
	assert.Len(t, out, 7)
	assert.Equal(t, "Mon", out[0].Day)
	assert.Equal(t, "Sun", out[6].Day)

	totals := make(map[string]float64)
	for _, d := range out {
		totals[d.Day] += d.Value
	}
	assert.Equal(t, float64(225), totals["Mon"]+totals["Tue"]+totals["Wed"]+totals["Thu"]+totals["Fri"]+totals["Sat"]+totals["Sun"])
	assert.GreaterOrEqual(t, totals[monday.Format("Mon")], float64(150))
}

func TestOrderService_Summary(t *testing.T) {
	s, orderRepo, productRepo, _, _, _ := newOrderServiceForTest()

	orderRepo.On("Count", mock.Anything).Return(int64(12), nil)
	orderRepo.On("SumFinalTotal", mock.Anything).Return(float64(3400), nil)
	productRepo.On("Count", mock.Anything).Return(int64(40), nil)

	stats, err := s.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalOrders)
	assert.Equal(t, int64(40), stats.TotalProducts)
	assert.Equal(t, float64(3400), stats.TotalRevenue)
	assert.Equal(t, stats.TotalRevenue, stats.TotalSales)
}

func TestOrderService_Summary_PropagatesError(t *testing.T) {
	s, orderRepo, productRepo, _, _, _ := newOrderServiceForTest()

	orderRepo.On("Count", mock.Anything).Return(int64(0), errors.New("db gone"))
	orderRepo.On("SumFinalTotal", mock.Anything).Return(float64(0), nil).Maybe()
	productRepo.On("Count", mock.Anything).Return(int64(0), nil).Maybe()

	_, err := s.Summary(context.Background())
	assert.Error(t, err)
}
