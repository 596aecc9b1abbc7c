package services

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"time"

	"storefront-api/internal/domain"
	rabbit "storefront-api/internal/infra/rabbitmq"
	"storefront-api/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrEmptyOrder            = errors.New("order has no items")
	ErrMissingBillingContact = errors.New("billing details need an email or phone")
	ErrOrderIDExhausted      = errors.New("could not allocate order identifier")
	ErrNotOrderOwner         = errors.New("order belongs to another user")
	ErrOrderNotCancellable   = errors.New("order can no longer be cancelled")
)

const orderIDMaxRetries = 5

type PlaceOrderInput struct {
	Items           []domain.OrderItem
	BillingDetails  domain.BillingDetails
	ShippingDetails domain.ShippingDetails
	PaymentMethod   domain.PaymentMethod
	PaymentStatus   domain.PaymentStatus
	Total           float64
	Shipping        float64
	FinalTotal      float64
	TotalPKR        float64
	TotalUSD        float64
	FinalTotalPKR   float64
	FinalTotalUSD   float64
	StripePaymentID string
}

type DayRevenue struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

type SummaryStats struct {
	TotalOrders   int64   `json:"totalOrders"`
	TotalSales    float64 `json:"totalSales"`
	TotalProducts int64   `json:"totalProducts"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

type OrderService struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	carts     repository.CartRepository
	users     repository.UserRepository
	publisher rabbit.PublisherInterface
	log       *zap.SugaredLogger
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	carts repository.CartRepository,
	users repository.UserRepository,
	publisher rabbit.PublisherInterface,
	log *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		carts:     carts,
		users:     users,
		publisher: publisher,
		log:       log,
	}
}

// PlaceOrder runs the placement workflow: allocate a public id, persist the
// order, decrement stock per line, clear the purchaser's cart. The steps are
// separate writes; a failed stock adjustment for one line is logged and the
// rest continue.
func (s *OrderService) PlaceOrder(ctx context.Context, purchaser domain.User, input PlaceOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if input.BillingDetails.Email == "" && input.BillingDetails.Phone == "" {
		return nil, ErrMissingBillingContact
	}

	publicID, err := s.allocateOrderID(ctx)
	if err != nil {
		return nil, err
	}

	status := domain.OrderPending
	if input.PaymentMethod == domain.PaymentCard {
		status = domain.OrderAccepted
	}
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = domain.PaymentPending
	}
	totalPKR := input.TotalPKR
	if totalPKR == 0 {
		totalPKR = input.Total
	}
	finalTotalPKR := input.FinalTotalPKR
	if finalTotalPKR == 0 {
		finalTotalPKR = input.FinalTotal
	}

	now := time.Now()
	order := &domain.Order{
		PublicID:        publicID,
		UserID:          purchaser.ID,
		UserName:        purchaser.Name,
		Items:           input.Items,
		BillingDetails:  input.BillingDetails,
		ShippingDetails: input.ShippingDetails,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   paymentStatus,
		Status:          status,
		Total:           input.Total,
		Shipping:        input.Shipping,
		FinalTotal:      input.FinalTotal,
		TotalPKR:        totalPKR,
		TotalUSD:        input.TotalUSD,
		FinalTotalPKR:   finalTotalPKR,
		FinalTotalUSD:   input.FinalTotalUSD,
		StripePaymentID: input.StripePaymentID,
		StatusUpdates:   []domain.StatusUpdate{{Status: status, Date: now}},
		CreatedAt:       now,
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	for _, item := range input.Items {
		if err := s.adjustProductStock(ctx, item); err != nil {
			s.log.Warnw("stock adjustment skipped", "orderId", publicID, "productId", item.ProductID, "error", err)
		}
	}

	if err := s.carts.Clear(ctx, purchaser.ID); err != nil {
		s.log.Errorw("failed to clear cart after placement", "orderId", publicID, "userId", purchaser.ID, "error", err)
	}

	go s.publishCreatedEvent(context.Background(), order)

	return order, nil
}

// allocateOrderID draws random 4-digit ids and checks them against the
// store, giving up after a fixed number of collisions. Best-effort only;
// the unique index on public_id is the real backstop.
func (s *OrderService) allocateOrderID(ctx context.Context) (string, error) {
	for i := 0; i < orderIDMaxRetries; i++ {
		id := strconv.Itoa(1000 + rand.Intn(9000))
		exists, err := s.orders.ExistsByPublicID(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", ErrOrderIDExhausted
}

func (s *OrderService) adjustProductStock(ctx context.Context, item domain.OrderItem) error {
	product, err := s.products.FindByID(ctx, item.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return errors.New("product not found")
	}
	AdjustInventory(product, item)
	return s.products.Update(ctx, product)
}

// UpdateStatus is the admin-side lifecycle transition.
func (s *OrderService) UpdateStatus(ctx context.Context, publicID string, status domain.OrderStatus, reason string, actor domain.CancelActor) (*domain.Order, error) {
	order, err := s.orders.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.applyTransition(ctx, order, status, reason, actor)
}

// CancelOwnOrder is the purchaser's self-service cancellation.
func (s *OrderService) CancelOwnOrder(ctx context.Context, purchaser domain.User, publicID, reason string) (*domain.Order, error) {
	order, err := s.orders.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != purchaser.ID {
		return nil, ErrNotOrderOwner
	}
	if order.Status == domain.OrderCancelled || order.Status == domain.OrderDelivered {
		return nil, ErrOrderNotCancellable
	}
	if reason == "" {
		reason = "cancelled by user"
	}
	return s.applyTransition(ctx, order, domain.OrderCancelled, reason, domain.CancelledByUser)
}

func (s *OrderService) applyTransition(ctx context.Context, order *domain.Order, status domain.OrderStatus, reason string, actor domain.CancelActor) (*domain.Order, error) {
	order.Status = status

	// Cash is collected when the order is accepted or handed over.
	if order.PaymentMethod == domain.PaymentCashOnDelivery &&
		(status == domain.OrderAccepted || status == domain.OrderDelivered) {
		order.PaymentStatus = domain.PaymentPaid
	}

	if status == domain.OrderCancelled {
		if reason != "" {
			order.CancellationReason = reason
		}
		if actor != "" {
			order.CancelledBy = actor
		}
	}

	order.StatusUpdates = append(order.StatusUpdates, domain.StatusUpdate{
		Status: status,
		Date:   time.Now(),
	})

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	go s.publishStatusEvent(context.Background(), order)

	return order, nil
}

func (s *OrderService) publishCreatedEvent(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:    order.PublicID,
		UserID:     order.UserID,
		FinalTotal: order.FinalTotal,
		CreatedAt:  order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		s.log.Errorw("failed to publish order.created", "orderId", order.PublicID, "error", err)
	}
}

func (s *OrderService) publishStatusEvent(ctx context.Context, order *domain.Order) {
	if order.BillingDetails.Email == "" {
		s.log.Warnw("no billing email, status mail will be skipped", "orderId", order.PublicID)
	}
	evt := domain.OrderStatusEvent{
		EventID:     uuid.NewString(),
		OrderID:     order.PublicID,
		Email:       order.BillingDetails.Email,
		Status:      order.Status,
		StatusLabel: order.Status.Label(),
		OccurredAt:  time.Now(),
	}
	if err := s.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		s.log.Errorw("failed to publish order.status_changed", "orderId", order.PublicID, "error", err)
	}
}

// ListAll returns every order, newest first, with purchaser emails joined in.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.AdminOrder, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(orders))
	seen := make(map[uint64]bool, len(orders))
	for _, o := range orders {
		if !seen[o.UserID] {
			seen[o.UserID] = true
			ids = append(ids, o.UserID)
		}
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	emails := make(map[uint64]string, len(users))
	for _, u := range users {
		emails[u.ID] = u.Email
	}

	out := make([]domain.AdminOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, domain.AdminOrder{Order: o, UserEmail: emails[o.UserID]})
	}
	return out, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

func (s *OrderService) GetByPublicID(ctx context.Context, publicID string) (*domain.Order, error) {
	order, err := s.orders.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

var weekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeeklyRevenue sums finalTotal per weekday for the current calendar week.
// The week starts Monday.
func (s *OrderService) WeeklyRevenue(ctx context.Context) ([]DayRevenue, error) {
	now := time.Now()
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	startOfWeek := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -daysSinceMonday)

	orders, err := s.orders.FindCreatedSince(ctx, startOfWeek)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(weekDays))
	for _, o := range orders {
		day := o.CreatedAt.Format("Mon")
		totals[day] += o.FinalTotal
	}

	out := make([]DayRevenue, 0, len(weekDays))
	for _, day := range weekDays {
		out = append(out, DayRevenue{Day: day, Value: totals[day]})
	}
	return out, nil
}

// Summary backs the admin dashboard; the counts fan out concurrently.
func (s *OrderService) Summary(ctx context.Context) (SummaryStats, error) {
	var (
		eg    errgroup.Group
		stats SummaryStats
	)
	eg.Go(func() error {
		var err error
		stats.TotalOrders, err = s.orders.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		stats.TotalRevenue, err = s.orders.SumFinalTotal(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		stats.TotalProducts, err = s.products.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return SummaryStats{}, err
	}
	stats.TotalSales = stats.TotalRevenue
	return stats, nil
}
