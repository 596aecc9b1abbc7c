package domain

import "time"

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderAccepted       OrderStatus = "accepted"
	OrderOutForDelivery OrderStatus = "out-for-delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
	OrderFailed         OrderStatus = "failed"
)

// Label is the human-readable form used in customer notifications.
func (s OrderStatus) Label() string {
	switch s {
	case OrderPending:
		return "Order Received"
	case OrderAccepted:
		return "Order Accepted"
	case OrderOutForDelivery:
		return "Out for Delivery"
	case OrderDelivered:
		return "Delivered"
	case OrderCancelled:
		return "Cancelled"
	case OrderFailed:
		return "Failed"
	}
	return string(s)
}

type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "card"
	PaymentCashOnDelivery PaymentMethod = "cash-on-delivery"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type CancelActor string

const (
	CancelledByAdmin CancelActor = "admin"
	CancelledByUser  CancelActor = "user"
)

// OrderItem is a snapshot of a cart line at placement time, not a live
// reference into the catalog.
type OrderItem struct {
	ProductID uint64  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Color     string  `json:"color"`
	Size      string  `json:"size"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

type BillingDetails struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Country    string `json:"country"`
	Address    string `json:"address"`
	Apartment  string `json:"apartment"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

type ShippingDetails struct {
	Country   string `json:"country"`
	Address   string `json:"address"`
	Apartment string `json:"apartment"`
	City      string `json:"city"`
	State     string `json:"state"`
}

// StatusUpdate is one entry of the append-only lifecycle history.
type StatusUpdate struct {
	Status OrderStatus `json:"status"`
	Date   time.Time   `json:"date"`
}

type Order struct {
	ID       uint64 `json:"-" gorm:"primaryKey;autoIncrement"`
	PublicID string `json:"id" gorm:"size:8;uniqueIndex;not null"`

	UserID   uint64 `json:"userId" gorm:"not null;index"`
	UserName string `json:"userName"`

	Items           []OrderItem     `json:"cartItems" gorm:"serializer:json"`
	BillingDetails  BillingDetails  `json:"billingDetails" gorm:"serializer:json"`
	ShippingDetails ShippingDetails `json:"shippingDetails" gorm:"serializer:json"`

	PaymentMethod PaymentMethod `json:"paymentMethod" gorm:"size:20;not null"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"size:10;default:'pending'"`
	Status        OrderStatus   `json:"orderStatus" gorm:"size:20;default:'pending'"`

	Total           float64 `json:"total"`
	Shipping        float64 `json:"shipping"`
	FinalTotal      float64 `json:"finalTotal"`
	TotalPKR        float64 `json:"totalPKR"`
	TotalUSD        float64 `json:"totalUSD"`
	FinalTotalPKR   float64 `json:"finalTotalPKR"`
	FinalTotalUSD   float64 `json:"finalTotalUSD"`
	StripePaymentID string  `json:"stripePaymentId,omitempty"`

	CancellationReason string      `json:"cancellationReason,omitempty"`
	CancelledBy        CancelActor `json:"cancelledBy,omitempty" gorm:"size:10"`

	StatusUpdates []StatusUpdate `json:"statusUpdates" gorm:"serializer:json"`
	CreatedAt     time.Time      `json:"createdAt" gorm:"autoCreateTime"`
}

// AdminOrder carries the purchaser's account email joined in for the
// back-office listing.
type AdminOrder struct {
	Order
	UserEmail string `json:"userEmail"`
}
