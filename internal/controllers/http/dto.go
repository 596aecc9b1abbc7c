package http

import "storefront-api/internal/domain"

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

type SigninRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type ProductRequest struct {
	Name             string              `json:"productName" binding:"required"`
	Category         string              `json:"category" binding:"required"`
	Price            float64             `json:"price" binding:"required"`
	DiscountedPrice  float64             `json:"discountedPrice"`
	ShortDescription string              `json:"shortDescription"`
	Description      string              `json:"description"`
	Stock            int64               `json:"stock"`
	Colors           []domain.ColorStock `json:"colors"`
	Images           []string            `json:"images"`
	ImageURL         string              `json:"imageUrl"`
}

type AddCartItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type UpdateCartItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type RemoveCartItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type WishlistRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
}

type ReviewRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	ProductName string `json:"productName" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Text        string `json:"text" binding:"required"`
}

type PlaceOrderRequest struct {
	CartItems       []domain.OrderItem     `json:"cartItems" binding:"required"`
	BillingDetails  domain.BillingDetails  `json:"billingDetails"`
	ShippingDetails domain.ShippingDetails `json:"shippingDetails"`
	PaymentMethod   domain.PaymentMethod   `json:"paymentMethod" binding:"required,oneof=card cash-on-delivery"`
	PaymentStatus   domain.PaymentStatus   `json:"paymentStatus"`
	Total           float64                `json:"total"`
	Shipping        float64                `json:"shipping"`
	FinalTotal      float64                `json:"finalTotal"`
	TotalPKR        float64                `json:"totalPKR"`
	TotalUSD        float64                `json:"totalUSD"`
	FinalTotalPKR   float64                `json:"finalTotalPKR"`
	FinalTotalUSD   float64                `json:"finalTotalUSD"`
	StripePaymentID string                 `json:"stripePaymentId"`
}

type UpdateOrderStatusRequest struct {
	Status      domain.OrderStatus `json:"status" binding:"required,oneof=pending accepted out-for-delivery delivered cancelled failed"`
	Reason      string             `json:"reason"`
	CancelledBy domain.CancelActor `json:"cancelledBy"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type PaymentIntentRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Currency string  `json:"currency"`
}
