package http

import (
	"net/http"

	"storefront-api/internal/repository"
	"storefront-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	auth      *services.AuthService
	products  *services.ProductService
	carts     *services.CartService
	wishlists *services.WishlistService
	reviews   *services.ReviewService
	orders    *services.OrderService
	payments  *services.PaymentService
	users     repository.UserRepository
	jwtSecret []byte
	log       *zap.SugaredLogger
}

func NewHandler(
	auth *services.AuthService,
	products *services.ProductService,
	carts *services.CartService,
	wishlists *services.WishlistService,
	reviews *services.ReviewService,
	orders *services.OrderService,
	payments *services.PaymentService,
	users repository.UserRepository,
	jwtSecret []byte,
	log *zap.SugaredLogger,
) *Handler {
	return &Handler{
		auth:      auth,
		products:  products,
		carts:     carts,
		wishlists: wishlists,
		reviews:   reviews,
		orders:    orders,
		payments:  payments,
		users:     users,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	authRequired := AuthRequired(h.users, h.jwtSecret, h.log)
	adminOnly := RequireAdmin()

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/verify", h.Verify)
	auth.POST("/signin", h.Signin)
	auth.POST("/forgot-password", h.ForgotPassword)
	auth.POST("/reset-password", h.ResetPassword)
	auth.GET("/profile/:id", authRequired, h.GetProfile)
	auth.PUT("/profile/:id", authRequired, h.UpdateProfile)
	auth.PATCH("/change-password/:id", authRequired, h.ChangePassword)

	products := api.Group("/products")
	products.GET("", h.ListProducts)
	products.GET("/top-rated", h.TopRatedProducts)
	products.GET("/:id", h.GetProduct)
	products.POST("", authRequired, adminOnly, h.CreateProduct)
	products.PUT("/:id", authRequired, adminOnly, h.UpdateProduct)
	products.DELETE("/:id", authRequired, adminOnly, h.DeleteProduct)

	cart := api.Group("/cart", authRequired)
	cart.GET("", h.GetCart)
	cart.POST("", h.AddCartItem)
	cart.PUT("/update", h.UpdateCartItem)
	cart.DELETE("/remove", h.RemoveCartItem)

	wishlist := api.Group("/wishlist", authRequired)
	wishlist.GET("", h.GetWishlist)
	wishlist.POST("/add", h.AddWishlistItem)
	wishlist.POST("/remove", h.RemoveWishlistItem)

	reviews := api.Group("/reviews")
	reviews.POST("", authRequired, h.AddReview)
	reviews.GET("/:productId", h.ListProductReviews)
	reviews.GET("", authRequired, adminOnly, h.ListAllReviews)
	reviews.DELETE("/:id", authRequired, adminOnly, h.DeleteReview)

	payment := api.Group("/payment")
	payment.POST("/create-payment-intent", h.CreatePaymentIntent)

	orders := api.Group("/orders", authRequired)
	orders.POST("", h.PlaceOrder)
	orders.GET("", adminOnly, h.ListOrders)
	orders.GET("/user", h.ListMyOrders)
	orders.GET("/revenue", adminOnly, h.WeeklyRevenue)
	orders.GET("/summary", adminOnly, h.OrderSummary)
	orders.PUT("/:id/status", adminOnly, h.UpdateOrderStatus)
	orders.PUT("/:id/cancel", h.CancelOrder)
}

func (h *Handler) internalError(c *gin.Context, err error) {
	h.log.Errorw("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
