package main

import (
	"context"
	"log"
	"os"
	"time"

	"storefront-api/internal/controllers/http"
	"storefront-api/internal/infra/exchange"
	"storefront-api/internal/infra/mailer"
	mmysql "storefront-api/internal/infra/mysql"
	"storefront-api/internal/infra/payments"
	"storefront-api/internal/infra/rabbitmq"
	mysqlrepo "storefront-api/internal/repository/mysql"
	"storefront-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		logger.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1000)
	sqlDB.SetMaxIdleConns(200)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	userRepo := mysqlrepo.NewUserRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	cartRepo := mysqlrepo.NewCartRepository(db)
	wishlistRepo := mysqlrepo.NewWishlistRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)
	reviewRepo := mysqlrepo.NewReviewRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		logger.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	smtp := mailer.NewSMTPMailerFromEnv()

	consumer, err := rabbitmq.NewStatusConsumer(os.Getenv("RABBITMQ_URL"), "order.exchange", "order.status.mail", smtp, logger)
	if err != nil {
		logger.Fatalf("failed to init status consumer: %v", err)
	}
	defer consumer.Close()
	if err := consumer.Start(context.Background()); err != nil {
		logger.Fatalf("failed to start status consumer: %v", err)
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	rates := exchange.NewRateClient("https://v6.exchangerate-api.com", os.Getenv("EXCHANGE_RATE_API_KEY"), 5*time.Second)
	stripeGateway := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))

	authService := services.NewAuthService(userRepo, smtp, jwtSecret, frontendURL, logger)
	productService := services.NewProductService(productRepo, logger)
	cartService := services.NewCartService(cartRepo, productRepo)
	wishlistService := services.NewWishlistService(wishlistRepo)
	reviewService := services.NewReviewService(reviewRepo, productRepo, orderRepo, logger)
	orderService := services.NewOrderService(orderRepo, productRepo, cartRepo, userRepo, publisher, logger)
	paymentService := services.NewPaymentService(rates, stripeGateway, logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     200,
		MinIdleConns: 20,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	productService.SetRedisClient(redisClient)

	handler := http.NewHandler(
		authService,
		productService,
		cartService,
		wishlistService,
		reviewService,
		orderService,
		paymentService,
		userRepo,
		jwtSecret,
		logger,
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Infof("starting storefront api on port %s", port)
	if err := r.Run(":" + port); err != nil {
		logger.Fatalf("server run: %v", err)
	}
}
