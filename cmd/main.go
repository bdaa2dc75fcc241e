package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/MO-OUISSI/commercewebsite-public/internal/cart"
	"github.com/MO-OUISSI/commercewebsite-public/internal/catalog"
	"github.com/MO-OUISSI/commercewebsite-public/internal/events"
	"github.com/MO-OUISSI/commercewebsite-public/internal/handler"
	"github.com/MO-OUISSI/commercewebsite-public/internal/repository"
	"github.com/MO-OUISSI/commercewebsite-public/internal/service"
	"github.com/MO-OUISSI/commercewebsite-public/pkg/config"
	"github.com/MO-OUISSI/commercewebsite-public/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Info("Service configuration",
		zap.String("port", cfg.Port),
		zap.Bool("demo_mode", cfg.DemoMode),
		zap.Bool("demo_fallback", cfg.DemoFallback),
		zap.Float64("delivery_price", cfg.DeliveryPrice),
		zap.Float64("free_shipping_threshold", cfg.FreeShippingThreshold))

	cat := catalog.NewSeeded(cfg.DeliveryPrice, cfg.FreeShippingThreshold)

	// Demo mode keeps everything local: file-backed carts, in-memory
	// orders, no broker. Otherwise carts and orders live in DynamoDB and
	// order events go to Kafka.
	var (
		cartStore cart.Storage
		orderRepo repository.OrderRepository
		publisher events.Publisher
	)
	if cfg.DemoMode {
		fileStore, err := repository.NewFileCartStore(cfg.DataDir)
		if err != nil {
			logger.Fatal("Failed to open cart data dir", zap.Error(err))
		}
		cartStore = fileStore
		orderRepo = repository.NewMemoryOrderRepository()
		publisher = events.NoopPublisher{}
	} else {
		dynamoClient, err := repository.NewDynamoDBClient(cfg)
		if err != nil {
			logger.Fatal("Failed to create DynamoDB client", zap.Error(err))
		}
		cartStore = repository.NewDynamoCartStore(dynamoClient, cfg.CartTableName)
		orderRepo = repository.NewDynamoOrderRepository(dynamoClient, cfg.OrderTableName)
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers, logger)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	carts := cart.NewManager(cartStore, logger)
	orderService := service.NewOrderService(cat, orderRepo, publisher, logger, cfg.DemoFallback)

	catalogHandler := handler.NewCatalogHandler(cat)
	cartHandler := handler.NewCartHandler(carts, cat, logger)
	orderHandler := handler.NewOrderHandler(orderService, carts, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	api := router.Group("/api")
	{
		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/:id", catalogHandler.GetProduct)
		api.GET("/collections", catalogHandler.ListCollections)
		api.GET("/store", catalogHandler.GetStoreInfo)

		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart/items", cartHandler.AddItem)
		api.PATCH("/cart/items", cartHandler.UpdateQuantity)
		api.DELETE("/cart/items", cartHandler.RemoveItem)
		api.DELETE("/cart", cartHandler.ClearCart)

		api.POST("/checkout", orderHandler.Checkout)
		api.GET("/orders/:id", orderHandler.GetOrder)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"service":   "storefront",
				"demo_mode": cfg.DemoMode,
			})
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}
