package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"velvethome-backend/internal/client"
	"velvethome-backend/internal/config"
	"velvethome-backend/internal/repository"
	"velvethome-backend/internal/server"
	"velvethome-backend/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	setupLogger(&cfg.Log)

	ctx := context.Background()
	mongoClient, err := client.MongoClient(ctx, cfg.Mongo.URI)
	if err != nil {
		slog.Error("mongodb init", "error", err)
		os.Exit(1)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	razorpayClient := client.NewRazorpayClient(&cfg.Razorpay)
	cloudinaryClient := client.NewCloudinaryClient(&cfg.Cloudinary)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	catalogService := service.NewCatalogService(productRepo, categoryRepo, serviceRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, userRepo, razorpayClient, cfg.Razorpay.KeySecret)
	reviewService := service.NewReviewService(productRepo, serviceRepo, userRepo, cloudinaryClient)
	wishlistService := service.NewWishlistService(userRepo, productRepo)
	leadService := service.NewLeadService(leadRepo)
	webhookService := service.NewWebhookService(userRepo, cfg.Webhook.Secret)

	srv := server.NewServer(
		cfg.Session.Secret,
		catalogService,
		orderService,
		reviewService,
		wishlistService,
		leadService,
		webhookService,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	slog.Info("starting HTTP server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	slog.Info("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		slog.Error("mongodb disconnect error", "error", err)
	}
}

func setupLogger(cfg *config.Log) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	var h slog.Handler
	if cfg.Format == "text" {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(h))
}
