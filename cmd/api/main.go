package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authapp "github.com/ssstores/storefront/internal/auth/app"
	authhttp "github.com/ssstores/storefront/internal/auth/http"
	authmemory "github.com/ssstores/storefront/internal/auth/infra/memory"
	authpg "github.com/ssstores/storefront/internal/auth/infra/postgres"

	cartapp "github.com/ssstores/storefront/internal/cart/app"
	carthttp "github.com/ssstores/storefront/internal/cart/http"
	cartadapter "github.com/ssstores/storefront/internal/cart/infra/adapter"
	cartmemory "github.com/ssstores/storefront/internal/cart/infra/memory"

	catalogapp "github.com/ssstores/storefront/internal/catalog/app"
	cataloghttp "github.com/ssstores/storefront/internal/catalog/http"
	catalogmemory "github.com/ssstores/storefront/internal/catalog/infra/memory"

	orderapp "github.com/ssstores/storefront/internal/order/app"
	orderhttp "github.com/ssstores/storefront/internal/order/http"
	orderadapter "github.com/ssstores/storefront/internal/order/infra/adapter"
	ordermemory "github.com/ssstores/storefront/internal/order/infra/memory"
	orderpg "github.com/ssstores/storefront/internal/order/infra/postgres"

	reviewapp "github.com/ssstores/storefront/internal/review/app"
	reviewhttp "github.com/ssstores/storefront/internal/review/http"
	reviewmemory "github.com/ssstores/storefront/internal/review/infra/memory"

	"github.com/ssstores/storefront/internal/pricing"
	"github.com/ssstores/storefront/pkg/config"
	"github.com/ssstores/storefront/pkg/logger"
	"github.com/ssstores/storefront/pkg/postgres"
	"github.com/ssstores/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "api", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if cfg.AppEnv != "dev" && cfg.JWTSecret == "" {
		log.Error("JWT_SECRET is required outside dev")
		os.Exit(1)
	}
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "dev-only-secret"
	}

	// Catalog
	catalogRepo := catalogmemory.NewProductRepo(catalogmemory.GenerateCatalog(cfg.CatalogSeed))
	catalogSvc := catalogapp.NewService(catalogRepo)

	// Cart
	cartSvc := cartapp.NewService(cartmemory.NewCartRepo(), cartadapter.NewCatalogServiceReader(catalogSvc))

	// Reviews
	reviewSvc := reviewapp.NewService(reviewmemory.NewReviewRepo())

	// Orders and users: backend selected by STORAGE_DRIVER.
	orderRepo, userRepo := mustStores(log, cfg)

	policy := pricing.Policy(cfg.Pricing)
	orderSvc := orderapp.NewService(orderRepo,
		orderadapter.NewCartServiceReader(cartSvc),
		orderadapter.NewCatalogServiceReader(catalogSvc),
		policy, 10)

	authSvc := authapp.NewService(userRepo, jwtSecret, cfg.JWTTTL)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authH := authhttp.NewHandler(authSvc)

	api := engine.Group("/api")
	cataloghttp.NewHandler(catalogSvc).Register(api)
	reviewhttp.NewHandler(reviewSvc).Register(api)
	carthttp.NewHandler(cartSvc).Register(api)
	orderH := orderhttp.NewHandler(orderSvc)
	orderH.Register(api)
	authH.Register(api)

	admin := api.Group("/admin", authH.Middleware(), authH.RequireAdmin())
	cataloghttp.NewHandler(catalogSvc).RegisterAdmin(admin)
	orderH.RegisterAdmin(admin)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "SS Stores API is running"})
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

// mustStores builds the order and user stores for the configured
// backend, exiting on unrecoverable configuration problems.
func mustStores(log *slog.Logger, cfg config.Config) (orderapp.OrderRepo, authapp.UserRepo) {
	switch cfg.StorageDriver {
	case "memory":
		return ordermemory.NewOrderRepo(), authmemory.NewUserRepo()

	case "postgres":
		if cfg.PostgresUser == "" || cfg.PostgresDB == "" {
			log.Error("POSTGRES_USER and POSTGRES_DB are required for the postgres driver")
			os.Exit(1)
		}

		db, err := postgres.Open(postgres.Config{
			Host: cfg.PostgresHost,
			Port: cfg.PostgresPort,
			User: cfg.PostgresUser,
			Pass: cfg.PostgresPass,
			DB:   cfg.PostgresDB,
		})
		if err != nil {
			log.Error("db open failed", slog.Any("err", err))
			os.Exit(1)
		}

		orderRepo, err := orderpg.NewOrderRepo(db)
		if err != nil {
			log.Error("order store init failed", slog.Any("err", err))
			os.Exit(1)
		}
		userRepo, err := authpg.NewUserRepo(db)
		if err != nil {
			log.Error("user store init failed", slog.Any("err", err))
			os.Exit(1)
		}
		return orderRepo, userRepo

	default:
		log.Error("unknown storage driver", slog.String("driver", cfg.StorageDriver))
		os.Exit(1)
		return nil, nil
	}
}
