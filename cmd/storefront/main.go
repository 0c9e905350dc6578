package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/repticare/storefront/internal/cart"
	"github.com/repticare/storefront/internal/clients"
	"github.com/repticare/storefront/internal/config"
	"github.com/repticare/storefront/internal/db"
	"github.com/repticare/storefront/internal/events"
	httpapi "github.com/repticare/storefront/internal/http"
	"github.com/repticare/storefront/internal/notify"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lmicroseconds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Durable cart storage. Without a DSN the storefront still runs with an
	// in-memory repository (dev mode); carts then live until restart.
	var cartRepo cart.Repository
	if cfg.CartDSN != "" {
		if err := db.RunMigrations(cfg.CartDSN, logger); err != nil {
			logger.Fatalf("run migrations: %v", err)
		}
		pool := db.MustOpenPool(ctx, cfg.CartDSN)
		defer pool.Close()
		cartRepo = cart.NewPostgresRepository(pool)
	} else {
		logger.Printf("CART_DB_DSN not set, carts are in-memory only")
		cartRepo = cart.NewMemoryRepository()
	}

	notifier := notify.NewTransient(time.Minute)

	// Backend clients share one HTTP client and one base URL.
	sharedHTTP := &http.Client{Timeout: cfg.UpstreamTimeout}
	backend := clients.NewClient("backend", cfg.BackendURL, sharedHTTP)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:   logger,
		Cfg:      cfg,
		CartRepo: cartRepo,
		Notifier: notifier,
		Auth:     clients.NewAuthClient(backend),
		Catalog:  clients.NewCatalogClient(backend),
		Vets:     clients.NewVetsClient(backend),
		Care:     clients.NewCareClient(backend),
		Articles: clients.NewArticlesClient(backend),
		Profile:  clients.NewProfileClient(backend),
		HealthProbes: []clients.HealthProbe{
			{Name: "backend", Client: backend, Path: "/api/health"},
		},
	})

	// Optional: clear carts when the order pipeline reports a finished
	// checkout.
	if cfg.RabbitURL != "" {
		rabbitConn := events.MustDialRabbit(cfg.RabbitURL)
		defer rabbitConn.Close()

		handler := events.CheckoutCompletedHandler(cartRepo, logger)
		if err := events.StartCheckoutCompletedConsumer(ctx, rabbitConn, handler, logger); err != nil {
			logger.Fatalf("start checkout.completed consumer: %v", err)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Printf("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("shutdown error: %v", err)
	}
	logger.Printf("shutdown complete")
}
