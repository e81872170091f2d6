package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"agrimart/internal/config"
	"agrimart/internal/db"
	"agrimart/internal/httpserver"
	"agrimart/internal/payment"
	cartrepo "agrimart/internal/repository/cart"
	orderrepo "agrimart/internal/repository/order"
	productrepo "agrimart/internal/repository/product"
	tokenrepo "agrimart/internal/repository/token"
	userrepo "agrimart/internal/repository/user"
	wishlistrepo "agrimart/internal/repository/wishlist"
	cartsvc "agrimart/internal/service/cart"
	catalogsvc "agrimart/internal/service/catalog"
	ordersvc "agrimart/internal/service/order"
	usersvc "agrimart/internal/service/user"
	wishlistsvc "agrimart/internal/service/wishlist"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	wishlistRepo := wishlistrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)

	catalogService := catalogsvc.New(productRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	wishlistService := wishlistsvc.New(wishlistRepo)
	orderService := ordersvc.New(orderRepo, cartRepo, payment.Sandbox{})
	userService := usersvc.New(userRepo, tokenRepo, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:  catalogService,
		Cart:     cartService,
		Wishlist: wishlistService,
		Orders:   orderService,
		Users:    userService,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
