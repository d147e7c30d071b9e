package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fashionstore/internal/cache"
	"fashionstore/internal/config"
	"fashionstore/internal/db"
	"fashionstore/internal/httpserver"
	"fashionstore/internal/repository/cartsnapshot"
	orderrepo "fashionstore/internal/repository/order"
	productrepo "fashionstore/internal/repository/product"
	userrepo "fashionstore/internal/repository/user"
	authsvc "fashionstore/internal/service/auth"
	catalogsvc "fashionstore/internal/service/catalog"
	chatsvc "fashionstore/internal/service/chat"
	ordersvc "fashionstore/internal/service/order"
	"fashionstore/internal/session"
	"fashionstore/pkg/logger"
	"fashionstore/pkg/storage"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Env, cfg.LogLevel)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to db")
	}
	defer dbpool.Close()

	memCache := cache.NewMemory(cfg.CatalogCacheTTL, 5*time.Minute)

	productRepo := productrepo.NewPostgres(dbpool, log)
	orderRepo := orderrepo.NewPostgres(dbpool, log)
	userRepo := userrepo.NewPostgres(dbpool, log)
	snapshots := cartsnapshot.NewPostgres(dbpool)

	catalogService := catalogsvc.New(productRepo, memCache, cfg.CatalogCacheTTL)
	orderService := ordersvc.New(orderRepo)
	authService := authsvc.New(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	chatService := chatsvc.New()
	carts := session.NewRegistry(snapshots, memCache, cfg.CartSessionTTL, log)

	var uploads *storage.ObjectStorage
	if cfg.UploadsEnabled() {
		uploads, err = storage.New(ctx, cfg.UploadAccountID, cfg.UploadAccessKey, cfg.UploadSecretKey,
			cfg.UploadBucket, cfg.UploadPublicURL, cfg.UploadTimeout)
		if err != nil {
			log.Fatal().Err(err).Msg("init object storage")
		}
	} else {
		log.Warn().Msg("object storage not configured, image uploads disabled")
	}

	srv := httpserver.New(cfg.HTTPAddr, log, dbpool, httpserver.Deps{
		Catalog: catalogService,
		Orders:  orderService,
		Auth:    authService,
		Chat:    chatService,
		Carts:   carts,
		Uploads: uploads,
	}, httpserver.Options{
		RateLimitPerSec: cfg.RateLimitPerSec,
		RateLimitBurst:  cfg.RateLimitBurst,
		SessionTTL:      cfg.CartSessionTTL,
		MaxUploadBytes:  cfg.UploadMaxSizeMB << 20,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		log.Error().Err(err).Msg("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		log.Info().Msg("server stopped")
	}
}
