package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"storefront/config"
	"storefront/internal/delivery"
	grpcHandler "storefront/internal/delivery/grpc"
	"storefront/internal/metrics"
	"storefront/internal/repository"
	"storefront/internal/seed"
	"storefront/internal/usecase"
	"storefront/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// run starts the HTTP and gRPC servers and blocks until ctx is cancelled or
// either server fails, then shuts both down.
func run(ctx context.Context, cfg *config.Config) error {
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Infof("Starting Storefront %s...", Version)

	seedData, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	// --- Dependency Injection ---
	store := repository.NewMemoryStore(log, seedData.StoreOptions()...)
	if err := metrics.RegisterStoreGauges(store.Stats); err != nil {
		return fmt.Errorf("register store gauges: %w", err)
	}

	productUseCase := usecase.NewProductUseCase(store, log)
	useCases := delivery.UseCases{
		Products:  productUseCase,
		Carts:     usecase.NewCartUseCase(store, store, log),
		Wishlists: usecase.NewWishlistUseCase(store, store, log),
		Orders:    usecase.NewOrderUseCase(store, store, log),
		Auth:      usecase.NewAuthUseCase(store, log),
		Stats:     store.Stats,
	}
	log.Info("Use cases initialized.")

	gin.SetMode(cfg.GinMode)
	router := delivery.NewRouter(delivery.RouterConfig{
		DefaultUserID:      cfg.DefaultUserID,
		RequireAdmin:       cfg.RequireAdmin,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
		LoginBurst:         cfg.LoginBurst,
	}, useCases, log)

	httpServer := &http.Server{
		Addr:         cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	grpcServer, healthServer := grpcHandler.NewServer(grpcHandler.NewCatalogHandler(productUseCase, log), log)
	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		return fmt.Errorf("listen on gRPC port %s: %w", cfg.GrpcPort, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("HTTP server listening on %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve HTTP: %w", err)
		}
		log.Info("HTTP server stopped serving.")
		return nil
	})

	g.Go(func() error {
		log.Infof("gRPC server listening on %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		log.Info("gRPC server stopped serving.")
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Warn("Shutdown signal received...")

		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		healthServer.SetServingStatus(grpcHandler.CatalogServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		log.Info("Attempting graceful shutdown of HTTP server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Errorf("HTTP server shutdown error: %v", err)
		}

		log.Info("Attempting graceful shutdown of gRPC server...")
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
			log.Info("gRPC server gracefully stopped.")
		case <-shutdownCtx.Done():
			log.Warn("gRPC graceful stop timed out, forcing stop")
			grpcServer.Stop()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Errorf("Storefront stopped with error: %v", err)
		return err
	}
	log.Info("Storefront shut down gracefully.")
	return nil
}
