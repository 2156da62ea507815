// server/cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booking-management-api-server/config"
	"booking-management-api-server/internal/api/handlers"
	"booking-management-api-server/internal/api/routes"
	"booking-management-api-server/internal/database"
	"booking-management-api-server/internal/repository"
	"booking-management-api-server/internal/repository/memory"
	"booking-management-api-server/internal/repository/mongodb"
	"booking-management-api-server/internal/s3"
	"booking-management-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("API server: %v", err)
	}
}

// run owns every resource so that deferred cleanup happens on all exit paths.
func run() error {
	// 1. Load configuration, .env first if there is one
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not load .env: %w", err)
	}
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Document store
	var (
		drivers  repository.DriverRepository
		bookings repository.BookingRepository
		pinger   handlers.Pinger
	)
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Println("Using in-memory store; data is lost on restart")
		store := memory.NewStore()
		drivers, bookings, pinger = store.Drivers, store.Bookings, store
	default:
		store, err := database.Connect(ctx, cfg.Mongo)
		if err != nil {
			return fmt.Errorf("could not connect to MongoDB: %w", err)
		}
		defer func() {
			if err := store.Close(context.Background()); err != nil {
				log.Printf("MongoDB disconnect: %v", err)
			}
		}()
		drivers, bookings, pinger = mongodb.NewDriverRepo(store.DB), mongodb.NewBookingRepo(store.DB), store
	}

	// 3. Demo drivers, if configured
	if _, err := database.SeedDrivers(ctx, drivers, cfg.Seed.Drivers); err != nil {
		log.Printf("Seeding drivers failed: %v", err)
	}

	// 4. Optional snapshot exports
	var uploader handlers.SnapshotUploader
	if cfg.S3.Enabled() {
		u, err := s3.NewUploader(cfg.S3)
		if err != nil {
			return fmt.Errorf("could not create S3 uploader: %w", err)
		}
		uploader = u
	}

	router := routes.SetupRouter(cfg, drivers, bookings, pinger, socket.NewHub(), uploader)

	// 5. Start server
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(ctx, server)
}

// serve runs server until ctx is cancelled, then shuts it down gracefully.
// A listen failure is returned instead of exiting, so callers' defers still run.
func serve(ctx context.Context, server *http.Server) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Starting API server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to run server: %w", err)
	case <-ctx.Done():
	}
	log.Println("Shutting down API server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	return nil
}
