package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/01moynul/todo-api-golang/internal/config"
	"github.com/01moynul/todo-api-golang/internal/database"
	"github.com/01moynul/todo-api-golang/internal/handlers"
	"github.com/01moynul/todo-api-golang/internal/routes"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}

func run() error {
	// 0. --- Load Configuration (.env + environment) ---
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	// 1. --- Database Connection Pool ---
	db, err := database.OpenDB(cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	// --- Application Setup ---
	app := &handlers.Handlers{
		DB:             db,
		StrictNotFound: cfg.StrictNotFound,
	}
	router := routes.SetupRouter(app, cfg.CORSAllowedOrigin)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Start Server & Wait For Shutdown Signal ---
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting todo API server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
