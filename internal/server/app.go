// Package server wires the stores, the upload workflow and the HTTP surface
// together and runs the HTTP server until its context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"photosync/internal/config"
	"photosync/internal/domain/health"
	"photosync/internal/domain/photo"
	"photosync/internal/middleware"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	log    *logrus.Logger
	router *gin.Engine
}

// NewApp builds every component explicitly from cfg and db and migrates the
// photos table.
func NewApp(ctx context.Context, cfg *config.Config, db *gorm.DB, log *logrus.Logger) (*App, error) {
	repo := photo.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate photos: %w", err)
	}

	storage := photo.NewLocalStorage(cfg.StorageDirectory)
	photoService := photo.NewService(repo, storage, cfg.MaxUploadSize, log)

	router := NewRouter(cfg, log, photo.NewHandler(photoService, log), health.NewHandler())

	return &App{config: cfg, log: log, router: router}, nil
}

func (a *App) Handler() http.Handler {
	return a.router
}

// NewRouter registers all routes under /api.
func NewRouter(cfg *config.Config, log *logrus.Logger, photoHandler *photo.Handler, healthHandler *health.Handler) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestLogger(log),
		middleware.ErrorLogger(log),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	api := r.Group("/api")
	{
		photo.RegisterRoutes(api, photoHandler)
		health.RegisterRoutes(api, healthHandler)
	}
	return r
}

// Run serves HTTP until ctx is done, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.config.Addr(),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.WithField("addr", srv.Addr).Info("Starting PhotoSync server...")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
