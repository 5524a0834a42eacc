package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"

	"photosync/internal/config"
	"photosync/internal/database"
	"photosync/internal/domain/photo"
	"photosync/internal/pkg/logging"
	"photosync/internal/server"
)

var (
	envFile     string
	port        string
	storageDir  string
	databaseURL string
)

var rootCmd = &cobra.Command{
	Use:   "photosync",
	Short: "PhotoSync upload backend",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		db, err := database.Connect(cfg.DatabaseURL, database.WithLogLevel(logger.Warn))
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := server.NewApp(ctx, cfg, db, logging.New(cfg.LogLevel, os.Stdout))
		if err != nil {
			return err
		}
		return app.Run(ctx)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the photos table and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg.DatabaseURL, database.WithLogLevel(logger.Info))
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		if err := photo.NewRepository(db).Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("migrate photos: %w", err)
		}
		log.Println("Database migration completed")
		return nil
	},
}

// loadConfig reads the environment and applies any flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = port
	}
	if flags.Changed("storage-dir") {
		cfg.StorageDirectory = storageDir
	}
	if flags.Changed("database-url") {
		cfg.DatabaseURL = databaseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to an optional .env file")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "database DSN (postgres:// or sqlite path)")

	serveCmd.Flags().StringVar(&port, "port", "", "HTTP listen port")
	serveCmd.Flags().StringVar(&storageDir, "storage-dir", "", "directory for uploaded files")

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
