package main

import (
	"errors"
	"fmt"

	"oper-review-backend/internal/api/routes"
	"oper-review-backend/internal/config"
	"oper-review-backend/internal/database"
	apperrors "oper-review-backend/internal/errors"
	"oper-review-backend/internal/logger"
	"oper-review-backend/internal/repository"
	"oper-review-backend/internal/seed"
	"oper-review-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newRootCommand() *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:           "oper-review",
		Short:         "Operational review backend",
		Long:          "Serves the unit hierarchy, report templates and report plugins over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load environment variables from .env file in development
			if err := godotenv.Load(); err != nil {
				logrus.Info("No .env file found, using system environment variables")
			}

			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = loaded

			logger.Setup(cfg.LogLevel, true)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, cfg)
		},
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd, cfg)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := openDatabase(cfg, nil); err != nil {
					return err
				}
				logrus.Info("Database schema is up to date")
				return nil
			},
		},
		newSeedCommand(func() *config.Config { return cfg }),
	)

	return rootCmd
}

func newSeedCommand(currentConfig func() *config.Config) *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the org directory with the YAML demo data",
		Example: `  oper-review seed
  oper-review seed --data-dir ./my-data`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()
			if dataDir == "" {
				dataDir = cfg.SeedDataDir
			}

			// Suppress GORM query logs during data loading
			db, err := openDatabase(cfg, &database.Options{LogLevel: gormlogger.Silent})
			if err != nil {
				return err
			}

			result, err := seed.Run(cmd.Context(), db, dataDir)
			if err != nil {
				return fmt.Errorf("failed to seed: %w", err)
			}

			logrus.WithFields(logrus.Fields{
				"employees":   result.Employees,
				"units":       result.Units,
				"assignments": result.Assignments,
			}).Info("Seed data loaded")
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory with employees, units and assignments YAML files (default SEED_DATA_DIR)")

	return cmd
}

func openDatabase(cfg *config.Config, opts *database.Options) (*gorm.DB, error) {
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func runServe(cmd *cobra.Command, cfg *config.Config) error {
	db, err := openDatabase(cfg, nil)
	if err != nil {
		return err
	}

	if err := checkRoot(cmd, db, cfg); err != nil {
		return err
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		return err
	}

	logrus.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// checkRoot logs a broken org tree and fails only when a single root is required
func checkRoot(cmd *cobra.Command, db *gorm.DB, cfg *config.Config) error {
	orgService := service.NewOrgService(repository.NewUnitRepository(db))
	err := orgService.CheckRootInvariant(cmd.Context())
	if err == nil {
		return nil
	}

	entry := logrus.WithError(err)
	if errors.Is(err, apperrors.ErrNoRootUnit) {
		entry.Warn("Org directory is empty, run the seed command to load demo data")
	} else {
		entry.Error("Org directory root check failed")
	}

	if cfg.RequireSingleRoot {
		return fmt.Errorf("REQUIRE_SINGLE_ROOT is set: %w", err)
	}
	return nil
}
