package routes

import (
	"fmt"

	"oper-review-backend/internal/api/handlers"
	"oper-review-backend/internal/api/middleware"
	"oper-review-backend/internal/config"
	"oper-review-backend/internal/metrics"
	"oper-review-backend/internal/plugins"
	"oper-review-backend/internal/repository"
	"oper-review-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	m := metrics.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(m))

	rateLimit, err := middleware.RateLimit(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	// Initialize validator
	validator := service.NewValidator()
	catalog := plugins.NewDefaultCatalog()

	// Initialize repositories
	unitRepo := repository.NewUnitRepository(db)
	templateRepo := repository.NewReportTemplateRepository(db)
	reportRepo := repository.NewReportRepository(db)
	healthRepo := repository.NewHealthCheckRepository(db)

	// Initialize services
	templateOpts := []service.ReportTemplateOption{service.WithTemplateMetrics(m)}
	if cfg.StrictPluginValidation {
		templateOpts = append(templateOpts, service.WithStrictPlugins(catalog))
	}
	orgService := service.NewOrgService(unitRepo)
	templateService := service.NewReportTemplateService(templateRepo, validator, templateOpts...)
	reportService := service.NewReportService(reportRepo, unitRepo, validator)
	pluginService := service.NewReportPluginService(catalog)
	healthService := service.NewHealthService(healthRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(healthService)
	unitHandler := handlers.NewUnitHandler(orgService)
	templateHandler := handlers.NewReportTemplateHandler(templateService)
	reportHandler := handlers.NewReportHandler(reportService)
	pluginHandler := handlers.NewReportPluginHandler(pluginService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Metrics
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(rateLimit)
	{
		units := api.Group("/units")
		{
			units.GET("/root", unitHandler.GetRootUnit)
			units.GET("/:id", unitHandler.GetUnit)
			units.GET("/:id/report-template", templateHandler.GetReportTemplate)
			units.PUT("/:id/report-template", templateHandler.PutReportTemplate)
			units.GET("/:id/reports", reportHandler.ListReports)
			units.POST("/:id/reports", reportHandler.CreateReport)
		}

		reportPlugins := api.Group("/report-plugins")
		{
			reportPlugins.GET("", pluginHandler.ListPlugins)
			reportPlugins.POST("/:pluginId/render", pluginHandler.RenderPlugin)
			reportPlugins.POST("/:pluginId/snapshot", pluginHandler.SnapshotPlugin)
		}
	}

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(service.NewHealthService(repository.NewHealthCheckRepository(db)))
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
