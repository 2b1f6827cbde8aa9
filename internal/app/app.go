package app

import (
	"realty-backend/internal/config"
	"realty-backend/internal/dashboard"
	"realty-backend/internal/database"
	"realty-backend/internal/health"
	"realty-backend/internal/middleware"
	"realty-backend/internal/properties"
	"realty-backend/internal/showings"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. DB and Redis are returned so main can ping them before listen.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	// CORS (before everything else)
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
	}))

	// Redis is optional; without it health stats are simply not recorded.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opts)
	}

	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	// Health endpoints (no DB requirement; they report what is reachable)
	var pinger health.DBPinger
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			pinger = sqlDB
		}
	}
	healthHandlers := &health.Handlers{
		Rdb:            rdb,
		DB:             pinger,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/health/json", healthHandlers.JSON)
	app.Get("/health/errors", healthHandlers.Errors)
	app.Get("/health/reset", healthHandlers.Reset)

	// db may be nil when DATABASE_URL is not set (e.g. app-level tests)
	if db != nil {
		propertyService := &properties.Service{DB: db}
		propertyHandlers := &properties.Handlers{Service: propertyService}
		app.Get("/api/properties", propertyHandlers.GetAllProperties)
		app.Get("/api/properties/unsold", propertyHandlers.GetUnsoldCount)
		app.Post("/api/properties", propertyHandlers.CreateProperty)
		app.Put("/api/properties/:id", propertyHandlers.UpdateProperty)
		app.Delete("/api/properties/:id", propertyHandlers.DeleteProperty)

		showingService := &showings.Service{DB: db}
		showingHandlers := &showings.Handlers{Service: showingService}
		app.Get("/api/showings/list", showingHandlers.ListShowings)
		app.Get("/api/showings/active", showingHandlers.GetActiveCount)
		app.Get("/api/showings/property/:propertyId", showingHandlers.GetPropertyShowings)
		app.Post("/api/showings", showingHandlers.CreateShowing)
		app.Put("/api/showings/:id", showingHandlers.UpdateShowing)
		app.Delete("/api/showings/:id", showingHandlers.DeleteShowing)

		dashboardService := &dashboard.Service{DB: db}
		dashboardHandlers := &dashboard.Handlers{Service: dashboardService, SalesYear: cfg.SalesYear}
		app.Get("/api/dashboard", dashboardHandlers.GetSalesSummary)
	}

	return app, db, rdb, nil
}
