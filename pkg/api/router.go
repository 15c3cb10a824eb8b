package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/radiowatch/radiowatch/pkg/api/handlers"
	"github.com/radiowatch/radiowatch/pkg/device"
	"github.com/radiowatch/radiowatch/pkg/device/schema"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine    *gin.Engine
	store     *device.Store
	validator *schema.Validator
	reader    handlers.SightingReader
}

// NewRouter creates a new API router. The sighting reader may be nil
// when the journal is disabled.
func NewRouter(store *device.Store, validator *schema.Validator, reader handlers.SightingReader) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:    engine,
		store:     store,
		validator: validator,
		reader:    reader,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/swagger/index.html")
	})

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.store)
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		devicesHandler := handlers.NewDevicesHandler(r.store)
		sightingsHandler := handlers.NewSightingsHandler(r.reader)
		devices := v1.Group("/devices")
		{
			devices.GET("", devicesHandler.ListDevices)
			devices.GET("/:mac/sightings", sightingsHandler.Sightings)
		}

		observationsHandler := handlers.NewObservationsHandler(r.store, r.validator)
		v1.POST("/observations", observationsHandler.Ingest)
	}
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
