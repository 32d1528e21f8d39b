package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venue-calendar/internal/handler/api"
	"venue-calendar/internal/handler/middleware"
	"venue-calendar/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, calendarHandler *api.CalendarHandler, healthHandler *api.HealthHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, calendarHandler, healthHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, calendarHandler *api.CalendarHandler, healthHandler *api.HealthHandler) {
	engine.GET("/health", healthHandler.Health)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/availability"), []route{
			{Method: http.MethodGet, Path: "/conflicts", Handler: calendarHandler.CheckConflict},
		})

		addRoutes(apiGroup.Group("/calendar"), []route{
			{Method: http.MethodGet, Path: "/aggregates", Handler: calendarHandler.CalendarAggregates},
			{Method: http.MethodGet, Path: "/days/:date", Handler: calendarHandler.DayDetail},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
