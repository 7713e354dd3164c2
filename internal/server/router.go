package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/placer-backend/internal/handlers"
	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/middleware"
)

type RouterConfig struct {
	Log           *logger.Logger
	CORSOrigins   string
	StatusHandler *handlers.StatusHandler
	PlacerHandler *handlers.PlacerHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(otelgin.Middleware("placer-backend"))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/", handlers.Root)
		api.GET("/status", cfg.StatusHandler.List)
		api.POST("/status", cfg.StatusHandler.Create)

		placer := api.Group("/placer")
		{
			placer.POST("/signup", cfg.PlacerHandler.Signup)
			placer.POST("/suggest", cfg.PlacerHandler.Suggest)
			placer.GET("/cards", cfg.PlacerHandler.Cards)
			placer.POST("/swipe", cfg.PlacerHandler.Swipe)
			placer.GET("/options", cfg.PlacerHandler.Options)
		}
	}

	return router
}
