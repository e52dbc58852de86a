package app

import (
	"progress_clock_backend/docs"
	"progress_clock_backend/internal/config"
	"progress_clock_backend/internal/controller"
	"progress_clock_backend/internal/middleware"
	"progress_clock_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	if cfg.Storage.Type == config.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	router.NoRoute(controller.NotFound)

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/clock.svg", c.clock.GetSVG)
		api.GET("/clock/wedges", c.clock.GetWedges)
		api.GET("/clock/style", c.clock.GetStyle)

		// 导出会写入存储，需要授权
		api.POST("/clock/export", middleware.AuthMiddleware(cfg.JWT.Secret), c.clock.Export)
	}
}
