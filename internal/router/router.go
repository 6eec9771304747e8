package router

import (
	"aeon_dashboard/internal/handler"

	"github.com/gin-gonic/gin"
)

func InitRouter(query *handler.QueryHandler, health *handler.HealthHandler) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.POST("/neon-query", query.Handle)
		api.GET("/health", health.Handle)
	}

	return r
}
