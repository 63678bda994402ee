package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jowa-zm/jowa-backend/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	h := handler.NewHandler(deps)

	r.GET("/", h.Home)

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/stats", h.GetStats)
		api.GET("/jobs", h.ListJobs)
		api.GET("/payments", h.ListPayments)
		api.POST("/create_job", h.CreateJob)
	}

	return r
}
