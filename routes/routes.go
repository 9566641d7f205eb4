package routes

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/projectdesk-api/api/v1"
	"github.com/projectdesk-api/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// SetupRoutes mounts the public endpoints and the versioned API on router
func SetupRoutes(router *gin.Engine, deps v1.Dependencies, gatherer prometheus.Gatherer) {
	// Public routes
	router.GET("/", v1.HealthCheck)
	router.GET("/metrics", middleware.MetricsHandler(gatherer))

	// API routes
	api := router.Group("/api/v1")
	v1.RegisterRoutes(api, deps)
}
