// Package routes wires handlers to URL paths. Route registration is kept
// separate from handler construction so the router stays declarative.
package routes

import (
	"github.com/gin-gonic/gin"

	"planwise/internal/interfaces/http/handlers"
)

// ResourceRouteConfig holds dependencies for resource management routes.
type ResourceRouteConfig struct {
	ResourceHandler  *handlers.ResourceHandler
	OptimizerHandler *handlers.OptimizerHandler
}

// SetupResourceRoutes configures resource management and analysis routes.
func SetupResourceRoutes(api *gin.RouterGroup, cfg *ResourceRouteConfig) {
	resources := api.Group("/resources")
	{
		resources.POST("", cfg.ResourceHandler.CreateResource)
		resources.GET("", cfg.ResourceHandler.ListResources)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		resources.GET("/utilization", cfg.OptimizerHandler.GetUtilization)
		resources.GET("/conflicts", cfg.OptimizerHandler.GetConflicts)

		resources.GET("/:id", cfg.ResourceHandler.GetResource)
		resources.POST("/:id/skills", cfg.ResourceHandler.AddSkill)
		resources.POST("/:id/allocations", cfg.ResourceHandler.CreateAllocation)
	}
}
