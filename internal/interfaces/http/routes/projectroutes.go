package routes

import (
	"github.com/gin-gonic/gin"

	"planwise/internal/interfaces/http/handlers"
)

// ProjectRouteConfig holds dependencies for project management routes.
type ProjectRouteConfig struct {
	ProjectHandler   *handlers.ProjectHandler
	OptimizerHandler *handlers.OptimizerHandler
}

// SetupProjectRoutes configures project management and optimization routes.
func SetupProjectRoutes(api *gin.RouterGroup, cfg *ProjectRouteConfig) {
	projects := api.Group("/projects")
	{
		projects.POST("", cfg.ProjectHandler.CreateProject)
		projects.GET("", cfg.ProjectHandler.ListProjects)
		projects.GET("/:id", cfg.ProjectHandler.GetProject)
		projects.POST("/:id/requirements", cfg.ProjectHandler.AddRequirement)
		projects.GET("/:id/requirements", cfg.ProjectHandler.ListRequirements)
		projects.GET("/:id/allocations", cfg.ProjectHandler.ListAllocations)
		projects.GET("/:id/optimize", cfg.OptimizerHandler.OptimizeProject)
	}
}
