package routes

import (
	"github.com/gin-gonic/gin"

	"planwise/internal/interfaces/http/handlers"
)

// ScenarioRouteConfig holds dependencies for scenario routes.
type ScenarioRouteConfig struct {
	ScenarioHandler *handlers.ScenarioHandler
}

// SetupScenarioRoutes configures what-if scenario routes.
func SetupScenarioRoutes(api *gin.RouterGroup, cfg *ScenarioRouteConfig) {
	scenarios := api.Group("/scenarios")
	{
		scenarios.POST("", cfg.ScenarioHandler.CreateScenario)
		scenarios.POST("/compare", cfg.ScenarioHandler.CompareScenarios)
	}
}
