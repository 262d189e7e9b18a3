// Package http assembles the gin engine: repositories, use cases, handlers,
// middleware, and route registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	optimizerUC "planwise/internal/application/optimizer/usecases"
	projectUC "planwise/internal/application/project/usecases"
	resourceUC "planwise/internal/application/resource/usecases"
	"planwise/internal/infrastructure/config"
	"planwise/internal/infrastructure/repository"
	"planwise/internal/interfaces/http/handlers"
	"planwise/internal/interfaces/http/middleware"
	"planwise/internal/interfaces/http/routes"
	"planwise/internal/shared/db"
	"planwise/internal/shared/logger"
)

// Router owns the gin engine and the wired handler graph.
type Router struct {
	engine *gin.Engine
	db     *gorm.DB
	config *config.Config
	logger logger.Interface

	resourceHandler  *handlers.ResourceHandler
	projectHandler   *handlers.ProjectHandler
	optimizerHandler *handlers.OptimizerHandler
	scenarioHandler  *handlers.ScenarioHandler
}

// NewRouter wires repositories and use cases into handlers and returns a
// router ready for SetupRoutes.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	// Repositories
	resourceRepo := repository.NewResourceRepository(database, log)
	skillRepo := repository.NewResourceSkillRepository(database, log)
	allocationRepo := repository.NewAllocationRepository(database, log)
	projectRepo := repository.NewProjectRepository(database, log)
	requirementRepo := repository.NewProjectRequirementRepository(database, log)
	scenarioRepo := repository.NewScenarioRepository(database, log)

	txManager := db.NewTransactionManager(database)

	// Resource use cases
	createResource := resourceUC.NewCreateResourceUseCase(resourceRepo, skillRepo, log)
	getResource := resourceUC.NewGetResourceUseCase(resourceRepo, skillRepo, log)
	listResources := resourceUC.NewListResourcesUseCase(resourceRepo, skillRepo, log)
	addSkill := resourceUC.NewAddSkillUseCase(resourceRepo, skillRepo, log)
	allocateResource := resourceUC.NewAllocateResourceUseCase(resourceRepo, allocationRepo, txManager, log)

	// Project use cases
	createProject := projectUC.NewCreateProjectUseCase(projectRepo, log)
	getProject := projectUC.NewGetProjectUseCase(projectRepo, log)
	listProjects := projectUC.NewListProjectsUseCase(projectRepo, log)
	addRequirement := projectUC.NewAddRequirementUseCase(projectRepo, requirementRepo, log)
	listRequirements := projectUC.NewListRequirementsUseCase(projectRepo, requirementRepo, log)
	listProjectAllocations := projectUC.NewListProjectAllocationsUseCase(projectRepo, allocationRepo, log)

	// Optimizer use cases
	utilization := optimizerUC.NewResourceUtilizationUseCase(resourceRepo, allocationRepo, projectRepo, log)
	conflicts := optimizerUC.NewDetectConflictsUseCase(resourceRepo, allocationRepo, log)
	skillMatch := optimizerUC.NewSkillMatchUseCase(skillRepo, requirementRepo, log)
	recommend := optimizerUC.NewRecommendAllocationUseCase(
		projectRepo, resourceRepo, allocationRepo, skillMatch, conflicts, utilization, log)
	createScenario := optimizerUC.NewCreateScenarioUseCase(scenarioRepo, log)
	compareScenarios := optimizerUC.NewCompareScenariosUseCase(scenarioRepo, log)

	return &Router{
		engine: gin.New(),
		db:     database,
		config: cfg,
		logger: log,
		resourceHandler: handlers.NewResourceHandler(
			createResource, getResource, listResources, addSkill, allocateResource, log),
		projectHandler: handlers.NewProjectHandler(
			createProject, getProject, listProjects, addRequirement, listRequirements, listProjectAllocations, log),
		optimizerHandler: handlers.NewOptimizerHandler(utilization, conflicts, recommend, log),
		scenarioHandler:  handlers.NewScenarioHandler(createScenario, compareScenarios, log),
	}
}

// SetupRoutes registers middleware and all API routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CustomLogger(r.logger))
	r.engine.Use(middleware.CORS(r.config.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupResourceRoutes(api, &routes.ResourceRouteConfig{
		ResourceHandler:  r.resourceHandler,
		OptimizerHandler: r.optimizerHandler,
	})
	routes.SetupProjectRoutes(api, &routes.ProjectRouteConfig{
		ProjectHandler:   r.projectHandler,
		OptimizerHandler: r.optimizerHandler,
	})
	routes.SetupScenarioRoutes(api, &routes.ScenarioRouteConfig{
		ScenarioHandler: r.scenarioHandler,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
