package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"planwise/internal/application/project/dto"
	"planwise/internal/application/project/usecases"
	resourcedto "planwise/internal/application/resource/dto"
	"planwise/internal/shared/logger"
	"planwise/internal/shared/utils"
)

// Use case interfaces for ProjectHandler

type createProjectUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProjectCommand) (*dto.ProjectDTO, error)
}

type getProjectUseCase interface {
	Execute(ctx context.Context, projectID uint) (*dto.ProjectDTO, error)
}

type listProjectsUseCase interface {
	Execute(ctx context.Context) ([]dto.ProjectDTO, error)
}

type addRequirementUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddRequirementCommand) (*dto.RequirementDTO, error)
}

type listRequirementsUseCase interface {
	Execute(ctx context.Context, projectID uint) ([]dto.RequirementDTO, error)
}

type listProjectAllocationsUseCase interface {
	Execute(ctx context.Context, projectID uint) ([]resourcedto.AllocationDTO, error)
}

// ProjectHandler handles project management endpoints
type ProjectHandler struct {
	createProject          createProjectUseCase
	getProject             getProjectUseCase
	listProjects           listProjectsUseCase
	addRequirement         addRequirementUseCase
	listRequirements       listRequirementsUseCase
	listProjectAllocations listProjectAllocationsUseCase
	logger                 logger.Interface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(
	createProject createProjectUseCase,
	getProject getProjectUseCase,
	listProjects listProjectsUseCase,
	addRequirement addRequirementUseCase,
	listRequirements listRequirementsUseCase,
	listProjectAllocations listProjectAllocationsUseCase,
	logger logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
		createProject:          createProject,
		getProject:             getProject,
		listProjects:           listProjects,
		addRequirement:         addRequirement,
		listRequirements:       listRequirements,
		listProjectAllocations: listProjectAllocations,
		logger:                 logger,
	}
}

// CreateProjectRequest is the payload for creating a project
type CreateProjectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// CreateProject handles POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.createProject.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "project created successfully")
}

// GetProject handles GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProject.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	result, err := h.listProjects.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// AddRequirementRequest is the payload for declaring a skill requirement
type AddRequirementRequest struct {
	SkillName           string  `json:"skill_name" binding:"required"`
	RequiredProficiency int     `json:"required_proficiency" binding:"required,min=1,max=5"`
	RequiredHours       float64 `json:"required_hours" binding:"min=0"`
	Description         string  `json:"description"`
}

// AddRequirement handles POST /api/projects/:id/requirements
func (h *ProjectHandler) AddRequirement(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.addRequirement.Execute(c.Request.Context(), usecases.AddRequirementCommand{
		ProjectID:           id,
		SkillName:           req.SkillName,
		RequiredProficiency: req.RequiredProficiency,
		RequiredHours:       req.RequiredHours,
		Description:         req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "requirement added successfully")
}

// ListRequirements handles GET /api/projects/:id/requirements
func (h *ProjectHandler) ListRequirements(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRequirements.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListAllocations handles GET /api/projects/:id/allocations
func (h *ProjectHandler) ListAllocations(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listProjectAllocations.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
