// Package handlers contains the gin HTTP handlers. Each handler depends on
// narrow use case interfaces so tests can substitute mocks.
package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"planwise/internal/application/resource/dto"
	"planwise/internal/application/resource/usecases"
	"planwise/internal/shared/logger"
	"planwise/internal/shared/utils"
)

// Use case interfaces for ResourceHandler

type createResourceUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateResourceCommand) (*dto.ResourceDTO, error)
}

type getResourceUseCase interface {
	Execute(ctx context.Context, resourceID uint) (*dto.ResourceDTO, error)
}

type listResourcesUseCase interface {
	Execute(ctx context.Context) ([]dto.ResourceDTO, error)
}

type addSkillUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddSkillCommand) (*dto.SkillDTO, error)
}

type allocateResourceUseCase interface {
	Execute(ctx context.Context, cmd usecases.AllocateResourceCommand) (*dto.AllocationDTO, error)
}

// ResourceHandler handles resource management endpoints
type ResourceHandler struct {
	createResource   createResourceUseCase
	getResource      getResourceUseCase
	listResources    listResourcesUseCase
	addSkill         addSkillUseCase
	allocateResource allocateResourceUseCase
	logger           logger.Interface
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(
	createResource createResourceUseCase,
	getResource getResourceUseCase,
	listResources listResourcesUseCase,
	addSkill addSkillUseCase,
	allocateResource allocateResourceUseCase,
	logger logger.Interface,
) *ResourceHandler {
	return &ResourceHandler{
		createResource:   createResource,
		getResource:      getResource,
		listResources:    listResources,
		addSkill:         addSkill,
		allocateResource: allocateResource,
		logger:           logger,
	}
}

// CreateResourceRequest is the payload for creating a resource
type CreateResourceRequest struct {
	Name          string           `json:"name" binding:"required"`
	Role          string           `json:"role"`
	CapacityHours float64          `json:"capacity_hours" binding:"min=0"`
	Department    string           `json:"department"`
	Location      string           `json:"location"`
	Skills        []dto.SkillInput `json:"skills"`
}

// CreateResource handles POST /api/resources
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.createResource.Execute(c.Request.Context(), usecases.CreateResourceCommand{
		Name:          req.Name,
		Role:          req.Role,
		CapacityHours: req.CapacityHours,
		Department:    req.Department,
		Location:      req.Location,
		Skills:        req.Skills,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "resource created successfully")
}

// GetResource handles GET /api/resources/:id
func (h *ResourceHandler) GetResource(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "resource")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getResource.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListResources handles GET /api/resources
func (h *ResourceHandler) ListResources(c *gin.Context) {
	result, err := h.listResources.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// AddSkillRequest is the payload for declaring a skill on a resource
type AddSkillRequest struct {
	SkillName        string `json:"skill_name" binding:"required"`
	ProficiencyLevel int    `json:"proficiency_level" binding:"required,min=1,max=5"`
}

// AddSkill handles POST /api/resources/:id/skills
func (h *ResourceHandler) AddSkill(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "resource")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.addSkill.Execute(c.Request.Context(), usecases.AddSkillCommand{
		ResourceID:       id,
		SkillName:        req.SkillName,
		ProficiencyLevel: req.ProficiencyLevel,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "skill added successfully")
}

// CreateAllocationRequest is the payload for a capacity-checked allocation
type CreateAllocationRequest struct {
	ProjectID      uint       `json:"project_id" binding:"required"`
	AllocatedHours float64    `json:"allocated_hours" binding:"required,gt=0"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
}

// CreateAllocation handles POST /api/resources/:id/allocations
func (h *ResourceHandler) CreateAllocation(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "resource")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.allocateResource.Execute(c.Request.Context(), usecases.AllocateResourceCommand{
		ResourceID:     id,
		ProjectID:      req.ProjectID,
		AllocatedHours: req.AllocatedHours,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "allocation created successfully")
}
