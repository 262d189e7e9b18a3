package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"planwise/internal/application/optimizer/dto"
	"planwise/internal/application/optimizer/usecases"
	"planwise/internal/shared/logger"
	"planwise/internal/shared/utils"
)

// Use case interfaces for OptimizerHandler

type resourceUtilizationUseCase interface {
	Execute(ctx context.Context, query usecases.ResourceUtilizationQuery) ([]dto.ResourceUtilizationDTO, error)
}

type detectConflictsUseCase interface {
	Execute(ctx context.Context, query usecases.DetectConflictsQuery) ([]dto.SchedulingConflictDTO, error)
}

type recommendAllocationUseCase interface {
	Execute(ctx context.Context, projectID uint) (*dto.OptimizationResultDTO, error)
}

// OptimizerHandler handles the analysis endpoints: utilization reporting,
// conflict detection, and allocation recommendations.
type OptimizerHandler struct {
	resourceUtilization resourceUtilizationUseCase
	detectConflicts     detectConflictsUseCase
	recommendAllocation recommendAllocationUseCase
	logger              logger.Interface
}

// NewOptimizerHandler creates a new optimizer handler
func NewOptimizerHandler(
	resourceUtilization resourceUtilizationUseCase,
	detectConflicts detectConflictsUseCase,
	recommendAllocation recommendAllocationUseCase,
	logger logger.Interface,
) *OptimizerHandler {
	return &OptimizerHandler{
		resourceUtilization: resourceUtilization,
		detectConflicts:     detectConflicts,
		recommendAllocation: recommendAllocation,
		logger:              logger,
	}
}

// GetUtilization handles GET /api/resources/utilization.
// An optional resource_id query parameter narrows the report to one resource.
func (h *OptimizerHandler) GetUtilization(c *gin.Context) {
	resourceID, err := utils.ParseOptionalIDQuery(c, "resource_id", "resource")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.resourceUtilization.Execute(c.Request.Context(), usecases.ResourceUtilizationQuery{
		ResourceID: resourceID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetConflicts handles GET /api/resources/conflicts.
// The optional project_id query parameter is accepted for API compatibility
// but does not narrow the result set.
func (h *OptimizerHandler) GetConflicts(c *gin.Context) {
	projectID, err := utils.ParseOptionalIDQuery(c, "project_id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.detectConflicts.Execute(c.Request.Context(), usecases.DetectConflictsQuery{
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// OptimizeProject handles GET /api/projects/:id/optimize
func (h *OptimizerHandler) OptimizeProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.recommendAllocation.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
