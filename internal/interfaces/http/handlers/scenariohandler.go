package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"planwise/internal/application/optimizer/dto"
	"planwise/internal/application/optimizer/usecases"
	"planwise/internal/shared/logger"
	"planwise/internal/shared/utils"
)

// Use case interfaces for ScenarioHandler

type createScenarioUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateScenarioCommand) (*dto.ScenarioDTO, error)
}

type compareScenariosUseCase interface {
	Execute(ctx context.Context, query usecases.CompareScenariosQuery) (*dto.ScenarioComparisonDTO, error)
}

// ScenarioHandler handles what-if scenario endpoints
type ScenarioHandler struct {
	createScenario   createScenarioUseCase
	compareScenarios compareScenariosUseCase
	logger           logger.Interface
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(
	createScenario createScenarioUseCase,
	compareScenarios compareScenariosUseCase,
	logger logger.Interface,
) *ScenarioHandler {
	return &ScenarioHandler{
		createScenario:   createScenario,
		compareScenarios: compareScenarios,
		logger:           logger,
	}
}

// CreateScenarioRequest is the payload for storing a what-if scenario
type CreateScenarioRequest struct {
	Name        string                        `json:"name" binding:"required"`
	Description string                        `json:"description"`
	Allocations []dto.ProposedAllocationInput `json:"allocations" binding:"dive"`
}

// CreateScenario handles POST /api/scenarios
func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	var req CreateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.createScenario.Execute(c.Request.Context(), usecases.CreateScenarioCommand{
		Name:        req.Name,
		Description: req.Description,
		Allocations: req.Allocations,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "scenario created successfully")
}

// CompareScenariosRequest names the stored scenarios to compare
type CompareScenariosRequest struct {
	ScenarioIDs []uint `json:"scenario_ids" binding:"required,min=1"`
}

// CompareScenarios handles POST /api/scenarios/compare
func (h *ScenarioHandler) CompareScenarios(c *gin.Context) {
	var req CompareScenariosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.FormatBindingError(err))
		return
	}

	result, err := h.compareScenarios.Execute(c.Request.Context(), usecases.CompareScenariosQuery{
		ScenarioIDs: req.ScenarioIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
