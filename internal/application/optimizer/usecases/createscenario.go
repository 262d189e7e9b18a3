package usecases

import (
	"context"
	"fmt"

	"planwise/internal/application/optimizer/dto"
	"planwise/internal/domain/scenario"
	"planwise/internal/shared/errors"
	"planwise/internal/shared/logger"
)

// CreateScenarioCommand carries a named hypothetical allocation set.
type CreateScenarioCommand struct {
	Name        string
	Description string
	Allocations []dto.ProposedAllocationInput
}

// CreateScenarioUseCase persists a what-if scenario with derived metrics.
// The allocation list is stored as a frozen snapshot; it never becomes live
// allocation data and no capacity validation happens here.
type CreateScenarioUseCase struct {
	scenarioRepo scenario.Repository
	logger       logger.Interface
}

// NewCreateScenarioUseCase creates a new CreateScenarioUseCase
func NewCreateScenarioUseCase(scenarioRepo scenario.Repository, logger logger.Interface) *CreateScenarioUseCase {
	return &CreateScenarioUseCase{
		scenarioRepo: scenarioRepo,
		logger:       logger,
	}
}

// Execute creates and stores the scenario.
func (uc *CreateScenarioUseCase) Execute(ctx context.Context, cmd CreateScenarioCommand) (*dto.ScenarioDTO, error) {
	allocations := make([]scenario.ProposedAllocation, 0, len(cmd.Allocations))
	for _, alloc := range cmd.Allocations {
		allocations = append(allocations, scenario.ProposedAllocation{
			ResourceID:     alloc.ResourceID,
			ProjectID:      alloc.ProjectID,
			AllocatedHours: alloc.AllocatedHours,
			StartDate:      alloc.StartDate,
			EndDate:        alloc.EndDate,
		})
	}

	sc, err := scenario.NewScenario(cmd.Name, cmd.Description, allocations)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.scenarioRepo.Create(ctx, sc); err != nil {
		uc.logger.Errorw("failed to save scenario", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to save scenario: %w", err)
	}

	uc.logger.Infow("scenario created",
		"id", sc.ID(),
		"name", sc.Name(),
		"allocations", sc.Metrics().AllocationsCount,
	)

	result := scenarioToDTO(sc)
	return &result, nil
}

func scenarioToDTO(sc *scenario.Scenario) dto.ScenarioDTO {
	allocations := make([]dto.ProposedAllocationInput, 0, sc.Metrics().AllocationsCount)
	for _, alloc := range sc.Allocations() {
		allocations = append(allocations, dto.ProposedAllocationInput{
			ResourceID:     alloc.ResourceID,
			ProjectID:      alloc.ProjectID,
			AllocatedHours: alloc.AllocatedHours,
			StartDate:      alloc.StartDate,
			EndDate:        alloc.EndDate,
		})
	}

	metrics := sc.Metrics()

	return dto.ScenarioDTO{
		ID:          sc.ID(),
		Name:        sc.Name(),
		Description: sc.Description(),
		Allocations: allocations,
		Metrics: dto.ScenarioMetricsDTO{
			TotalAllocatedHours: metrics.TotalAllocatedHours,
			ResourcesInvolved:   metrics.ResourcesInvolved,
			ProjectsInvolved:    metrics.ProjectsInvolved,
			AllocationsCount:    metrics.AllocationsCount,
		},
		CreatedAt: sc.CreatedAt(),
	}
}
