package usecases

import (
	"context"
	"fmt"

	"planwise/internal/application/optimizer/dto"
	"planwise/internal/domain/scenario"
	"planwise/internal/shared/errors"
	"planwise/internal/shared/logger"
)

// CompareScenariosQuery names the stored scenarios to compare.
type CompareScenariosQuery struct {
	ScenarioIDs []uint
}

// CompareScenariosUseCase builds a columnar comparison over stored scenarios
// and recommends the one with the least total allocated hours. That is a
// crude efficiency proxy with no secondary tie-break; the first scenario
// with the minimum wins.
type CompareScenariosUseCase struct {
	scenarioRepo scenario.Repository
	logger       logger.Interface
}

// NewCompareScenariosUseCase creates a new CompareScenariosUseCase
func NewCompareScenariosUseCase(scenarioRepo scenario.Repository, logger logger.Interface) *CompareScenariosUseCase {
	return &CompareScenariosUseCase{
		scenarioRepo: scenarioRepo,
		logger:       logger,
	}
}

// Execute compares the named scenarios. IDs that do not resolve are skipped;
// the comparison fails with a not found error only when none resolve.
func (uc *CompareScenariosUseCase) Execute(ctx context.Context, query CompareScenariosQuery) (*dto.ScenarioComparisonDTO, error) {
	scenarios, err := uc.scenarioRepo.GetByIDs(ctx, query.ScenarioIDs)
	if err != nil {
		uc.logger.Errorw("failed to get scenarios", "error", err, "scenario_ids", query.ScenarioIDs)
		return nil, fmt.Errorf("failed to get scenarios: %w", err)
	}

	if len(scenarios) == 0 {
		return nil, errors.NewNotFoundError("no valid scenarios found")
	}

	metrics := dto.ComparisonMetricsDTO{
		TotalHours:       make([]float64, 0, len(scenarios)),
		ResourcesUsed:    make([]int, 0, len(scenarios)),
		ProjectsCovered:  make([]int, 0, len(scenarios)),
		AllocationsCount: make([]int, 0, len(scenarios)),
	}

	results := make([]dto.ScenarioDTO, 0, len(scenarios))
	bestIdx := 0

	for i, sc := range scenarios {
		m := sc.Metrics()
		metrics.TotalHours = append(metrics.TotalHours, m.TotalAllocatedHours)
		metrics.ResourcesUsed = append(metrics.ResourcesUsed, m.ResourcesInvolved)
		metrics.ProjectsCovered = append(metrics.ProjectsCovered, m.ProjectsInvolved)
		metrics.AllocationsCount = append(metrics.AllocationsCount, m.AllocationsCount)

		results = append(results, scenarioToDTO(sc))

		if m.TotalAllocatedHours < metrics.TotalHours[bestIdx] {
			bestIdx = i
		}
	}

	recommendation := fmt.Sprintf("Scenario '%s' appears most efficient with %g total hours allocated.",
		results[bestIdx].Name, metrics.TotalHours[bestIdx])

	return &dto.ScenarioComparisonDTO{
		Scenarios:         results,
		ComparisonMetrics: metrics,
		Recommendation:    recommendation,
	}, nil
}
