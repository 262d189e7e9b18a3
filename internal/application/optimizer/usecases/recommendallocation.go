package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"planwise/internal/application/optimizer/dto"
	"planwise/internal/domain/project"
	"planwise/internal/domain/resource"
	"planwise/internal/shared/errors"
	"planwise/internal/shared/logger"
)

const (
	// Weighted blend: skill fit dominates availability.
	skillWeight        = 0.7
	availabilityWeight = 0.3

	// Candidates below this blended score are not recommended.
	recommendationThreshold = 60.0

	// At most this many candidates are returned, best first.
	maxRecommendations = 10

	// Optimization score penalties.
	conflictPenalty     = 10
	overUtilizedPenalty = 15
)

// RecommendAllocationUseCase ranks every resource as a candidate for a
// project by a weighted blend of skill match and availability, and folds in
// the system's conflict and utilization picture. Pure computation over the
// read collaborators.
type RecommendAllocationUseCase struct {
	projectRepo    project.Repository
	resourceRepo   resource.Repository
	allocationRepo resource.AllocationRepository
	skillMatch     *SkillMatchUseCase
	conflicts      *DetectConflictsUseCase
	utilization    *ResourceUtilizationUseCase
	logger         logger.Interface
}

// NewRecommendAllocationUseCase creates a new RecommendAllocationUseCase
func NewRecommendAllocationUseCase(
	projectRepo project.Repository,
	resourceRepo resource.Repository,
	allocationRepo resource.AllocationRepository,
	skillMatch *SkillMatchUseCase,
	conflicts *DetectConflictsUseCase,
	utilization *ResourceUtilizationUseCase,
	logger logger.Interface,
) *RecommendAllocationUseCase {
	return &RecommendAllocationUseCase{
		projectRepo:    projectRepo,
		resourceRepo:   resourceRepo,
		allocationRepo: allocationRepo,
		skillMatch:     skillMatch,
		conflicts:      conflicts,
		utilization:    utilization,
		logger:         logger,
	}
}

// Execute computes ranked recommendations for a project. Fails with a not
// found error when the project does not resolve.
func (uc *RecommendAllocationUseCase) Execute(ctx context.Context, projectID uint) (*dto.OptimizationResultDTO, error) {
	proj, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to get project", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if proj == nil {
		return nil, errors.NewNotFoundError("project not found", fmt.Sprintf("project %d", projectID))
	}

	// Every resource in the system is a candidate, regardless of current
	// project association.
	resources, err := uc.resourceRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list resources", "error", err)
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	resourceIDs := make([]uint, 0, len(resources))
	for _, res := range resources {
		resourceIDs = append(resourceIDs, res.ID())
	}

	allocationsByResource, err := uc.allocationRepo.GetByResourceIDs(ctx, resourceIDs)
	if err != nil {
		uc.logger.Errorw("failed to get allocations", "error", err)
		return nil, fmt.Errorf("failed to get allocations: %w", err)
	}

	recommendations := make([]dto.ResourceRecommendationDTO, 0)

	for _, res := range resources {
		skillResult, err := uc.skillMatch.Execute(ctx, res.ID(), projectID)
		if err != nil {
			return nil, err
		}

		var totalAllocated float64
		for _, alloc := range allocationsByResource[res.ID()] {
			totalAllocated += alloc.AllocatedHours()
		}

		availableHours := res.CapacityHours() - totalAllocated

		// Not clamped below zero: an over-allocated resource's negative
		// availability pulls the blended score down further.
		var availabilityScore float64
		if res.CapacityHours() > 0 {
			availabilityScore = availableHours / res.CapacityHours() * 100
			if availabilityScore > 100 {
				availabilityScore = 100
			}
		}

		matchScore := skillResult.Score*skillWeight + availabilityScore*availabilityWeight

		if matchScore < recommendationThreshold {
			continue
		}

		recommendations = append(recommendations, dto.ResourceRecommendationDTO{
			ResourceID:        res.ID(),
			ResourceName:      res.Name(),
			ProjectID:         projectID,
			ProjectName:       proj.Name(),
			MatchScore:        round2(matchScore),
			SkillMatch:        skillResult,
			AvailabilityScore: round2(availabilityScore),
			Reasoning:         buildReasoning(skillResult.Score, availabilityScore, availableHours),
		})
	}

	// Stable sort keeps discovery order on ties.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	conflicts, err := uc.conflicts.Execute(ctx, DetectConflictsQuery{ProjectID: &projectID})
	if err != nil {
		return nil, err
	}

	utilization, err := uc.utilization.Execute(ctx, ResourceUtilizationQuery{})
	if err != nil {
		return nil, err
	}
	summary := summarizeUtilization(utilization)

	return &dto.OptimizationResultDTO{
		Recommendations:    recommendations,
		Conflicts:          conflicts,
		UtilizationSummary: summary,
		OptimizationScore:  computeOptimizationScore(len(conflicts), summary.OverUtilized),
	}, nil
}

func buildReasoning(skillScore, availabilityScore, availableHours float64) string {
	parts := make([]string, 0, 2)

	switch {
	case skillScore >= 80:
		parts = append(parts, "Excellent skill match")
	case skillScore >= 60:
		parts = append(parts, "Good skill match with development opportunity")
	default:
		parts = append(parts, "Skills need development")
	}

	if availabilityScore >= 50 {
		parts = append(parts, fmt.Sprintf("%gh available", availableHours))
	} else {
		parts = append(parts, "Limited availability")
	}

	return strings.Join(parts, "; ")
}

func summarizeUtilization(records []dto.ResourceUtilizationDTO) dto.UtilizationSummaryDTO {
	summary := dto.UtilizationSummaryDTO{TotalResources: len(records)}

	var pctSum float64
	for _, rec := range records {
		pctSum += rec.UtilizationPercentage
		switch rec.Status {
		case UtilizationStatusUnder:
			summary.UnderUtilized++
		case UtilizationStatusOptimal:
			summary.Optimal++
		case UtilizationStatusOver:
			summary.OverUtilized++
		}
	}

	if len(records) > 0 {
		summary.AvgUtilization = round2(pctSum / float64(len(records)))
	}

	return summary
}

// computeOptimizationScore starts at 100, subtracts per conflict and per
// over-utilized resource, and floors at 0.
func computeOptimizationScore(conflictCount, overUtilized int) int {
	score := 100 - conflictCount*conflictPenalty - overUtilized*overUtilizedPenalty
	if score < 0 {
		score = 0
	}
	return score
}
