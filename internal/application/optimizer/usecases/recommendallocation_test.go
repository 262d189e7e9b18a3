package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise/internal/domain/project"
	"planwise/internal/domain/resource"
	"planwise/internal/shared/errors"
)

func newRecommendUseCase(
	resourceRepo *mockResourceRepository,
	skillRepo *mockSkillRepository,
	allocationRepo *mockAllocationRepository,
	projectRepo *mockProjectRepository,
	requirementRepo *mockRequirementRepository,
) *RecommendAllocationUseCase {
	log := &mockLogger{}
	skillMatch := NewSkillMatchUseCase(skillRepo, requirementRepo, log)
	conflicts := NewDetectConflictsUseCase(resourceRepo, allocationRepo, log)
	utilization := NewResourceUtilizationUseCase(resourceRepo, allocationRepo, projectRepo, log)
	return NewRecommendAllocationUseCase(projectRepo, resourceRepo, allocationRepo, skillMatch, conflicts, utilization, log)
}

func TestRecommendAllocationUseCase_Execute_RanksAndFilters(t *testing.T) {
	projectRepo := &mockProjectRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return testProject(t, 10, "Apollo"), nil
		},
	}
	resourceRepo := &mockResourceRepository{
		ListFunc: func(ctx context.Context) ([]*resource.Resource, error) {
			return []*resource.Resource{
				testResource(t, 1, "Alice", 160),
				testResource(t, 2, "Bob", 160),
			}, nil
		},
	}
	skillRepo := &mockSkillRepository{
		GetByResourceIDFunc: func(ctx context.Context, resourceID uint) ([]*resource.Skill, error) {
			if resourceID == 1 {
				return []*resource.Skill{testSkill(t, 1, 1, "Go", 5)}, nil
			}
			return nil, nil
		},
	}
	requirementRepo := &mockRequirementRepository{
		GetByProjectIDFunc: func(ctx context.Context, projectID uint) ([]*project.Requirement, error) {
			return []*project.Requirement{testRequirement(t, 1, 10, "Go", 3)}, nil
		},
	}
	allocationRepo := &mockAllocationRepository{}

	uc := newRecommendUseCase(resourceRepo, skillRepo, allocationRepo, projectRepo, requirementRepo)

	result, err := uc.Execute(context.Background(), 10)

	require.NoError(t, err)
	// Bob scores 0*0.7 + 100*0.3 = 30, below the threshold
	require.Len(t, result.Recommendations, 1)
	rec := result.Recommendations[0]
	assert.Equal(t, uint(1), rec.ResourceID)
	assert.Equal(t, "Apollo", rec.ProjectName)
	assert.Equal(t, 100.0, rec.MatchScore)
	assert.Equal(t, 100.0, rec.AvailabilityScore)
	assert.Equal(t, "Excellent skill match; 160h available", rec.Reasoning)

	assert.Empty(t, result.Conflicts)
	assert.Equal(t, 2, result.UtilizationSummary.TotalResources)
	assert.Equal(t, 2, result.UtilizationSummary.UnderUtilized)
	assert.Equal(t, 100, result.OptimizationScore)
}

func TestRecommendAllocationUseCase_Execute_ProjectNotFound(t *testing.T) {
	projectRepo := &mockProjectRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return nil, nil
		},
	}

	uc := newRecommendUseCase(&mockResourceRepository{}, &mockSkillRepository{}, &mockAllocationRepository{}, projectRepo, &mockRequirementRepository{})

	result, err := uc.Execute(context.Background(), 99)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRecommendAllocationUseCase_Execute_CapsAtTenRecommendations(t *testing.T) {
	resources := make([]*resource.Resource, 0, 12)
	for i := uint(1); i <= 12; i++ {
		resources = append(resources, testResource(t, i, fmt.Sprintf("Resource %d", i), 160))
	}

	projectRepo := &mockProjectRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return testProject(t, 10, "Apollo"), nil
		},
	}
	resourceRepo := &mockResourceRepository{
		ListFunc: func(ctx context.Context) ([]*resource.Resource, error) {
			return resources, nil
		},
	}
	skillRepo := &mockSkillRepository{
		GetByResourceIDFunc: func(ctx context.Context, resourceID uint) ([]*resource.Skill, error) {
			return []*resource.Skill{testSkill(t, resourceID, resourceID, "Go", 5)}, nil
		},
	}
	requirementRepo := &mockRequirementRepository{
		GetByProjectIDFunc: func(ctx context.Context, projectID uint) ([]*project.Requirement, error) {
			return []*project.Requirement{testRequirement(t, 1, 10, "Go", 3)}, nil
		},
	}
	allocationRepo := &mockAllocationRepository{
		GetByResourceIDsFunc: func(ctx context.Context, resourceIDs []uint) (map[uint][]*resource.Allocation, error) {
			// give each resource a different load so the ranking is strict
			out := make(map[uint][]*resource.Allocation, len(resourceIDs))
			for _, id := range resourceIDs {
				out[id] = []*resource.Allocation{
					testAllocation(t, id, id, 10, float64(id)*10, "", ""),
				}
			}
			return out, nil
		},
	}

	uc := newRecommendUseCase(resourceRepo, skillRepo, allocationRepo, projectRepo, requirementRepo)

	result, err := uc.Execute(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, result.Recommendations, maxRecommendations)

	for i := 1; i < len(result.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			result.Recommendations[i-1].MatchScore,
			result.Recommendations[i].MatchScore)
	}
	// the least loaded resource ranks first
	assert.Equal(t, uint(1), result.Recommendations[0].ResourceID)
}

func TestRecommendAllocationUseCase_Execute_NegativeAvailabilityPullsScoreDown(t *testing.T) {
	projectRepo := &mockProjectRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return testProject(t, 10, "Apollo"), nil
		},
	}
	resourceRepo := &mockResourceRepository{
		ListFunc: func(ctx context.Context) ([]*resource.Resource, error) {
			return []*resource.Resource{testResource(t, 1, "Alice", 160)}, nil
		},
	}
	skillRepo := &mockSkillRepository{
		GetByResourceIDFunc: func(ctx context.Context, resourceID uint) ([]*resource.Skill, error) {
			return []*resource.Skill{testSkill(t, 1, 1, "Go", 5)}, nil
		},
	}
	requirementRepo := &mockRequirementRepository{
		GetByProjectIDFunc: func(ctx context.Context, projectID uint) ([]*project.Requirement, error) {
			return []*project.Requirement{testRequirement(t, 1, 10, "Go", 3)}, nil
		},
	}
	allocationRepo := &mockAllocationRepository{
		GetByResourceIDsFunc: func(ctx context.Context, resourceIDs []uint) (map[uint][]*resource.Allocation, error) {
			return map[uint][]*resource.Allocation{
				1: {testAllocation(t, 1, 1, 10, 200, "", "")},
			}, nil
		},
	}

	uc := newRecommendUseCase(resourceRepo, skillRepo, allocationRepo, projectRepo, requirementRepo)

	result, err := uc.Execute(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	rec := result.Recommendations[0]
	// availability (160-200)/160*100 = -25; blended 100*0.7 + (-25)*0.3 = 62.5
	assert.Equal(t, -25.0, rec.AvailabilityScore)
	assert.Equal(t, 62.5, rec.MatchScore)
	assert.Contains(t, rec.Reasoning, "Limited availability")

	// one over-allocation conflict and one over-utilized resource
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, 1, result.UtilizationSummary.OverUtilized)
	assert.Equal(t, 75, result.OptimizationScore)
}
