package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise/internal/domain/project"
	"planwise/internal/domain/resource"
)

func testSkill(t *testing.T, id, resourceID uint, name string, level int) *resource.Skill {
	t.Helper()
	skill, err := resource.ReconstructSkill(id, resourceID, name, level)
	require.NoError(t, err)
	return skill
}

func testRequirement(t *testing.T, id, projectID uint, name string, level int) *project.Requirement {
	t.Helper()
	req, err := project.ReconstructRequirement(id, projectID, name, level, 0, "")
	require.NoError(t, err)
	return req
}

func TestSkillMatchUseCase_Execute_ScoresPerRequirement(t *testing.T) {
	skillRepo := &mockSkillRepository{
		GetByResourceIDFunc: func(ctx context.Context, resourceID uint) ([]*resource.Skill, error) {
			return []*resource.Skill{
				testSkill(t, 1, 1, "Go", 5),
				testSkill(t, 2, 1, "Kubernetes", 2),
			}, nil
		},
	}
	requirementRepo := &mockRequirementRepository{
		GetByProjectIDFunc: func(ctx context.Context, projectID uint) ([]*project.Requirement, error) {
			return []*project.Requirement{
				testRequirement(t, 1, 10, "Go", 3),
				testRequirement(t, 2, 10, "Kubernetes", 4),
				testRequirement(t, 3, 10, "Terraform", 2),
			}, nil
		},
	}

	uc := NewSkillMatchUseCase(skillRepo, requirementRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), 1, 10)

	require.NoError(t, err)
	// (100 + 2/4*80 + 0) / 300 * 100 = 46.67
	assert.Equal(t, 46.67, result.Score)

	goEntry := result.Details["Go"]
	assert.Equal(t, MatchExcellent, goEntry.Match)
	assert.Equal(t, 100.0, goEntry.Score)

	k8sEntry := result.Details["Kubernetes"]
	assert.Equal(t, MatchPartial, k8sEntry.Match)
	assert.Equal(t, 40.0, k8sEntry.Score)
	assert.Equal(t, 4, k8sEntry.Required)
	assert.Equal(t, 2, k8sEntry.Actual)

	tfEntry := result.Details["Terraform"]
	assert.Equal(t, MatchNone, tfEntry.Match)
	assert.Equal(t, 0.0, tfEntry.Score)
}

func TestSkillMatchUseCase_Execute_NoRequirementsIsNeutral(t *testing.T) {
	skillRepo := &mockSkillRepository{
		GetByResourceIDFunc: func(ctx context.Context, resourceID uint) ([]*resource.Skill, error) {
			return []*resource.Skill{testSkill(t, 1, 1, "Go", 5)}, nil
		},
	}
	requirementRepo := &mockRequirementRepository{}

	uc := NewSkillMatchUseCase(skillRepo, requirementRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Score)
	assert.Equal(t, "No specific requirements defined", result.Message)
	assert.Empty(t, result.Details)
}

func TestSkillMatchUseCase_Execute_FullMatch(t *testing.T) {
	skillRepo := &mockSkillRepository{
		GetByResourceIDFunc: func(ctx context.Context, resourceID uint) ([]*resource.Skill, error) {
			return []*resource.Skill{
				testSkill(t, 1, 1, "Go", 4),
				testSkill(t, 2, 1, "MySQL", 3),
			}, nil
		},
	}
	requirementRepo := &mockRequirementRepository{
		GetByProjectIDFunc: func(ctx context.Context, projectID uint) ([]*project.Requirement, error) {
			return []*project.Requirement{
				testRequirement(t, 1, 10, "Go", 4),
				testRequirement(t, 2, 10, "MySQL", 2),
			}, nil
		},
	}

	uc := NewSkillMatchUseCase(skillRepo, requirementRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Score)
}

func TestSkillMatchUseCase_Execute_NoSkillsAtAll(t *testing.T) {
	skillRepo := &mockSkillRepository{}
	requirementRepo := &mockRequirementRepository{
		GetByProjectIDFunc: func(ctx context.Context, projectID uint) ([]*project.Requirement, error) {
			return []*project.Requirement{testRequirement(t, 1, 10, "Go", 3)}, nil
		},
	}

	uc := NewSkillMatchUseCase(skillRepo, requirementRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, MatchNone, result.Details["Go"].Match)
}
