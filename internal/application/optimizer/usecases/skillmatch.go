package usecases

import (
	"context"
	"fmt"

	"planwise/internal/application/optimizer/dto"
	"planwise/internal/domain/project"
	"planwise/internal/domain/resource"
	"planwise/internal/shared/logger"
)

// Per-skill match labels.
const (
	MatchExcellent = "excellent"
	MatchPartial   = "partial"
	MatchNone      = "none"
)

// neutralMatchScore is returned for projects with no declared requirements:
// a neutral default rather than a disqualification.
const neutralMatchScore = 50.0

// SkillMatchUseCase scores how well a resource's declared skills satisfy a
// project's requirements. Pure function of the two sets.
type SkillMatchUseCase struct {
	skillRepo       resource.SkillRepository
	requirementRepo project.RequirementRepository
	logger          logger.Interface
}

// NewSkillMatchUseCase creates a new SkillMatchUseCase
func NewSkillMatchUseCase(
	skillRepo resource.SkillRepository,
	requirementRepo project.RequirementRepository,
	logger logger.Interface,
) *SkillMatchUseCase {
	return &SkillMatchUseCase{
		skillRepo:       skillRepo,
		requirementRepo: requirementRepo,
		logger:          logger,
	}
}

// Execute computes the 0-100 match score and the per-skill detail.
//
// Per requirement: proficiency at or above the requirement scores 100,
// a lower non-zero proficiency scores (actual/required)*80, a missing
// skill scores 0. The overall score is the mean across requirements.
func (uc *SkillMatchUseCase) Execute(ctx context.Context, resourceID, projectID uint) (dto.SkillMatchDTO, error) {
	skills, err := uc.skillRepo.GetByResourceID(ctx, resourceID)
	if err != nil {
		uc.logger.Errorw("failed to get resource skills", "error", err, "resource_id", resourceID)
		return dto.SkillMatchDTO{}, fmt.Errorf("failed to get resource skills: %w", err)
	}

	proficiencies := make(map[string]int, len(skills))
	for _, skill := range skills {
		proficiencies[skill.SkillName()] = skill.ProficiencyLevel()
	}

	requirements, err := uc.requirementRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to get project requirements", "error", err, "project_id", projectID)
		return dto.SkillMatchDTO{}, fmt.Errorf("failed to get project requirements: %w", err)
	}

	if len(requirements) == 0 {
		return dto.SkillMatchDTO{
			Score:   neutralMatchScore,
			Message: "No specific requirements defined",
		}, nil
	}

	var totalScore float64
	maxScore := float64(len(requirements)) * 100
	details := make(map[string]dto.SkillMatchEntryDTO, len(requirements))

	for _, req := range requirements {
		actual := proficiencies[req.SkillName()]

		var score float64
		var match string
		switch {
		case actual >= req.RequiredProficiency():
			score = 100
			match = MatchExcellent
		case actual > 0:
			score = float64(actual) / float64(req.RequiredProficiency()) * 80
			match = MatchPartial
		default:
			score = 0
			match = MatchNone
		}

		totalScore += score

		details[req.SkillName()] = dto.SkillMatchEntryDTO{
			Required: req.RequiredProficiency(),
			Actual:   actual,
			Match:    match,
			Score:    round2(score),
		}
	}

	return dto.SkillMatchDTO{
		Score:   round2(totalScore / maxScore * 100),
		Details: details,
	}, nil
}
