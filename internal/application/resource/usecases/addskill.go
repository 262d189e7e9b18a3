package usecases

import (
	"context"
	"fmt"

	"planwise/internal/application/resource/dto"
	"planwise/internal/domain/resource"
	"planwise/internal/shared/errors"
	"planwise/internal/shared/logger"
)

// AddSkillCommand declares a skill on an existing resource.
type AddSkillCommand struct {
	ResourceID       uint
	SkillName        string
	ProficiencyLevel int
}

// AddSkillUseCase adds a skill declaration to a resource
type AddSkillUseCase struct {
	resourceRepo resource.Repository
	skillRepo    resource.SkillRepository
	logger       logger.Interface
}

// NewAddSkillUseCase creates a new AddSkillUseCase
func NewAddSkillUseCase(
	resourceRepo resource.Repository,
	skillRepo resource.SkillRepository,
	logger logger.Interface,
) *AddSkillUseCase {
	return &AddSkillUseCase{
		resourceRepo: resourceRepo,
		skillRepo:    skillRepo,
		logger:       logger,
	}
}

// Execute validates the parent resource exists and stores the skill.
func (uc *AddSkillUseCase) Execute(ctx context.Context, cmd AddSkillCommand) (*dto.SkillDTO, error) {
	res, err := uc.resourceRepo.GetByID(ctx, cmd.ResourceID)
	if err != nil {
		uc.logger.Errorw("failed to get resource", "error", err, "resource_id", cmd.ResourceID)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	if res == nil {
		return nil, errors.NewNotFoundError("resource not found", fmt.Sprintf("resource %d", cmd.ResourceID))
	}

	skill, err := resource.NewSkill(cmd.ResourceID, cmd.SkillName, cmd.ProficiencyLevel)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.skillRepo.Create(ctx, skill); err != nil {
		uc.logger.Errorw("failed to save skill", "error", err, "resource_id", cmd.ResourceID, "skill", cmd.SkillName)
		return nil, fmt.Errorf("failed to save skill: %w", err)
	}

	uc.logger.Infow("skill added",
		"resource_id", cmd.ResourceID,
		"skill", skill.SkillName(),
		"proficiency", skill.ProficiencyLevel(),
	)

	return &dto.SkillDTO{
		ID:               skill.ID(),
		SkillName:        skill.SkillName(),
		ProficiencyLevel: skill.ProficiencyLevel(),
	}, nil
}
