// Package usecases implements resource-side write operations: resource
// creation, skill declaration, and the capacity-checked allocation write.
package usecases

import (
	"context"
	"fmt"

	"planwise/internal/application/resource/dto"
	"planwise/internal/domain/resource"
	"planwise/internal/shared/errors"
	"planwise/internal/shared/logger"
)

// CreateResourceCommand carries a new resource with optional skill
// declarations.
type CreateResourceCommand struct {
	Name          string
	Role          string
	CapacityHours float64
	Department    string
	Location      string
	Skills        []dto.SkillInput
}

// CreateResourceUseCase handles the creation of a new resource
type CreateResourceUseCase struct {
	resourceRepo resource.Repository
	skillRepo    resource.SkillRepository
	logger       logger.Interface
}

// NewCreateResourceUseCase creates a new CreateResourceUseCase
func NewCreateResourceUseCase(
	resourceRepo resource.Repository,
	skillRepo resource.SkillRepository,
	logger logger.Interface,
) *CreateResourceUseCase {
	return &CreateResourceUseCase{
		resourceRepo: resourceRepo,
		skillRepo:    skillRepo,
		logger:       logger,
	}
}

// Execute creates the resource and its declared skills.
func (uc *CreateResourceUseCase) Execute(ctx context.Context, cmd CreateResourceCommand) (*dto.ResourceDTO, error) {
	res, err := resource.NewResource(cmd.Name, cmd.Role, cmd.CapacityHours, cmd.Department, cmd.Location)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.resourceRepo.Create(ctx, res); err != nil {
		uc.logger.Errorw("failed to save resource", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to save resource: %w", err)
	}

	skills := make([]dto.SkillDTO, 0, len(cmd.Skills))
	for _, input := range cmd.Skills {
		skill, err := resource.NewSkill(res.ID(), input.SkillName, input.ProficiencyLevel)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.skillRepo.Create(ctx, skill); err != nil {
			uc.logger.Errorw("failed to save skill", "error", err, "resource_id", res.ID(), "skill", input.SkillName)
			return nil, fmt.Errorf("failed to save skill: %w", err)
		}
		skills = append(skills, dto.SkillDTO{
			ID:               skill.ID(),
			SkillName:        skill.SkillName(),
			ProficiencyLevel: skill.ProficiencyLevel(),
		})
	}

	uc.logger.Infow("resource created",
		"id", res.ID(),
		"name", res.Name(),
		"capacity_hours", res.CapacityHours(),
		"skills", len(skills),
	)

	return &dto.ResourceDTO{
		ID:            res.ID(),
		Name:          res.Name(),
		Role:          res.Role(),
		CapacityHours: res.CapacityHours(),
		Department:    res.Department(),
		Location:      res.Location(),
		Skills:        skills,
		CreatedAt:     res.CreatedAt(),
	}, nil
}
