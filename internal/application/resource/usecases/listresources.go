package usecases

import (
	"context"
	"fmt"

	"planwise/internal/application/resource/dto"
	"planwise/internal/domain/resource"
	"planwise/internal/shared/errors"
	"planwise/internal/shared/logger"
)

// ListResourcesUseCase lists all resources with their declared skills
type ListResourcesUseCase struct {
	resourceRepo resource.Repository
	skillRepo    resource.SkillRepository
	logger       logger.Interface
}

// NewListResourcesUseCase creates a new ListResourcesUseCase
func NewListResourcesUseCase(
	resourceRepo resource.Repository,
	skillRepo resource.SkillRepository,
	logger logger.Interface,
) *ListResourcesUseCase {
	return &ListResourcesUseCase{
		resourceRepo: resourceRepo,
		skillRepo:    skillRepo,
		logger:       logger,
	}
}

// Execute lists all resources, skills included.
func (uc *ListResourcesUseCase) Execute(ctx context.Context) ([]dto.ResourceDTO, error) {
	resources, err := uc.resourceRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list resources", "error", err)
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	ids := make([]uint, 0, len(resources))
	for _, res := range resources {
		ids = append(ids, res.ID())
	}

	skillsByResource, err := uc.skillRepo.GetByResourceIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to get skills", "error", err)
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}

	result := make([]dto.ResourceDTO, 0, len(resources))
	for _, res := range resources {
		result = append(result, resourceToDTO(res, skillsByResource[res.ID()]))
	}

	return result, nil
}

// GetResourceUseCase retrieves one resource with its declared skills
type GetResourceUseCase struct {
	resourceRepo resource.Repository
	skillRepo    resource.SkillRepository
	logger       logger.Interface
}

// NewGetResourceUseCase creates a new GetResourceUseCase
func NewGetResourceUseCase(
	resourceRepo resource.Repository,
	skillRepo resource.SkillRepository,
	logger logger.Interface,
) *GetResourceUseCase {
	return &GetResourceUseCase{
		resourceRepo: resourceRepo,
		skillRepo:    skillRepo,
		logger:       logger,
	}
}

// Execute retrieves the resource or fails with a not found error.
func (uc *GetResourceUseCase) Execute(ctx context.Context, resourceID uint) (*dto.ResourceDTO, error) {
	res, err := uc.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		uc.logger.Errorw("failed to get resource", "error", err, "resource_id", resourceID)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	if res == nil {
		return nil, errors.NewNotFoundError("resource not found", fmt.Sprintf("resource %d", resourceID))
	}

	skills, err := uc.skillRepo.GetByResourceID(ctx, resourceID)
	if err != nil {
		uc.logger.Errorw("failed to get skills", "error", err, "resource_id", resourceID)
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}

	result := resourceToDTO(res, skills)
	return &result, nil
}

func resourceToDTO(res *resource.Resource, skills []*resource.Skill) dto.ResourceDTO {
	skillDTOs := make([]dto.SkillDTO, 0, len(skills))
	for _, skill := range skills {
		skillDTOs = append(skillDTOs, dto.SkillDTO{
			ID:               skill.ID(),
			SkillName:        skill.SkillName(),
			ProficiencyLevel: skill.ProficiencyLevel(),
		})
	}

	return dto.ResourceDTO{
		ID:            res.ID(),
		Name:          res.Name(),
		Role:          res.Role(),
		CapacityHours: res.CapacityHours(),
		Department:    res.Department(),
		Location:      res.Location(),
		Skills:        skillDTOs,
		CreatedAt:     res.CreatedAt(),
	}
}
