package mappers

import (
	"fmt"

	"planwise/internal/domain/project"
	"planwise/internal/infrastructure/persistence/models"
	"planwise/internal/shared/mapper"
)

// ProjectRequirementMapper handles the conversion between requirement entities and persistence models
type ProjectRequirementMapper interface {
	ToEntity(model *models.ProjectRequirementModel) (*project.Requirement, error)
	ToModel(entity *project.Requirement) (*models.ProjectRequirementModel, error)
	ToEntities(models []*models.ProjectRequirementModel) ([]*project.Requirement, error)
}

// ProjectRequirementMapperImpl is the concrete implementation of ProjectRequirementMapper
type ProjectRequirementMapperImpl struct{}

// NewProjectRequirementMapper creates a new project requirement mapper
func NewProjectRequirementMapper() ProjectRequirementMapper {
	return &ProjectRequirementMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ProjectRequirementMapperImpl) ToEntity(model *models.ProjectRequirementModel) (*project.Requirement, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := project.ReconstructRequirement(
		model.ID,
		model.ProjectID,
		model.SkillName,
		model.RequiredProficiency,
		model.RequiredHours,
		model.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct requirement entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *ProjectRequirementMapperImpl) ToModel(entity *project.Requirement) (*models.ProjectRequirementModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ProjectRequirementModel{
		ID:                  entity.ID(),
		ProjectID:           entity.ProjectID(),
		SkillName:           entity.SkillName(),
		RequiredProficiency: entity.RequiredProficiency(),
		RequiredHours:       entity.RequiredHours(),
		Description:         entity.Description(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *ProjectRequirementMapperImpl) ToEntities(modelList []*models.ProjectRequirementModel) ([]*project.Requirement, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ProjectRequirementModel) uint { return model.ID })
}
