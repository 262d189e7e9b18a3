package mappers

import (
	"fmt"

	"planwise/internal/domain/resource"
	"planwise/internal/infrastructure/persistence/models"
	"planwise/internal/shared/mapper"
)

// ResourceSkillMapper handles the conversion between skill entities and persistence models
type ResourceSkillMapper interface {
	ToEntity(model *models.ResourceSkillModel) (*resource.Skill, error)
	ToModel(entity *resource.Skill) (*models.ResourceSkillModel, error)
	ToEntities(models []*models.ResourceSkillModel) ([]*resource.Skill, error)
}

// ResourceSkillMapperImpl is the concrete implementation of ResourceSkillMapper
type ResourceSkillMapperImpl struct{}

// NewResourceSkillMapper creates a new resource skill mapper
func NewResourceSkillMapper() ResourceSkillMapper {
	return &ResourceSkillMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ResourceSkillMapperImpl) ToEntity(model *models.ResourceSkillModel) (*resource.Skill, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := resource.ReconstructSkill(model.ID, model.ResourceID, model.SkillName, model.ProficiencyLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct skill entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *ResourceSkillMapperImpl) ToModel(entity *resource.Skill) (*models.ResourceSkillModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ResourceSkillModel{
		ID:               entity.ID(),
		ResourceID:       entity.ResourceID(),
		SkillName:        entity.SkillName(),
		ProficiencyLevel: entity.ProficiencyLevel(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *ResourceSkillMapperImpl) ToEntities(modelList []*models.ResourceSkillModel) ([]*resource.Skill, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ResourceSkillModel) uint { return model.ID })
}
