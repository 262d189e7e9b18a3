package mappers

import (
	"fmt"

	"planwise/internal/domain/resource"
	"planwise/internal/infrastructure/persistence/models"
	"planwise/internal/shared/mapper"
)

// ResourceMapper handles the conversion between domain entities and persistence models
type ResourceMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.ResourceModel) (*resource.Resource, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *resource.Resource) (*models.ResourceModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.ResourceModel) ([]*resource.Resource, error)
}

// ResourceMapperImpl is the concrete implementation of ResourceMapper
type ResourceMapperImpl struct{}

// NewResourceMapper creates a new resource mapper
func NewResourceMapper() ResourceMapper {
	return &ResourceMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ResourceMapperImpl) ToEntity(model *models.ResourceModel) (*resource.Resource, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := resource.ReconstructResource(
		model.ID,
		model.Name,
		model.Role,
		model.CapacityHours,
		model.Department,
		model.Location,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct resource entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *ResourceMapperImpl) ToModel(entity *resource.Resource) (*models.ResourceModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ResourceModel{
		ID:            entity.ID(),
		Name:          entity.Name(),
		Role:          entity.Role(),
		CapacityHours: entity.CapacityHours(),
		Department:    entity.Department(),
		Location:      entity.Location(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *ResourceMapperImpl) ToEntities(modelList []*models.ResourceModel) ([]*resource.Resource, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ResourceModel) uint { return model.ID })
}
