package mappers

import (
	"fmt"

	"planwise/internal/domain/resource"
	"planwise/internal/infrastructure/persistence/models"
	"planwise/internal/shared/mapper"
)

// AllocationMapper handles the conversion between allocation entities and persistence models
type AllocationMapper interface {
	ToEntity(model *models.AllocationModel) (*resource.Allocation, error)
	ToModel(entity *resource.Allocation) (*models.AllocationModel, error)
	ToEntities(models []*models.AllocationModel) ([]*resource.Allocation, error)
}

// AllocationMapperImpl is the concrete implementation of AllocationMapper
type AllocationMapperImpl struct{}

// NewAllocationMapper creates a new allocation mapper
func NewAllocationMapper() AllocationMapper {
	return &AllocationMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *AllocationMapperImpl) ToEntity(model *models.AllocationModel) (*resource.Allocation, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := resource.ReconstructAllocation(
		model.ID,
		model.ResourceID,
		model.ProjectID,
		model.AllocatedHours,
		model.StartDate,
		model.EndDate,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct allocation entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *AllocationMapperImpl) ToModel(entity *resource.Allocation) (*models.AllocationModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AllocationModel{
		ID:             entity.ID(),
		ResourceID:     entity.ResourceID(),
		ProjectID:      entity.ProjectID(),
		AllocatedHours: entity.AllocatedHours(),
		StartDate:      entity.StartDate(),
		EndDate:        entity.EndDate(),
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *AllocationMapperImpl) ToEntities(modelList []*models.AllocationModel) ([]*resource.Allocation, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.AllocationModel) uint { return model.ID })
}
