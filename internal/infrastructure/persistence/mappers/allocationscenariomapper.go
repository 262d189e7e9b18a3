package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"planwise/internal/domain/scenario"
	"planwise/internal/infrastructure/persistence/models"
	"planwise/internal/shared/mapper"
)

// AllocationScenarioMapper handles the conversion between scenario entities and persistence models
type AllocationScenarioMapper interface {
	ToEntity(model *models.AllocationScenarioModel) (*scenario.Scenario, error)
	ToModel(entity *scenario.Scenario) (*models.AllocationScenarioModel, error)
	ToEntities(models []*models.AllocationScenarioModel) ([]*scenario.Scenario, error)
}

// AllocationScenarioMapperImpl is the concrete implementation of AllocationScenarioMapper
type AllocationScenarioMapperImpl struct{}

// NewAllocationScenarioMapper creates a new allocation scenario mapper
func NewAllocationScenarioMapper() AllocationScenarioMapper {
	return &AllocationScenarioMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *AllocationScenarioMapperImpl) ToEntity(model *models.AllocationScenarioModel) (*scenario.Scenario, error) {
	if model == nil {
		return nil, nil
	}

	var allocations []scenario.ProposedAllocation
	if len(model.ScenarioData) > 0 {
		if err := json.Unmarshal(model.ScenarioData, &allocations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scenario data: %w", err)
		}
	}

	var metrics scenario.Metrics
	if len(model.Metrics) > 0 {
		if err := json.Unmarshal(model.Metrics, &metrics); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scenario metrics: %w", err)
		}
	} else {
		// older rows may predate stored metrics; derive them from the snapshot
		metrics = scenario.ComputeMetrics(allocations)
	}

	entity, err := scenario.ReconstructScenario(
		model.ID,
		model.Name,
		model.Description,
		allocations,
		metrics,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct scenario entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *AllocationScenarioMapperImpl) ToModel(entity *scenario.Scenario) (*models.AllocationScenarioModel, error) {
	if entity == nil {
		return nil, nil
	}

	data, err := json.Marshal(entity.Allocations())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scenario data: %w", err)
	}

	metricsJSON, err := json.Marshal(entity.Metrics())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scenario metrics: %w", err)
	}

	return &models.AllocationScenarioModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		Description:  entity.Description(),
		ScenarioData: datatypes.JSON(data),
		Metrics:      datatypes.JSON(metricsJSON),
		CreatedAt:    entity.CreatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *AllocationScenarioMapperImpl) ToEntities(modelList []*models.AllocationScenarioModel) ([]*scenario.Scenario, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.AllocationScenarioModel) uint { return model.ID })
}
