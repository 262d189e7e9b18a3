package mappers

import (
	"fmt"

	"planwise/internal/domain/project"
	"planwise/internal/infrastructure/persistence/models"
	"planwise/internal/shared/mapper"
)

// ProjectMapper handles the conversion between project entities and persistence models
type ProjectMapper interface {
	ToEntity(model *models.ProjectModel) (*project.Project, error)
	ToModel(entity *project.Project) (*models.ProjectModel, error)
	ToEntities(models []*models.ProjectModel) ([]*project.Project, error)
}

// ProjectMapperImpl is the concrete implementation of ProjectMapper
type ProjectMapperImpl struct{}

// NewProjectMapper creates a new project mapper
func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ProjectMapperImpl) ToEntity(model *models.ProjectModel) (*project.Project, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := project.ReconstructProject(
		model.ID,
		model.Name,
		model.Description,
		model.StartDate,
		model.EndDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct project entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *ProjectMapperImpl) ToModel(entity *project.Project) (*models.ProjectModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ProjectModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		StartDate:   entity.StartDate(),
		EndDate:     entity.EndDate(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *ProjectMapperImpl) ToEntities(modelList []*models.ProjectModel) ([]*project.Project, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ProjectModel) uint { return model.ID })
}
