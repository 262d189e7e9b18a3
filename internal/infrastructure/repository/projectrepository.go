package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"planwise/internal/domain/project"
	"planwise/internal/infrastructure/persistence/mappers"
	"planwise/internal/infrastructure/persistence/models"
	"planwise/internal/shared/logger"
)

type ProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
	logger logger.Interface
}

func NewProjectRepository(db *gorm.DB, logger logger.Interface) project.Repository {
	return &ProjectRepositoryImpl{
		db:     db,
		mapper: mappers.NewProjectMapper(),
		logger: logger,
	}
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, proj *project.Project) error {
	model, err := r.mapper.ToModel(proj)
	if err != nil {
		return fmt.Errorf("failed to convert project to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create project", "error", err, "name", proj.Name())
		return fmt.Errorf("failed to create project: %w", err)
	}

	if err := proj.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("project created", "project_id", model.ID, "name", proj.Name())
	return nil
}

func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get project by ID", "error", err, "project_id", id)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ProjectRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*project.Project, error) {
	result := make(map[uint]*project.Project)
	if len(ids) == 0 {
		return result, nil
	}

	var modelList []*models.ProjectModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get projects by IDs", "error", err, "count", len(ids))
		return nil, fmt.Errorf("failed to get projects by IDs: %w", err)
	}

	for _, model := range modelList {
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, err
		}
		result[model.ID] = entity
	}

	return result, nil
}

func (r *ProjectRepositoryImpl) List(ctx context.Context) ([]*project.Project, error) {
	var modelList []*models.ProjectModel
	if err := r.db.WithContext(ctx).Order("id").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list projects", "error", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
