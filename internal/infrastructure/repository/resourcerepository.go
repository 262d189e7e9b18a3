package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"planwise/internal/domain/resource"
	"planwise/internal/infrastructure/persistence/mappers"
	"planwise/internal/infrastructure/persistence/models"
	"planwise/internal/shared/logger"
)

type ResourceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ResourceMapper
	logger logger.Interface
}

func NewResourceRepository(db *gorm.DB, logger logger.Interface) resource.Repository {
	return &ResourceRepositoryImpl{
		db:     db,
		mapper: mappers.NewResourceMapper(),
		logger: logger,
	}
}

func (r *ResourceRepositoryImpl) Create(ctx context.Context, res *resource.Resource) error {
	model, err := r.mapper.ToModel(res)
	if err != nil {
		return fmt.Errorf("failed to convert resource to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create resource", "error", err, "name", res.Name())
		return fmt.Errorf("failed to create resource: %w", err)
	}

	if err := res.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("resource created", "resource_id", model.ID, "name", res.Name())
	return nil
}

func (r *ResourceRepositoryImpl) GetByID(ctx context.Context, id uint) (*resource.Resource, error) {
	var model models.ResourceModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get resource by ID", "error", err, "resource_id", id)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ResourceRepositoryImpl) List(ctx context.Context) ([]*resource.Resource, error) {
	var modelList []*models.ResourceModel
	if err := r.db.WithContext(ctx).Order("id").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list resources", "error", err)
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
