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

type ProjectRequirementRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProjectRequirementMapper
	logger logger.Interface
}

func NewProjectRequirementRepository(db *gorm.DB, logger logger.Interface) project.RequirementRepository {
	return &ProjectRequirementRepositoryImpl{
		db:     db,
		mapper: mappers.NewProjectRequirementMapper(),
		logger: logger,
	}
}

func (r *ProjectRequirementRepositoryImpl) Create(ctx context.Context, req *project.Requirement) error {
	model, err := r.mapper.ToModel(req)
	if err != nil {
		return fmt.Errorf("failed to convert requirement to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create requirement", "error", err,
			"project_id", req.ProjectID(), "skill", req.SkillName())
		return fmt.Errorf("failed to create requirement: %w", err)
	}

	if err := req.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ProjectRequirementRepositoryImpl) GetByProjectID(ctx context.Context, projectID uint) ([]*project.Requirement, error) {
	var modelList []*models.ProjectRequirementModel
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get requirements by project ID", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to get requirements: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
