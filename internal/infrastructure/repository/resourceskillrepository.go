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

type ResourceSkillRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ResourceSkillMapper
	logger logger.Interface
}

func NewResourceSkillRepository(db *gorm.DB, logger logger.Interface) resource.SkillRepository {
	return &ResourceSkillRepositoryImpl{
		db:     db,
		mapper: mappers.NewResourceSkillMapper(),
		logger: logger,
	}
}

func (r *ResourceSkillRepositoryImpl) Create(ctx context.Context, skill *resource.Skill) error {
	model, err := r.mapper.ToModel(skill)
	if err != nil {
		return fmt.Errorf("failed to convert skill to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create skill", "error", err, "resource_id", skill.ResourceID(), "skill", skill.SkillName())
		return fmt.Errorf("failed to create skill: %w", err)
	}

	if err := skill.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ResourceSkillRepositoryImpl) GetByResourceID(ctx context.Context, resourceID uint) ([]*resource.Skill, error) {
	var modelList []*models.ResourceSkillModel
	if err := r.db.WithContext(ctx).Where("resource_id = ?", resourceID).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get skills by resource ID", "error", err, "resource_id", resourceID)
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *ResourceSkillRepositoryImpl) GetByResourceIDs(ctx context.Context, resourceIDs []uint) (map[uint][]*resource.Skill, error) {
	result := make(map[uint][]*resource.Skill)
	if len(resourceIDs) == 0 {
		return result, nil
	}

	var modelList []*models.ResourceSkillModel
	if err := r.db.WithContext(ctx).Where("resource_id IN ?", resourceIDs).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get skills by resource IDs", "error", err, "count", len(resourceIDs))
		return nil, fmt.Errorf("failed to get skills by resource IDs: %w", err)
	}

	for _, model := range modelList {
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, err
		}
		result[model.ResourceID] = append(result[model.ResourceID], entity)
	}

	return result, nil
}
