package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"planwise/internal/domain/scenario"
	"planwise/internal/infrastructure/persistence/mappers"
	"planwise/internal/infrastructure/persistence/models"
	"planwise/internal/shared/logger"
)

type ScenarioRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AllocationScenarioMapper
	logger logger.Interface
}

func NewScenarioRepository(db *gorm.DB, logger logger.Interface) scenario.Repository {
	return &ScenarioRepositoryImpl{
		db:     db,
		mapper: mappers.NewAllocationScenarioMapper(),
		logger: logger,
	}
}

func (r *ScenarioRepositoryImpl) Create(ctx context.Context, sc *scenario.Scenario) error {
	model, err := r.mapper.ToModel(sc)
	if err != nil {
		return fmt.Errorf("failed to convert scenario to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create scenario", "error", err, "name", sc.Name())
		return fmt.Errorf("failed to create scenario: %w", err)
	}

	if err := sc.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("scenario created", "scenario_id", model.ID, "name", sc.Name())
	return nil
}

func (r *ScenarioRepositoryImpl) GetByID(ctx context.Context, id uint) (*scenario.Scenario, error) {
	var model models.AllocationScenarioModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get scenario by ID", "error", err, "scenario_id", id)
		return nil, fmt.Errorf("failed to get scenario: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByIDs resolves scenarios in the order the IDs were given. IDs that do
// not resolve are skipped rather than failing the whole lookup; callers
// decide whether an empty result is an error.
func (r *ScenarioRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*scenario.Scenario, error) {
	if len(ids) == 0 {
		return []*scenario.Scenario{}, nil
	}

	var modelList []*models.AllocationScenarioModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get scenarios by IDs", "error", err, "count", len(ids))
		return nil, fmt.Errorf("failed to get scenarios by IDs: %w", err)
	}

	byID := make(map[uint]*models.AllocationScenarioModel, len(modelList))
	for _, model := range modelList {
		byID[model.ID] = model
	}

	result := make([]*scenario.Scenario, 0, len(ids))
	for _, id := range ids {
		model, ok := byID[id]
		if !ok {
			continue
		}
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	return result, nil
}
