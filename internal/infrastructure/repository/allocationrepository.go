package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"planwise/internal/domain/resource"
	"planwise/internal/infrastructure/persistence/mappers"
	"planwise/internal/infrastructure/persistence/models"
	"planwise/internal/shared/db"
	"planwise/internal/shared/logger"
)

type AllocationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AllocationMapper
	logger logger.Interface
}

func NewAllocationRepository(db *gorm.DB, logger logger.Interface) resource.AllocationRepository {
	return &AllocationRepositoryImpl{
		db:     db,
		mapper: mappers.NewAllocationMapper(),
		logger: logger,
	}
}

// Create inserts an allocation. It participates in an ambient transaction
// when one is present on the context so capacity checks and the insert
// commit atomically.
func (r *AllocationRepositoryImpl) Create(ctx context.Context, alloc *resource.Allocation) error {
	model, err := r.mapper.ToModel(alloc)
	if err != nil {
		return fmt.Errorf("failed to convert allocation to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create allocation", "error", err,
			"resource_id", alloc.ResourceID(), "project_id", alloc.ProjectID())
		return fmt.Errorf("failed to create allocation: %w", err)
	}

	if err := alloc.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("allocation created", "allocation_id", model.ID,
		"resource_id", alloc.ResourceID(), "project_id", alloc.ProjectID(), "hours", alloc.AllocatedHours())
	return nil
}

func (r *AllocationRepositoryImpl) GetByProjectID(ctx context.Context, projectID uint) ([]*resource.Allocation, error) {
	var modelList []*models.AllocationModel
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get allocations by project ID", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to get allocations: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *AllocationRepositoryImpl) GetByResourceIDs(ctx context.Context, resourceIDs []uint) (map[uint][]*resource.Allocation, error) {
	result := make(map[uint][]*resource.Allocation)
	if len(resourceIDs) == 0 {
		return result, nil
	}

	var modelList []*models.AllocationModel
	if err := r.db.WithContext(ctx).Where("resource_id IN ?", resourceIDs).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get allocations by resource IDs", "error", err, "count", len(resourceIDs))
		return nil, fmt.Errorf("failed to get allocations by resource IDs: %w", err)
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

// SumHoursByResourceID totals allocated hours inside the ambient transaction
// when one is present, so the capacity check reads its own snapshot.
func (r *AllocationRepositoryImpl) SumHoursByResourceID(ctx context.Context, resourceID uint) (float64, error) {
	var total float64
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).
		Model(&models.AllocationModel{}).
		Where("resource_id = ?", resourceID).
		Select("COALESCE(SUM(allocated_hours), 0)").
		Scan(&total).Error
	if err != nil {
		r.logger.Errorw("failed to sum allocated hours", "error", err, "resource_id", resourceID)
		return 0, fmt.Errorf("failed to sum allocated hours: %w", err)
	}

	return total, nil
}
