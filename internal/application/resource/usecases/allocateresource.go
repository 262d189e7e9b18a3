package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"planwise/internal/application/resource/dto"
	"planwise/internal/domain/resource"
	"planwise/internal/shared/db"
	"planwise/internal/shared/errors"
	"planwise/internal/shared/logger"
)

// AllocateResourceCommand carries an allocation write request.
type AllocateResourceCommand struct {
	ResourceID     uint
	ProjectID      uint
	AllocatedHours float64
	StartDate      *time.Time
	EndDate        *time.Time
}

// AllocateResourceUseCase performs the capacity-checked allocation write.
// The read-check-write against the capacity invariant must be atomic per
// resource: writes for the same resource are serialized with a per-resource
// mutex and run inside a transaction, so two concurrent requests cannot both
// pass the check and jointly over-commit.
type AllocateResourceUseCase struct {
	resourceRepo   resource.Repository
	allocationRepo resource.AllocationRepository
	txManager      *db.TransactionManager
	logger         logger.Interface

	locks sync.Map // resource ID -> *sync.Mutex
}

// NewAllocateResourceUseCase creates a new AllocateResourceUseCase
func NewAllocateResourceUseCase(
	resourceRepo resource.Repository,
	allocationRepo resource.AllocationRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *AllocateResourceUseCase {
	return &AllocateResourceUseCase{
		resourceRepo:   resourceRepo,
		allocationRepo: allocationRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *AllocateResourceUseCase) lockResource(resourceID uint) *sync.Mutex {
	mu, _ := uc.locks.LoadOrStore(resourceID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Execute allocates hours on a resource, rejecting the write entirely when
// it would push the resource's total above its capacity.
func (uc *AllocateResourceUseCase) Execute(ctx context.Context, cmd AllocateResourceCommand) (*dto.AllocationDTO, error) {
	mu := uc.lockResource(cmd.ResourceID)
	mu.Lock()
	defer mu.Unlock()

	res, err := uc.resourceRepo.GetByID(ctx, cmd.ResourceID)
	if err != nil {
		uc.logger.Errorw("failed to get resource", "error", err, "resource_id", cmd.ResourceID)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	if res == nil {
		return nil, errors.NewNotFoundError("resource not found", fmt.Sprintf("resource %d", cmd.ResourceID))
	}

	alloc, err := resource.NewAllocation(cmd.ResourceID, cmd.ProjectID, cmd.AllocatedHours, cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		totalAllocated, err := uc.allocationRepo.SumHoursByResourceID(txCtx, cmd.ResourceID)
		if err != nil {
			return fmt.Errorf("failed to sum allocated hours: %w", err)
		}

		if totalAllocated+cmd.AllocatedHours > res.CapacityHours() {
			return errors.NewCapacityExceededError(totalAllocated, cmd.AllocatedHours, res.CapacityHours())
		}

		return uc.allocationRepo.Create(txCtx, alloc)
	})
	if err != nil {
		if errors.IsValidationError(err) {
			uc.logger.Warnw("allocation rejected by capacity check",
				"resource_id", cmd.ResourceID,
				"project_id", cmd.ProjectID,
				"requested_hours", cmd.AllocatedHours,
				"capacity_hours", res.CapacityHours(),
			)
			return nil, err
		}
		uc.logger.Errorw("failed to create allocation", "error", err, "resource_id", cmd.ResourceID)
		return nil, err
	}

	uc.logger.Infow("resource allocated",
		"allocation_id", alloc.ID(),
		"resource_id", cmd.ResourceID,
		"project_id", cmd.ProjectID,
		"hours", cmd.AllocatedHours,
	)

	return &dto.AllocationDTO{
		ID:             alloc.ID(),
		ResourceID:     alloc.ResourceID(),
		ProjectID:      alloc.ProjectID(),
		AllocatedHours: alloc.AllocatedHours(),
		StartDate:      alloc.StartDate(),
		EndDate:        alloc.EndDate(),
		CreatedAt:      alloc.CreatedAt(),
	}, nil
}
