package usecases

import (
	"context"
	"fmt"

	resourcedto "planwise/internal/application/resource/dto"
	"planwise/internal/domain/project"
	"planwise/internal/domain/resource"
	"planwise/internal/shared/errors"
	"planwise/internal/shared/logger"
)

// ListProjectAllocationsUseCase lists all allocations recorded against a project
type ListProjectAllocationsUseCase struct {
	projectRepo    project.Repository
	allocationRepo resource.AllocationRepository
	logger         logger.Interface
}

// NewListProjectAllocationsUseCase creates a new ListProjectAllocationsUseCase
func NewListProjectAllocationsUseCase(
	projectRepo project.Repository,
	allocationRepo resource.AllocationRepository,
	logger logger.Interface,
) *ListProjectAllocationsUseCase {
	return &ListProjectAllocationsUseCase{
		projectRepo:    projectRepo,
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

// Execute returns the allocations for a project, newest first per storage order.
func (uc *ListProjectAllocationsUseCase) Execute(ctx context.Context, projectID uint) ([]resourcedto.AllocationDTO, error) {
	proj, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to get project", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if proj == nil {
		return nil, errors.NewNotFoundError("project not found", fmt.Sprintf("project %d", projectID))
	}

	allocations, err := uc.allocationRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to list allocations", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	result := make([]resourcedto.AllocationDTO, 0, len(allocations))
	for _, alloc := range allocations {
		result = append(result, resourcedto.AllocationDTO{
			ID:             alloc.ID(),
			ResourceID:     alloc.ResourceID(),
			ProjectID:      alloc.ProjectID(),
			AllocatedHours: alloc.AllocatedHours(),
			StartDate:      alloc.StartDate(),
			EndDate:        alloc.EndDate(),
			CreatedAt:      alloc.CreatedAt(),
		})
	}
	return result, nil
}
