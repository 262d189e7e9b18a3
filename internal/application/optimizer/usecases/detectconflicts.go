package usecases

import (
	"context"
	"fmt"
	"sort"

	"planwise/internal/application/optimizer/dto"
	"planwise/internal/domain/resource"
	"planwise/internal/shared/logger"
)

// Conflict kinds and severities.
const (
	ConflictTypeOverAllocation = "over-allocation"
	ConflictTypeDateOverlap    = "date-overlap"

	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

// DetectConflictsQuery optionally names a project of interest. The scan
// itself stays global per resource: every allocation of every resource is
// examined regardless of the filter, matching the behavior callers rely on.
type DetectConflictsQuery struct {
	ProjectID *uint
}

// DetectConflictsUseCase scans each resource's allocations for capacity
// overflows and overlapping date windows. Read-only.
type DetectConflictsUseCase struct {
	resourceRepo   resource.Repository
	allocationRepo resource.AllocationRepository
	logger         logger.Interface
}

// NewDetectConflictsUseCase creates a new DetectConflictsUseCase
func NewDetectConflictsUseCase(
	resourceRepo resource.Repository,
	allocationRepo resource.AllocationRepository,
	logger logger.Interface,
) *DetectConflictsUseCase {
	return &DetectConflictsUseCase{
		resourceRepo:   resourceRepo,
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

// Execute detects scheduling conflicts across all resources.
func (uc *DetectConflictsUseCase) Execute(ctx context.Context, query DetectConflictsQuery) ([]dto.SchedulingConflictDTO, error) {
	resources, err := uc.resourceRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list resources", "error", err)
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	resourceIDs := make([]uint, 0, len(resources))
	for _, res := range resources {
		resourceIDs = append(resourceIDs, res.ID())
	}

	allocationsByResource, err := uc.allocationRepo.GetByResourceIDs(ctx, resourceIDs)
	if err != nil {
		uc.logger.Errorw("failed to get allocations", "error", err)
		return nil, fmt.Errorf("failed to get allocations: %w", err)
	}

	conflicts := make([]dto.SchedulingConflictDTO, 0)

	for _, res := range resources {
		allocations := allocationsByResource[res.ID()]

		if conflict := uc.checkOverAllocation(res, allocations); conflict != nil {
			conflicts = append(conflicts, *conflict)
		}

		conflicts = append(conflicts, uc.checkDateOverlaps(res, allocations)...)
	}

	return conflicts, nil
}

func (uc *DetectConflictsUseCase) checkOverAllocation(res *resource.Resource, allocations []*resource.Allocation) *dto.SchedulingConflictDTO {
	var totalAllocated float64
	for _, alloc := range allocations {
		totalAllocated += alloc.AllocatedHours()
	}

	if totalAllocated <= res.CapacityHours() {
		return nil
	}

	affectedProjects := make([]uint, 0, len(allocations))
	for _, alloc := range allocations {
		affectedProjects = append(affectedProjects, alloc.ProjectID())
	}

	overBy := totalAllocated - res.CapacityHours()

	return &dto.SchedulingConflictDTO{
		ResourceID:          res.ID(),
		ResourceName:        res.Name(),
		ConflictType:        ConflictTypeOverAllocation,
		Description:         fmt.Sprintf("Resource is over-allocated by %g hours", overBy),
		AffectedProjects:    affectedProjects,
		Severity:            SeverityHigh,
		SuggestedResolution: fmt.Sprintf("Reduce allocation or increase capacity by %g hours", overBy),
	}
}

// checkDateOverlaps flags every overlapping pair among dated allocations,
// in ascending start-date order. Pairs are not deduplicated: an allocation
// overlapping several others appears in several conflicts. O(n^2) per
// resource; allocation counts per resource are expected to stay small.
func (uc *DetectConflictsUseCase) checkDateOverlaps(res *resource.Resource, allocations []*resource.Allocation) []dto.SchedulingConflictDTO {
	dated := make([]*resource.Allocation, 0, len(allocations))
	for _, alloc := range allocations {
		if alloc.HasDates() {
			dated = append(dated, alloc)
		}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].StartDate().Before(*dated[j].StartDate())
	})

	conflicts := make([]dto.SchedulingConflictDTO, 0)

	for i := 0; i < len(dated); i++ {
		for j := i + 1; j < len(dated); j++ {
			first, second := dated[i], dated[j]
			if !first.Overlaps(second) {
				continue
			}

			conflicts = append(conflicts, dto.SchedulingConflictDTO{
				ResourceID:   res.ID(),
				ResourceName: res.Name(),
				ConflictType: ConflictTypeDateOverlap,
				Description: fmt.Sprintf("Overlapping allocations from %s to %s",
					first.StartDate().Format("2006-01-02"),
					second.EndDate().Format("2006-01-02")),
				AffectedProjects:    []uint{first.ProjectID(), second.ProjectID()},
				Severity:            SeverityMedium,
				SuggestedResolution: "Adjust project timelines or assign additional resources",
			})
		}
	}

	return conflicts
}
