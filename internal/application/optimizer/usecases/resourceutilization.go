// Package usecases implements the allocation optimizer: the capacity ledger,
// conflict detection, skill matching, allocation recommendation, and what-if
// scenario planning.
package usecases

import (
	"context"
	"fmt"
	"math"
	"time"

	"planwise/internal/application/optimizer/dto"
	"planwise/internal/domain/project"
	"planwise/internal/domain/resource"
	"planwise/internal/shared/logger"
)

// Utilization status bands. Half-open: < 60 under, 60..90 optimal, > 90 over.
const (
	UtilizationStatusUnder   = "under-utilized"
	UtilizationStatusOptimal = "optimal"
	UtilizationStatusOver    = "over-utilized"
)

// unknownProjectName is the placeholder used when a project referenced by an
// allocation cannot be resolved; the report degrades instead of aborting.
const unknownProjectName = "Unknown"

// ResourceUtilizationQuery scopes the utilization report to one resource
// when ResourceID is set; otherwise all resources are reported.
type ResourceUtilizationQuery struct {
	ResourceID *uint
}

// ResourceUtilizationUseCase computes per-resource allocated hours, available
// hours, and a utilization classification. Read-only aggregation.
type ResourceUtilizationUseCase struct {
	resourceRepo   resource.Repository
	allocationRepo resource.AllocationRepository
	projectRepo    project.Repository
	logger         logger.Interface
}

// NewResourceUtilizationUseCase creates a new ResourceUtilizationUseCase
func NewResourceUtilizationUseCase(
	resourceRepo resource.Repository,
	allocationRepo resource.AllocationRepository,
	projectRepo project.Repository,
	logger logger.Interface,
) *ResourceUtilizationUseCase {
	return &ResourceUtilizationUseCase{
		resourceRepo:   resourceRepo,
		allocationRepo: allocationRepo,
		projectRepo:    projectRepo,
		logger:         logger,
	}
}

// Execute computes utilization records. A resource ID that does not resolve
// yields an empty list, not an error.
func (uc *ResourceUtilizationUseCase) Execute(ctx context.Context, query ResourceUtilizationQuery) ([]dto.ResourceUtilizationDTO, error) {
	var resources []*resource.Resource

	if query.ResourceID != nil {
		res, err := uc.resourceRepo.GetByID(ctx, *query.ResourceID)
		if err != nil {
			uc.logger.Errorw("failed to get resource", "error", err, "resource_id", *query.ResourceID)
			return nil, fmt.Errorf("failed to get resource: %w", err)
		}
		if res == nil {
			return []dto.ResourceUtilizationDTO{}, nil
		}
		resources = []*resource.Resource{res}
	} else {
		var err error
		resources, err = uc.resourceRepo.List(ctx)
		if err != nil {
			uc.logger.Errorw("failed to list resources", "error", err)
			return nil, fmt.Errorf("failed to list resources: %w", err)
		}
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

	// Batch-fetch every referenced project once instead of one lookup per
	// allocation row.
	projectNames, err := uc.resolveProjectNames(ctx, allocationsByResource)
	if err != nil {
		return nil, err
	}

	report := make([]dto.ResourceUtilizationDTO, 0, len(resources))

	for _, res := range resources {
		allocations := allocationsByResource[res.ID()]

		var totalAllocated float64
		for _, alloc := range allocations {
			totalAllocated += alloc.AllocatedHours()
		}

		availableHours := res.CapacityHours() - totalAllocated

		var utilizationPct float64
		if res.CapacityHours() > 0 {
			utilizationPct = totalAllocated / res.CapacityHours() * 100
		}

		details := make([]dto.AllocationDetailDTO, 0, len(allocations))
		for _, alloc := range allocations {
			name, ok := projectNames[alloc.ProjectID()]
			if !ok {
				name = unknownProjectName
			}
			details = append(details, dto.AllocationDetailDTO{
				ProjectID:      alloc.ProjectID(),
				ProjectName:    name,
				AllocatedHours: alloc.AllocatedHours(),
				StartDate:      isoDate(alloc.StartDate()),
				EndDate:        isoDate(alloc.EndDate()),
			})
		}

		report = append(report, dto.ResourceUtilizationDTO{
			ResourceID:            res.ID(),
			ResourceName:          res.Name(),
			CapacityHours:         res.CapacityHours(),
			AllocatedHours:        totalAllocated,
			AvailableHours:        availableHours,
			UtilizationPercentage: round2(utilizationPct),
			Status:                classifyUtilization(utilizationPct),
			Allocations:           details,
		})
	}

	return report, nil
}

func (uc *ResourceUtilizationUseCase) resolveProjectNames(ctx context.Context, allocationsByResource map[uint][]*resource.Allocation) (map[uint]string, error) {
	seen := make(map[uint]struct{})
	projectIDs := make([]uint, 0)
	for _, allocations := range allocationsByResource {
		for _, alloc := range allocations {
			if _, ok := seen[alloc.ProjectID()]; !ok {
				seen[alloc.ProjectID()] = struct{}{}
				projectIDs = append(projectIDs, alloc.ProjectID())
			}
		}
	}

	if len(projectIDs) == 0 {
		return map[uint]string{}, nil
	}

	projects, err := uc.projectRepo.GetByIDs(ctx, projectIDs)
	if err != nil {
		uc.logger.Errorw("failed to get projects for utilization detail", "error", err)
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	names := make(map[uint]string, len(projects))
	for id, proj := range projects {
		names[id] = proj.Name()
	}
	return names, nil
}

// classifyUtilization maps a utilization percentage onto exactly one band.
func classifyUtilization(pct float64) string {
	switch {
	case pct < 60:
		return UtilizationStatusUnder
	case pct <= 90:
		return UtilizationStatusOptimal
	default:
		return UtilizationStatusOver
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
