package resource

import (
	"fmt"
	"time"
)

// Allocation represents hours committed by a resource to a project.
// Start and end dates are optional; when present, start <= end is expected
// from the caller but not enforced here. Multiple allocations per
// resource/project pair are allowed.
type Allocation struct {
	id             uint
	resourceID     uint
	projectID      uint
	allocatedHours float64
	startDate      *time.Time
	endDate        *time.Time
	createdAt      time.Time
}

// NewAllocation creates a new allocation
func NewAllocation(resourceID, projectID uint, allocatedHours float64, startDate, endDate *time.Time) (*Allocation, error) {
	if resourceID == 0 {
		return nil, fmt.Errorf("resource ID is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if allocatedHours < 0 {
		return nil, fmt.Errorf("allocated hours cannot be negative")
	}

	return &Allocation{
		resourceID:     resourceID,
		projectID:      projectID,
		allocatedHours: allocatedHours,
		startDate:      startDate,
		endDate:        endDate,
		createdAt:      time.Now(),
	}, nil
}

// ReconstructAllocation reconstructs an allocation from persistence
func ReconstructAllocation(
	id, resourceID, projectID uint,
	allocatedHours float64,
	startDate, endDate *time.Time,
	createdAt time.Time,
) (*Allocation, error) {
	if id == 0 {
		return nil, fmt.Errorf("allocation ID cannot be zero")
	}
	if resourceID == 0 {
		return nil, fmt.Errorf("resource ID is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if allocatedHours < 0 {
		return nil, fmt.Errorf("allocated hours cannot be negative")
	}

	return &Allocation{
		id:             id,
		resourceID:     resourceID,
		projectID:      projectID,
		allocatedHours: allocatedHours,
		startDate:      startDate,
		endDate:        endDate,
		createdAt:      createdAt,
	}, nil
}

// ID returns the allocation ID
func (a *Allocation) ID() uint {
	return a.id
}

// ResourceID returns the allocated resource ID
func (a *Allocation) ResourceID() uint {
	return a.resourceID
}

// ProjectID returns the target project ID
func (a *Allocation) ProjectID() uint {
	return a.projectID
}

// AllocatedHours returns the committed hours
func (a *Allocation) AllocatedHours() float64 {
	return a.allocatedHours
}

// StartDate returns the optional start date
func (a *Allocation) StartDate() *time.Time {
	return a.startDate
}

// EndDate returns the optional end date
func (a *Allocation) EndDate() *time.Time {
	return a.endDate
}

// CreatedAt returns when the allocation was created
func (a *Allocation) CreatedAt() time.Time {
	return a.createdAt
}

// HasDates reports whether both start and end dates are set
func (a *Allocation) HasDates() bool {
	return a.startDate != nil && a.endDate != nil
}

// Overlaps reports whether two dated allocations overlap in time.
// The test is inclusive: touching boundaries count as overlapping.
// Returns false if either allocation is missing a date.
func (a *Allocation) Overlaps(other *Allocation) bool {
	if !a.HasDates() || !other.HasDates() {
		return false
	}
	return !a.endDate.Before(*other.startDate) && !other.endDate.Before(*a.startDate)
}

// SetID sets the allocation ID (only for persistence layer use)
func (a *Allocation) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("allocation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("allocation ID cannot be zero")
	}
	a.id = id
	return nil
}
