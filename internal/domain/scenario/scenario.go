// Package scenario provides the what-if allocation scenario aggregate.
// A scenario is a frozen snapshot of proposed allocations with derived
// metrics; it never references or mutates live allocation data.
package scenario

import (
	"fmt"
	"time"
)

// ProposedAllocation is a single hypothetical allocation inside a scenario.
// It is a value snapshot, not a live allocation row: scenarios never pass
// through capacity checks or conflict detection.
type ProposedAllocation struct {
	ResourceID     uint       `json:"resource_id"`
	ProjectID      uint       `json:"project_id"`
	AllocatedHours float64    `json:"allocated_hours"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

// Metrics holds the derived metrics computed at scenario creation time.
type Metrics struct {
	TotalAllocatedHours float64 `json:"total_allocated_hours"`
	ResourcesInvolved   int     `json:"resources_involved"`
	ProjectsInvolved    int     `json:"projects_involved"`
	AllocationsCount    int     `json:"allocations_count"`
}

// Scenario represents a named allocation scenario. Immutable once created.
type Scenario struct {
	id          uint
	name        string
	description string
	allocations []ProposedAllocation
	metrics     Metrics
	createdAt   time.Time
}

// ComputeMetrics derives scenario metrics from a proposed allocation set:
// total hours, distinct resources, distinct projects, and allocation count.
func ComputeMetrics(allocations []ProposedAllocation) Metrics {
	var total float64
	resources := make(map[uint]struct{})
	projects := make(map[uint]struct{})

	for _, alloc := range allocations {
		total += alloc.AllocatedHours
		resources[alloc.ResourceID] = struct{}{}
		projects[alloc.ProjectID] = struct{}{}
	}

	return Metrics{
		TotalAllocatedHours: total,
		ResourcesInvolved:   len(resources),
		ProjectsInvolved:    len(projects),
		AllocationsCount:    len(allocations),
	}
}

// NewScenario creates a new scenario, computing its derived metrics.
// No validation against live resource capacity happens here; scenario
// exploration is deliberately unconstrained.
func NewScenario(name, description string, allocations []ProposedAllocation) (*Scenario, error) {
	if name == "" {
		return nil, fmt.Errorf("scenario name is required")
	}

	snapshot := make([]ProposedAllocation, len(allocations))
	copy(snapshot, allocations)

	return &Scenario{
		name:        name,
		description: description,
		allocations: snapshot,
		metrics:     ComputeMetrics(snapshot),
		createdAt:   time.Now(),
	}, nil
}

// ReconstructScenario reconstructs a scenario from persistence
func ReconstructScenario(
	id uint,
	name, description string,
	allocations []ProposedAllocation,
	metrics Metrics,
	createdAt time.Time,
) (*Scenario, error) {
	if id == 0 {
		return nil, fmt.Errorf("scenario ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("scenario name is required")
	}

	return &Scenario{
		id:          id,
		name:        name,
		description: description,
		allocations: allocations,
		metrics:     metrics,
		createdAt:   createdAt,
	}, nil
}

// ID returns the scenario ID
func (s *Scenario) ID() uint {
	return s.id
}

// Name returns the scenario name
func (s *Scenario) Name() string {
	return s.name
}

// Description returns the scenario description
func (s *Scenario) Description() string {
	return s.description
}

// Allocations returns a copy of the proposed allocation snapshot
func (s *Scenario) Allocations() []ProposedAllocation {
	out := make([]ProposedAllocation, len(s.allocations))
	copy(out, s.allocations)
	return out
}

// Metrics returns the derived metrics
func (s *Scenario) Metrics() Metrics {
	return s.metrics
}

// CreatedAt returns when the scenario was created
func (s *Scenario) CreatedAt() time.Time {
	return s.createdAt
}

// SetID sets the scenario ID (only for persistence layer use)
func (s *Scenario) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("scenario ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("scenario ID cannot be zero")
	}
	s.id = id
	return nil
}
