package scenario

import "context"

// Repository defines the interface for scenario persistence operations.
// Scenarios are created once and never updated; deletion is an external
// administrative action.
type Repository interface {
	// Create persists a new scenario
	Create(ctx context.Context, sc *Scenario) error

	// GetByID retrieves a scenario by ID; returns nil when not found
	GetByID(ctx context.Context, id uint) (*Scenario, error)

	// GetByIDs retrieves scenarios by their IDs, preserving input order
	// and silently skipping IDs that do not resolve.
	GetByIDs(ctx context.Context, ids []uint) ([]*Scenario, error)
}
