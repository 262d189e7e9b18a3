package project

import "context"

// Repository defines the interface for project persistence operations
type Repository interface {
	// Create creates a new project
	Create(ctx context.Context, proj *Project) error

	// GetByID retrieves a project by ID; returns nil when not found
	GetByID(ctx context.Context, id uint) (*Project, error)

	// GetByIDs retrieves projects by their IDs.
	// Returns a map from project ID to Project for efficient lookup.
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Project, error)

	// List retrieves all projects
	List(ctx context.Context) ([]*Project, error)
}

// RequirementRepository defines the interface for requirement persistence
type RequirementRepository interface {
	// Create creates a new requirement
	Create(ctx context.Context, req *Requirement) error

	// GetByProjectID retrieves all requirements declared for a project
	GetByProjectID(ctx context.Context, projectID uint) ([]*Requirement, error)
}
