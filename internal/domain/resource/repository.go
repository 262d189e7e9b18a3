package resource

import "context"

// Repository defines the interface for resource persistence operations
type Repository interface {
	// Create creates a new resource
	Create(ctx context.Context, res *Resource) error

	// GetByID retrieves a resource by ID; returns nil when not found
	GetByID(ctx context.Context, id uint) (*Resource, error)

	// List retrieves all resources
	List(ctx context.Context) ([]*Resource, error)
}

// SkillRepository defines the interface for resource skill persistence
type SkillRepository interface {
	// Create creates a new skill entry
	Create(ctx context.Context, skill *Skill) error

	// GetByResourceID retrieves all skills declared by a resource
	GetByResourceID(ctx context.Context, resourceID uint) ([]*Skill, error)

	// GetByResourceIDs retrieves skills for multiple resources.
	// Returns a map from resource ID to its skills for efficient joins.
	GetByResourceIDs(ctx context.Context, resourceIDs []uint) (map[uint][]*Skill, error)
}

// AllocationRepository defines the interface for allocation persistence
type AllocationRepository interface {
	// Create creates a new allocation
	Create(ctx context.Context, alloc *Allocation) error

	// GetByProjectID retrieves all allocations for a project
	GetByProjectID(ctx context.Context, projectID uint) ([]*Allocation, error)

	// GetByResourceIDs retrieves allocations for multiple resources.
	// Returns a map from resource ID to its allocations for efficient joins.
	GetByResourceIDs(ctx context.Context, resourceIDs []uint) (map[uint][]*Allocation, error)

	// SumHoursByResourceID returns the total allocated hours for a resource
	SumHoursByResourceID(ctx context.Context, resourceID uint) (float64, error)
}
