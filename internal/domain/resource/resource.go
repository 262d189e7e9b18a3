// Package resource provides domain models for people and their project
// allocations: the Resource aggregate, declared skills, and allocation rows.
package resource

import (
	"fmt"
	"time"
)

// Resource represents a person that can be allocated to project work.
// capacityHours is the total number of work hours the resource can take on.
type Resource struct {
	id            uint
	name          string
	role          string
	capacityHours float64
	department    string
	location      string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewResource creates a new resource
func NewResource(name, role string, capacityHours float64, department, location string) (*Resource, error) {
	if name == "" {
		return nil, fmt.Errorf("resource name is required")
	}
	if capacityHours < 0 {
		return nil, fmt.Errorf("capacity hours cannot be negative")
	}

	now := time.Now()
	return &Resource{
		name:          name,
		role:          role,
		capacityHours: capacityHours,
		department:    department,
		location:      location,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructResource reconstructs a resource from persistence
func ReconstructResource(
	id uint,
	name, role string,
	capacityHours float64,
	department, location string,
	createdAt, updatedAt time.Time,
) (*Resource, error) {
	if id == 0 {
		return nil, fmt.Errorf("resource ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("resource name is required")
	}
	if capacityHours < 0 {
		return nil, fmt.Errorf("capacity hours cannot be negative")
	}

	return &Resource{
		id:            id,
		name:          name,
		role:          role,
		capacityHours: capacityHours,
		department:    department,
		location:      location,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// ID returns the resource ID
func (r *Resource) ID() uint {
	return r.id
}

// Name returns the resource name
func (r *Resource) Name() string {
	return r.name
}

// Role returns the resource role
func (r *Resource) Role() string {
	return r.role
}

// CapacityHours returns the total available work hours
func (r *Resource) CapacityHours() float64 {
	return r.capacityHours
}

// Department returns the resource department
func (r *Resource) Department() string {
	return r.department
}

// Location returns the resource location
func (r *Resource) Location() string {
	return r.location
}

// CreatedAt returns when the resource was created
func (r *Resource) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the resource was last updated
func (r *Resource) UpdatedAt() time.Time {
	return r.updatedAt
}

// SetID sets the resource ID (only for persistence layer use)
func (r *Resource) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("resource ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("resource ID cannot be zero")
	}
	r.id = id
	return nil
}
