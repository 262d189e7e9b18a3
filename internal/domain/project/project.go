// Package project provides domain models for projects and their declared
// skill requirements. Projects are owned by the wider project-management
// system; the allocation optimizer consumes them read-mostly by ID.
package project

import (
	"fmt"
	"time"
)

// Project represents a project that work can be allocated to.
type Project struct {
	id          uint
	name        string
	description string
	startDate   *time.Time
	endDate     *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProject creates a new project
func NewProject(name, description string, startDate, endDate *time.Time) (*Project, error) {
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	now := time.Now()
	return &Project{
		name:        name,
		description: description,
		startDate:   startDate,
		endDate:     endDate,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProject reconstructs a project from persistence
func ReconstructProject(
	id uint,
	name, description string,
	startDate, endDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	return &Project{
		id:          id,
		name:        name,
		description: description,
		startDate:   startDate,
		endDate:     endDate,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ID returns the project ID
func (p *Project) ID() uint {
	return p.id
}

// Name returns the project name
func (p *Project) Name() string {
	return p.name
}

// Description returns the project description
func (p *Project) Description() string {
	return p.description
}

// StartDate returns the optional project start date
func (p *Project) StartDate() *time.Time {
	return p.startDate
}

// EndDate returns the optional project end date
func (p *Project) EndDate() *time.Time {
	return p.endDate
}

// CreatedAt returns when the project was created
func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the project was last updated
func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

// SetID sets the project ID (only for persistence layer use)
func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}
