// Package dto defines the data transfer objects for resource operations.
package dto

import "time"

// SkillDTO is a declared skill on a resource.
type SkillDTO struct {
	ID               uint   `json:"id"`
	SkillName        string `json:"skill_name"`
	ProficiencyLevel int    `json:"proficiency_level"`
}

// SkillInput is a skill declaration supplied at resource creation.
type SkillInput struct {
	SkillName        string `json:"skill_name" binding:"required"`
	ProficiencyLevel int    `json:"proficiency_level" binding:"required,min=1,max=5"`
}

// ResourceDTO is a resource with its declared skills.
type ResourceDTO struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Role          string     `json:"role"`
	CapacityHours float64    `json:"capacity_hours"`
	Department    string     `json:"department,omitempty"`
	Location      string     `json:"location,omitempty"`
	Skills        []SkillDTO `json:"skills"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AllocationDTO is a stored allocation row.
type AllocationDTO struct {
	ID             uint       `json:"id"`
	ResourceID     uint       `json:"resource_id"`
	ProjectID      uint       `json:"project_id"`
	AllocatedHours float64    `json:"allocated_hours"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	CreatedAt      time.Time  `json:"created_at"`
}
