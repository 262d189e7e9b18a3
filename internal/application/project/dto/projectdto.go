// Package dto defines the data transfer objects for project operations.
package dto

import "time"

// ProjectDTO is a stored project.
type ProjectDTO struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

// RequirementDTO is a declared skill requirement on a project.
type RequirementDTO struct {
	ID                  uint    `json:"id"`
	ProjectID           uint    `json:"project_id"`
	SkillName           string  `json:"skill_name"`
	RequiredProficiency int     `json:"required_proficiency"`
	RequiredHours       float64 `json:"required_hours"`
	Description         string  `json:"description,omitempty"`
}
