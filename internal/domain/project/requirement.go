package project

import "fmt"

const (
	// MinRequiredProficiency is the lowest declarable required proficiency
	MinRequiredProficiency = 1
	// MaxRequiredProficiency is the highest declarable required proficiency
	MaxRequiredProficiency = 5
)

// Requirement represents a declared skill requirement for a project.
// A project with zero requirements is a valid state; the skill matcher
// treats it as a neutral default rather than a disqualification.
type Requirement struct {
	id                  uint
	projectID           uint
	skillName           string
	requiredProficiency int
	requiredHours       float64
	description         string
}

// NewRequirement creates a new project skill requirement
func NewRequirement(projectID uint, skillName string, requiredProficiency int, requiredHours float64, description string) (*Requirement, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if skillName == "" {
		return nil, fmt.Errorf("skill name is required")
	}
	if requiredProficiency < MinRequiredProficiency || requiredProficiency > MaxRequiredProficiency {
		return nil, fmt.Errorf("required proficiency must be between %d and %d", MinRequiredProficiency, MaxRequiredProficiency)
	}
	if requiredHours < 0 {
		return nil, fmt.Errorf("required hours cannot be negative")
	}

	return &Requirement{
		projectID:           projectID,
		skillName:           skillName,
		requiredProficiency: requiredProficiency,
		requiredHours:       requiredHours,
		description:         description,
	}, nil
}

// ReconstructRequirement reconstructs a requirement from persistence
func ReconstructRequirement(
	id, projectID uint,
	skillName string,
	requiredProficiency int,
	requiredHours float64,
	description string,
) (*Requirement, error) {
	if id == 0 {
		return nil, fmt.Errorf("requirement ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if skillName == "" {
		return nil, fmt.Errorf("skill name is required")
	}
	if requiredProficiency < MinRequiredProficiency || requiredProficiency > MaxRequiredProficiency {
		return nil, fmt.Errorf("required proficiency must be between %d and %d", MinRequiredProficiency, MaxRequiredProficiency)
	}

	return &Requirement{
		id:                  id,
		projectID:           projectID,
		skillName:           skillName,
		requiredProficiency: requiredProficiency,
		requiredHours:       requiredHours,
		description:         description,
	}, nil
}

// ID returns the requirement ID
func (r *Requirement) ID() uint {
	return r.id
}

// ProjectID returns the owning project ID
func (r *Requirement) ProjectID() uint {
	return r.projectID
}

// SkillName returns the required skill name
func (r *Requirement) SkillName() string {
	return r.skillName
}

// RequiredProficiency returns the required proficiency level
func (r *Requirement) RequiredProficiency() int {
	return r.requiredProficiency
}

// RequiredHours returns the estimated hours of work for this skill
func (r *Requirement) RequiredHours() float64 {
	return r.requiredHours
}

// Description returns the requirement description
func (r *Requirement) Description() string {
	return r.description
}

// SetID sets the requirement ID (only for persistence layer use)
func (r *Requirement) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("requirement ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("requirement ID cannot be zero")
	}
	r.id = id
	return nil
}
