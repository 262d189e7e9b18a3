package resource

import "fmt"

const (
	// MinProficiency is the lowest declarable proficiency level
	MinProficiency = 1
	// MaxProficiency is the highest declarable proficiency level
	MaxProficiency = 5
)

// Skill represents a declared skill with a proficiency level for a resource.
// A resource is expected to carry at most one proficiency per skill name;
// duplicates are a caller error and are not deduplicated here.
type Skill struct {
	id               uint
	resourceID       uint
	skillName        string
	proficiencyLevel int
}

// NewSkill creates a new skill entry for a resource
func NewSkill(resourceID uint, skillName string, proficiencyLevel int) (*Skill, error) {
	if resourceID == 0 {
		return nil, fmt.Errorf("resource ID is required")
	}
	if skillName == "" {
		return nil, fmt.Errorf("skill name is required")
	}
	if proficiencyLevel < MinProficiency || proficiencyLevel > MaxProficiency {
		return nil, fmt.Errorf("proficiency level must be between %d and %d", MinProficiency, MaxProficiency)
	}

	return &Skill{
		resourceID:       resourceID,
		skillName:        skillName,
		proficiencyLevel: proficiencyLevel,
	}, nil
}

// ReconstructSkill reconstructs a skill from persistence
func ReconstructSkill(id, resourceID uint, skillName string, proficiencyLevel int) (*Skill, error) {
	if id == 0 {
		return nil, fmt.Errorf("skill ID cannot be zero")
	}
	if resourceID == 0 {
		return nil, fmt.Errorf("resource ID is required")
	}
	if skillName == "" {
		return nil, fmt.Errorf("skill name is required")
	}
	if proficiencyLevel < MinProficiency || proficiencyLevel > MaxProficiency {
		return nil, fmt.Errorf("proficiency level must be between %d and %d", MinProficiency, MaxProficiency)
	}

	return &Skill{
		id:               id,
		resourceID:       resourceID,
		skillName:        skillName,
		proficiencyLevel: proficiencyLevel,
	}, nil
}

// ID returns the skill ID
func (s *Skill) ID() uint {
	return s.id
}

// ResourceID returns the owning resource ID
func (s *Skill) ResourceID() uint {
	return s.resourceID
}

// SkillName returns the skill name
func (s *Skill) SkillName() string {
	return s.skillName
}

// ProficiencyLevel returns the declared proficiency level
func (s *Skill) ProficiencyLevel() int {
	return s.proficiencyLevel
}

// SetID sets the skill ID (only for persistence layer use)
func (s *Skill) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("skill ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("skill ID cannot be zero")
	}
	s.id = id
	return nil
}
