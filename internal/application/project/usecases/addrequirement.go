package usecases

import (
	"context"
	"fmt"

	"planwise/internal/application/project/dto"
	"planwise/internal/domain/project"
	"planwise/internal/shared/errors"
	"planwise/internal/shared/logger"
)

// AddRequirementCommand declares a skill requirement on an existing project.
type AddRequirementCommand struct {
	ProjectID           uint
	SkillName           string
	RequiredProficiency int
	RequiredHours       float64
	Description         string
}

// AddRequirementUseCase adds a skill requirement to a project
type AddRequirementUseCase struct {
	projectRepo     project.Repository
	requirementRepo project.RequirementRepository
	logger          logger.Interface
}

// NewAddRequirementUseCase creates a new AddRequirementUseCase
func NewAddRequirementUseCase(
	projectRepo project.Repository,
	requirementRepo project.RequirementRepository,
	logger logger.Interface,
) *AddRequirementUseCase {
	return &AddRequirementUseCase{
		projectRepo:     projectRepo,
		requirementRepo: requirementRepo,
		logger:          logger,
	}
}

// Execute validates the parent project exists and stores the requirement.
func (uc *AddRequirementUseCase) Execute(ctx context.Context, cmd AddRequirementCommand) (*dto.RequirementDTO, error) {
	proj, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to get project", "error", err, "project_id", cmd.ProjectID)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if proj == nil {
		return nil, errors.NewNotFoundError("project not found", fmt.Sprintf("project %d", cmd.ProjectID))
	}

	req, err := project.NewRequirement(cmd.ProjectID, cmd.SkillName, cmd.RequiredProficiency, cmd.RequiredHours, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requirementRepo.Create(ctx, req); err != nil {
		uc.logger.Errorw("failed to save requirement", "error", err, "project_id", cmd.ProjectID, "skill", cmd.SkillName)
		return nil, fmt.Errorf("failed to save requirement: %w", err)
	}

	uc.logger.Infow("requirement added",
		"project_id", cmd.ProjectID,
		"skill", req.SkillName(),
		"required_proficiency", req.RequiredProficiency(),
	)

	return &dto.RequirementDTO{
		ID:                  req.ID(),
		ProjectID:           req.ProjectID(),
		SkillName:           req.SkillName(),
		RequiredProficiency: req.RequiredProficiency(),
		RequiredHours:       req.RequiredHours(),
		Description:         req.Description(),
	}, nil
}
