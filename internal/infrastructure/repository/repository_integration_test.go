package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"planwise/internal/domain/project"
	"planwise/internal/domain/resource"
	"planwise/internal/domain/scenario"
	"planwise/internal/infrastructure/persistence/models"
	"planwise/internal/shared/db"
	"planwise/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.ResourceModel{},
		&models.ResourceSkillModel{},
		&models.AllocationModel{},
		&models.ProjectModel{},
		&models.ProjectRequirementModel{},
		&models.AllocationScenarioModel{},
	)
	require.NoError(t, err)

	return database
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Fatal(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func TestResourceRepository_CreateAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewResourceRepository(database, noopLogger{})
	ctx := context.Background()

	res, err := resource.NewResource("Alice", "Engineer", 160, "Engineering", "Berlin")
	require.NoError(t, err)

	err = repo.Create(ctx, res)
	require.NoError(t, err)
	assert.NotZero(t, res.ID())

	found, err := repo.GetByID(ctx, res.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.Name())
	assert.Equal(t, 160.0, found.CapacityHours())
	assert.Equal(t, "Berlin", found.Location())
}

func TestResourceRepository_GetByID_NotFoundReturnsNil(t *testing.T) {
	database := setupTestDB(t)
	repo := NewResourceRepository(database, noopLogger{})

	found, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestResourceRepository_List(t *testing.T) {
	database := setupTestDB(t)
	repo := NewResourceRepository(database, noopLogger{})
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		res, err := resource.NewResource(name, "", 160, "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, res))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestResourceSkillRepository_BatchLookup(t *testing.T) {
	database := setupTestDB(t)
	resourceRepo := NewResourceRepository(database, noopLogger{})
	skillRepo := NewResourceSkillRepository(database, noopLogger{})
	ctx := context.Background()

	alice, err := resource.NewResource("Alice", "", 160, "", "")
	require.NoError(t, err)
	require.NoError(t, resourceRepo.Create(ctx, alice))

	bob, err := resource.NewResource("Bob", "", 120, "", "")
	require.NoError(t, err)
	require.NoError(t, resourceRepo.Create(ctx, bob))

	for name, level := range map[string]int{"Go": 5, "SQL": 3} {
		skill, err := resource.NewSkill(alice.ID(), name, level)
		require.NoError(t, err)
		require.NoError(t, skillRepo.Create(ctx, skill))
	}

	byResource, err := skillRepo.GetByResourceIDs(ctx, []uint{alice.ID(), bob.ID()})
	require.NoError(t, err)
	assert.Len(t, byResource[alice.ID()], 2)
	assert.Empty(t, byResource[bob.ID()])
}

func TestResourceSkillRepository_RejectsDuplicateSkill(t *testing.T) {
	database := setupTestDB(t)
	resourceRepo := NewResourceRepository(database, noopLogger{})
	skillRepo := NewResourceSkillRepository(database, noopLogger{})
	ctx := context.Background()

	alice, err := resource.NewResource("Alice", "", 160, "", "")
	require.NoError(t, err)
	require.NoError(t, resourceRepo.Create(ctx, alice))

	first, err := resource.NewSkill(alice.ID(), "Go", 5)
	require.NoError(t, err)
	require.NoError(t, skillRepo.Create(ctx, first))

	second, err := resource.NewSkill(alice.ID(), "Go", 3)
	require.NoError(t, err)
	err = skillRepo.Create(ctx, second)
	assert.Error(t, err)
}

func TestAllocationRepository_SumAndTransaction(t *testing.T) {
	database := setupTestDB(t)
	resourceRepo := NewResourceRepository(database, noopLogger{})
	allocationRepo := NewAllocationRepository(database, noopLogger{})
	projectRepo := NewProjectRepository(database, noopLogger{})
	txManager := db.NewTransactionManager(database)
	ctx := context.Background()

	alice, err := resource.NewResource("Alice", "", 160, "", "")
	require.NoError(t, err)
	require.NoError(t, resourceRepo.Create(ctx, alice))

	proj, err := project.NewProject("Apollo", "", nil, nil)
	require.NoError(t, err)
	require.NoError(t, projectRepo.Create(ctx, proj))

	total, err := allocationRepo.SumHoursByResourceID(ctx, alice.ID())
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
	alloc, err := resource.NewAllocation(alice.ID(), proj.ID(), 60, &start, &end)
	require.NoError(t, err)

	err = txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return allocationRepo.Create(txCtx, alloc)
	})
	require.NoError(t, err)
	assert.NotZero(t, alloc.ID())

	total, err = allocationRepo.SumHoursByResourceID(ctx, alice.ID())
	require.NoError(t, err)
	assert.Equal(t, 60.0, total)

	byProject, err := allocationRepo.GetByProjectID(ctx, proj.ID())
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	require.NotNil(t, byProject[0].StartDate())
	assert.True(t, start.Equal(*byProject[0].StartDate()))
}

func TestAllocationRepository_RollbackDiscardsWrite(t *testing.T) {
	database := setupTestDB(t)
	resourceRepo := NewResourceRepository(database, noopLogger{})
	allocationRepo := NewAllocationRepository(database, noopLogger{})
	txManager := db.NewTransactionManager(database)
	ctx := context.Background()

	alice, err := resource.NewResource("Alice", "", 160, "", "")
	require.NoError(t, err)
	require.NoError(t, resourceRepo.Create(ctx, alice))

	alloc, err := resource.NewAllocation(alice.ID(), 1, 60, nil, nil)
	require.NoError(t, err)

	sentinel := assert.AnError
	err = txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := allocationRepo.Create(txCtx, alloc); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	total, err := allocationRepo.SumHoursByResourceID(ctx, alice.ID())
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestProjectRequirementRepository_RoundTrip(t *testing.T) {
	database := setupTestDB(t)
	projectRepo := NewProjectRepository(database, noopLogger{})
	requirementRepo := NewProjectRequirementRepository(database, noopLogger{})
	ctx := context.Background()

	proj, err := project.NewProject("Apollo", "Launch readiness", nil, nil)
	require.NoError(t, err)
	require.NoError(t, projectRepo.Create(ctx, proj))

	req, err := project.NewRequirement(proj.ID(), "Go", 4, 120, "backend work")
	require.NoError(t, err)
	require.NoError(t, requirementRepo.Create(ctx, req))

	found, err := requirementRepo.GetByProjectID(ctx, proj.ID())
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Go", found[0].SkillName())
	assert.Equal(t, 4, found[0].RequiredProficiency())
	assert.Equal(t, 120.0, found[0].RequiredHours())
}

func TestScenarioRepository_SnapshotRoundTrip(t *testing.T) {
	database := setupTestDB(t)
	repo := NewScenarioRepository(database, noopLogger{})
	ctx := context.Background()

	sc, err := scenario.NewScenario("Q3 rebalance", "shift load", []scenario.ProposedAllocation{
		{ResourceID: 1, ProjectID: 10, AllocatedHours: 80},
		{ResourceID: 2, ProjectID: 11, AllocatedHours: 40},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, sc))
	assert.NotZero(t, sc.ID())

	found, err := repo.GetByID(ctx, sc.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Q3 rebalance", found.Name())
	assert.Equal(t, 120.0, found.Metrics().TotalAllocatedHours)
	assert.Equal(t, 2, found.Metrics().ResourcesInvolved)
	require.Len(t, found.Allocations(), 2)
	assert.Equal(t, uint(1), found.Allocations()[0].ResourceID)
}

func TestScenarioRepository_GetByIDs_PreservesOrderAndSkipsMissing(t *testing.T) {
	database := setupTestDB(t)
	repo := NewScenarioRepository(database, noopLogger{})
	ctx := context.Background()

	first, err := scenario.NewScenario("Plan A", "", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := scenario.NewScenario("Plan B", "", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, second))

	found, err := repo.GetByIDs(ctx, []uint{second.ID(), 999, first.ID()})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Plan B", found[0].Name())
	assert.Equal(t, "Plan A", found[1].Name())
}
