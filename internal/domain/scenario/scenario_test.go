package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMetrics(t *testing.T) {
	allocations := []ProposedAllocation{
		{ResourceID: 1, ProjectID: 10, AllocatedHours: 40},
		{ResourceID: 1, ProjectID: 20, AllocatedHours: 60},
		{ResourceID: 2, ProjectID: 10, AllocatedHours: 80},
	}

	m := ComputeMetrics(allocations)

	assert.Equal(t, 180.0, m.TotalAllocatedHours)
	assert.Equal(t, 2, m.ResourcesInvolved)
	assert.Equal(t, 2, m.ProjectsInvolved)
	assert.Equal(t, 3, m.AllocationsCount)
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := ComputeMetrics(nil)

	assert.Equal(t, 0.0, m.TotalAllocatedHours)
	assert.Equal(t, 0, m.ResourcesInvolved)
	assert.Equal(t, 0, m.ProjectsInvolved)
	assert.Equal(t, 0, m.AllocationsCount)
}

func TestNewScenario(t *testing.T) {
	allocations := []ProposedAllocation{
		{ResourceID: 1, ProjectID: 10, AllocatedHours: 40},
	}

	sc, err := NewScenario("Q3 ramp-up", "add one engineer to the platform track", allocations)
	require.NoError(t, err)

	assert.Equal(t, "Q3 ramp-up", sc.Name())
	assert.Equal(t, 40.0, sc.Metrics().TotalAllocatedHours)
	assert.Equal(t, 1, sc.Metrics().AllocationsCount)
}

func TestNewScenario_RequiresName(t *testing.T) {
	_, err := NewScenario("", "", nil)
	assert.EqualError(t, err, "scenario name is required")
}

func TestScenario_SnapshotIsIsolated(t *testing.T) {
	input := []ProposedAllocation{{ResourceID: 1, ProjectID: 10, AllocatedHours: 40}}

	sc, err := NewScenario("isolated", "", input)
	require.NoError(t, err)

	// Mutating the caller's slice must not affect the stored snapshot.
	input[0].AllocatedHours = 999
	assert.Equal(t, 40.0, sc.Allocations()[0].AllocatedHours)

	// Mutating a returned copy must not affect the stored snapshot either.
	out := sc.Allocations()
	out[0].AllocatedHours = 123
	assert.Equal(t, 40.0, sc.Allocations()[0].AllocatedHours)
}
