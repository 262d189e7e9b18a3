package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise/internal/application/optimizer/dto"
	"planwise/internal/application/optimizer/usecases"
	"planwise/internal/interfaces/http/handlers/testutil"
	"planwise/internal/shared/errors"
)

type mockCreateScenarioUC struct {
	result *dto.ScenarioDTO
	err    error

	gotCmd usecases.CreateScenarioCommand
}

func (m *mockCreateScenarioUC) Execute(ctx context.Context, cmd usecases.CreateScenarioCommand) (*dto.ScenarioDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockCompareScenariosUC struct {
	result *dto.ScenarioComparisonDTO
	err    error

	gotQuery usecases.CompareScenariosQuery
}

func (m *mockCompareScenariosUC) Execute(ctx context.Context, query usecases.CompareScenariosQuery) (*dto.ScenarioComparisonDTO, error) {
	m.gotQuery = query
	return m.result, m.err
}

func newTestScenarioHandler(createUC createScenarioUseCase, compareUC compareScenariosUseCase) *ScenarioHandler {
	return NewScenarioHandler(createUC, compareUC, testutil.NewMockLogger())
}

// =====================================================================
// TestScenarioHandler_CreateScenario
// =====================================================================

func TestScenarioHandler_CreateScenario_Success(t *testing.T) {
	mockUC := &mockCreateScenarioUC{
		result: &dto.ScenarioDTO{
			ID:   1,
			Name: "Q3 rebalance",
			Metrics: dto.ScenarioMetricsDTO{
				TotalAllocatedHours: 120,
				AllocationsCount:    2,
			},
		},
	}
	handler := newTestScenarioHandler(mockUC, nil)

	reqBody := CreateScenarioRequest{
		Name: "Q3 rebalance",
		Allocations: []dto.ProposedAllocationInput{
			{ResourceID: 1, ProjectID: 10, AllocatedHours: 80},
			{ResourceID: 2, ProjectID: 10, AllocatedHours: 40},
		},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/scenarios", reqBody)

	handler.CreateScenario(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Q3 rebalance", mockUC.gotCmd.Name)
	assert.Len(t, mockUC.gotCmd.Allocations, 2)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestScenarioHandler_CreateScenario_MissingName(t *testing.T) {
	handler := newTestScenarioHandler(&mockCreateScenarioUC{}, nil)

	reqBody := map[string]interface{}{
		"allocations": []map[string]interface{}{
			{"resource_id": 1, "project_id": 10, "allocated_hours": 80},
		},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/scenarios", reqBody)

	handler.CreateScenario(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestScenarioHandler_CreateScenario_RejectsAllocationWithoutResource(t *testing.T) {
	handler := newTestScenarioHandler(&mockCreateScenarioUC{}, nil)

	reqBody := map[string]interface{}{
		"name": "broken",
		"allocations": []map[string]interface{}{
			{"project_id": 10, "allocated_hours": 80},
		},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/scenarios", reqBody)

	handler.CreateScenario(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestScenarioHandler_CompareScenarios
// =====================================================================

func TestScenarioHandler_CompareScenarios_Success(t *testing.T) {
	mockUC := &mockCompareScenariosUC{
		result: &dto.ScenarioComparisonDTO{
			Scenarios: []dto.ScenarioDTO{{ID: 1, Name: "Plan A"}, {ID: 2, Name: "Plan B"}},
			ComparisonMetrics: dto.ComparisonMetricsDTO{
				TotalHours: []float64{240, 180},
			},
			Recommendation: "Scenario 'Plan B' appears most efficient with 180 total hours allocated.",
		},
	}
	handler := newTestScenarioHandler(nil, mockUC)

	reqBody := CompareScenariosRequest{ScenarioIDs: []uint{1, 2}}
	c, w := testutil.NewTestContext(http.MethodPost, "/scenarios/compare", reqBody)

	handler.CompareScenarios(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{1, 2}, mockUC.gotQuery.ScenarioIDs)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestScenarioHandler_CompareScenarios_EmptyIDs(t *testing.T) {
	handler := newTestScenarioHandler(nil, &mockCompareScenariosUC{})

	reqBody := map[string]interface{}{"scenario_ids": []uint{}}
	c, w := testutil.NewTestContext(http.MethodPost, "/scenarios/compare", reqBody)

	handler.CompareScenarios(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScenarioHandler_CompareScenarios_NoneResolve(t *testing.T) {
	mockUC := &mockCompareScenariosUC{err: errors.NewNotFoundError("no valid scenarios found")}
	handler := newTestScenarioHandler(nil, mockUC)

	reqBody := CompareScenariosRequest{ScenarioIDs: []uint{7, 8}}
	c, w := testutil.NewTestContext(http.MethodPost, "/scenarios/compare", reqBody)

	handler.CompareScenarios(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}
