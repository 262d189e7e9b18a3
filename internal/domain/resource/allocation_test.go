package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestNewAllocation_Validation(t *testing.T) {
	tests := []struct {
		name       string
		resourceID uint
		projectID  uint
		hours      float64
		wantErr    string
	}{
		{"missing resource", 0, 1, 10, "resource ID is required"},
		{"missing project", 1, 0, 10, "project ID is required"},
		{"negative hours", 1, 1, -1, "allocated hours cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc, err := NewAllocation(tt.resourceID, tt.projectID, tt.hours, nil, nil)
			assert.Nil(t, alloc)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestNewAllocation_ZeroHoursAllowed(t *testing.T) {
	alloc, err := NewAllocation(1, 2, 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, alloc.AllocatedHours())
}

func TestAllocation_Overlaps(t *testing.T) {
	tests := []struct {
		name         string
		start1, end1 string
		start2, end2 string
		want         bool
	}{
		{"disjoint ranges", "2026-01-01", "2026-01-05", "2026-01-10", "2026-01-20", false},
		{"contained range", "2026-01-01", "2026-01-31", "2026-01-10", "2026-01-20", true},
		{"partial overlap", "2026-01-01", "2026-01-15", "2026-01-10", "2026-01-20", true},
		{"touching boundary counts as overlap", "2026-01-01", "2026-01-10", "2026-01-10", "2026-01-20", true},
		{"same range", "2026-01-01", "2026-01-10", "2026-01-01", "2026-01-10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAllocation(1, 1, 40, date(tt.start1), date(tt.end1))
			require.NoError(t, err)
			b, err := NewAllocation(1, 2, 40, date(tt.start2), date(tt.end2))
			require.NoError(t, err)

			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a))
		})
	}
}

func TestAllocation_Overlaps_MissingDates(t *testing.T) {
	dated, err := NewAllocation(1, 1, 40, date("2026-01-01"), date("2026-01-10"))
	require.NoError(t, err)
	undated, err := NewAllocation(1, 2, 40, nil, nil)
	require.NoError(t, err)
	halfDated, err := NewAllocation(1, 3, 40, date("2026-01-05"), nil)
	require.NoError(t, err)

	assert.False(t, dated.Overlaps(undated))
	assert.False(t, undated.Overlaps(dated))
	assert.False(t, dated.Overlaps(halfDated))
}
