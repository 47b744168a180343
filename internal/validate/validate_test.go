package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjects(t *testing.T) {
	tests := []struct {
		name     string
		subjects []string
		wantErr  bool
	}{
		{"nil", nil, true},
		{"empty", []string{}, true},
		{"blank entry", []string{"Math", "   "}, true},
		{"empty string", []string{""}, true},
		{"valid", []string{"Math", "Physics"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Subjects(tt.subjects)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDailyHours(t *testing.T) {
	assert.ErrorIs(t, DailyHours(0), ErrInvalidInput)
	assert.ErrorIs(t, DailyHours(-1.5), ErrInvalidInput)
	assert.ErrorIs(t, DailyHours(math.NaN()), ErrInvalidInput)
	assert.ErrorIs(t, DailyHours(math.Inf(1)), ErrInvalidInput)
	assert.NoError(t, DailyHours(0.5))
	assert.NoError(t, DailyHours(12))
}

func TestDailyHours_UpperBound(t *testing.T) {
	tests := []struct {
		hours   float64
		wantErr bool
	}{
		{24.0, false},
		{24.01, true},
		{1e15, true},
	}
	for _, tt := range tests {
		err := DailyHours(tt.hours)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidInput, "hours=%g", tt.hours)
			assert.Contains(t, err.Error(), "at most 24")
		} else {
			assert.NoError(t, err, "hours=%g", tt.hours)
		}
	}
}

func TestDaysPerWeek(t *testing.T) {
	assert.ErrorIs(t, DaysPerWeek(0), ErrInvalidInput)
	assert.ErrorIs(t, DaysPerWeek(8), ErrInvalidInput)
	for d := MinDaysPerWeek; d <= MaxDaysPerWeek; d++ {
		assert.NoError(t, DaysPerWeek(d), "days=%d", d)
	}
}

func TestPlanInputs_FirstFailureWins(t *testing.T) {
	err := PlanInputs(nil, 0, 9)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "subjects")

	err = PlanInputs([]string{"Go"}, 0, 9)
	assert.Contains(t, err.Error(), "daily hours")

	err = PlanInputs([]string{"Go"}, 2, 9)
	assert.Contains(t, err.Error(), "days per week")

	assert.NoError(t, PlanInputs([]string{"Go"}, 2, 5))
}
