package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/outline"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/timeslot"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/workflow"
)

func TestResult(t *testing.T) {
	res, err := workflow.Run(context.Background(), workflow.Input{
		Subjects:    []string{"Math", "Physics"},
		DailyHours:  2,
		DaysPerWeek: 2,
		StartTime:   "18:00",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	Result(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "PERSONALIZED STUDY PLAN")
	assert.Contains(t, out, "WEEKLY SCHEDULE")
	assert.Contains(t, out, "MONDAY")
	assert.Contains(t, out, "TUESDAY")
	assert.Contains(t, out, "CONCEPT")
	assert.Contains(t, out, "18:00 - 19:00")
	assert.Contains(t, out, "LEARNING RESOURCES")
	assert.Contains(t, out, res.Resources["Physics"].YouTubeSearch)
	assert.Contains(t, out, "Study plan generated successfully!")
	assert.Less(t, strings.Index(out, "MATH"), strings.Index(out, "PHYSICS"))
}

func TestPlan_Empty(t *testing.T) {
	var buf bytes.Buffer
	Plan(&buf, nil)
	Resources(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestSlots(t *testing.T) {
	slots, err := timeslot.BuildDefault("07:00", 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	Slots(&buf, slots)
	out := buf.String()

	assert.Contains(t, out, "TIME SLOTS")
	assert.Contains(t, out, "07:00 - 08:00")
	assert.Contains(t, out, "08:10 - 09:10")
	assert.Contains(t, out, "09:20 - 10:20")
	assert.Contains(t, out, "(1h)")
}

func TestSlots_None(t *testing.T) {
	var buf bytes.Buffer
	Slots(&buf, nil)
	assert.Contains(t, buf.String(), "No full study slots")
}

func TestOutlines(t *testing.T) {
	var buf bytes.Buffer
	Outlines(&buf, map[string]*outline.SubjectOutline{
		"Go": {
			Subject:       "Go",
			Concepts:      []string{"Variables", "Goroutines"},
			PracticeTasks: []string{},
		},
	})
	out := buf.String()

	assert.Contains(t, out, "GO")
	assert.Contains(t, out, " 1. Variables")
	assert.Contains(t, out, " 2. Goroutines")
	assert.Contains(t, out, "Practice tasks")
	assert.Contains(t, out, "(none)")
}

func TestHours(t *testing.T) {
	assert.Equal(t, "1h", hours(1))
	assert.Equal(t, "0.5h", hours(0.5))
	assert.Equal(t, "2.25h", hours(2.25))
}
