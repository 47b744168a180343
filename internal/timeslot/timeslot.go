// Package timeslot lays out fixed-length study slots on a wall clock with
// breaks between them.
package timeslot

import (
	"fmt"
	"math"
	"time"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/validate"
)

const (
	DefaultSlotMinutes  = 60
	DefaultBreakMinutes = 10

	clockLayout = "15:04"
)

// Slot is one study block on the clock. Breaks are not slots.
type Slot struct {
	Start         string  `json:"start"`
	End           string  `json:"end"`
	DurationHours float64 `json:"duration_hours"`
}

// ParseClock parses an "HH:MM" 24-hour wall-clock time.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start time %q must be HH:MM", validate.ErrInvalidInput, s)
	}
	return t, nil
}

// Build returns floor(dailyHours*60/slotMinutes) slots starting at start,
// each followed by breakMinutes of rest except the last. A zero slot count
// yields an empty result, not an error. dailyHours above
// validate.MaxDailyHours is rejected. Times wrap past midnight.
func Build(start string, dailyHours float64, slotMinutes, breakMinutes int) ([]Slot, error) {
	if breakMinutes < 0 {
		return nil, fmt.Errorf("%w: break minutes must not be negative", validate.ErrInvalidInput)
	}
	if dailyHours > validate.MaxDailyHours {
		return nil, fmt.Errorf("%w: daily hours must be at most %g, got %g",
			validate.ErrInvalidInput, validate.MaxDailyHours, dailyHours)
	}
	if slotMinutes <= 0 || dailyHours <= 0 || math.IsNaN(dailyHours) || math.IsInf(dailyHours, 0) {
		return []Slot{}, nil
	}

	count := int(math.Floor(dailyHours * 60 / float64(slotMinutes)))
	if count <= 0 {
		return []Slot{}, nil
	}

	cur, err := ParseClock(start)
	if err != nil {
		return nil, err
	}

	slotLen := time.Duration(slotMinutes) * time.Minute
	gap := time.Duration(breakMinutes) * time.Minute
	hours := float64(slotMinutes) / 60.0

	slots := make([]Slot, 0, count)
	for i := 0; i < count; i++ {
		end := cur.Add(slotLen)
		slots = append(slots, Slot{
			Start:         cur.Format(clockLayout),
			End:           end.Format(clockLayout),
			DurationHours: hours,
		})
		cur = end.Add(gap)
	}
	return slots, nil
}

// BuildDefault is Build with one-hour slots and ten-minute breaks.
func BuildDefault(start string, dailyHours float64) ([]Slot, error) {
	return Build(start, dailyHours, DefaultSlotMinutes, DefaultBreakMinutes)
}
