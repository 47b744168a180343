// Package validate holds the input checks shared by the planner, the
// resource linker and the workflow orchestrator.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput is returned (wrapped) for any precondition violation.
// Callers fix their input; it is never retried.
var ErrInvalidInput = errors.New("invalid input")

const (
	MinDaysPerWeek = 1
	MaxDaysPerWeek = 7

	// MaxDailyHours is the longest study day accepted.
	MaxDailyHours = 24.0
)

// Subjects checks that the list is non-empty and that no entry is blank
// after trimming.
func Subjects(subjects []string) error {
	if len(subjects) == 0 {
		return fmt.Errorf("%w: subjects must be a non-empty list", ErrInvalidInput)
	}
	for i, s := range subjects {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: subject at index %d is blank", ErrInvalidInput, i)
		}
	}
	return nil
}

// DailyHours checks that hours is a finite number in (0, MaxDailyHours].
func DailyHours(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return fmt.Errorf("%w: daily hours must be a finite number", ErrInvalidInput)
	}
	if hours <= 0 {
		return fmt.Errorf("%w: daily hours must be positive, got %g", ErrInvalidInput, hours)
	}
	if hours > MaxDailyHours {
		return fmt.Errorf("%w: daily hours must be at most %g, got %g", ErrInvalidInput, MaxDailyHours, hours)
	}
	return nil
}

// DaysPerWeek checks that days is within [MinDaysPerWeek, MaxDaysPerWeek].
func DaysPerWeek(days int) error {
	if days < MinDaysPerWeek || days > MaxDaysPerWeek {
		return fmt.Errorf("%w: days per week must be between %d and %d, got %d",
			ErrInvalidInput, MinDaysPerWeek, MaxDaysPerWeek, days)
	}
	return nil
}

// PlanInputs runs every check a study plan needs, in order, and returns the
// first failure.
func PlanInputs(subjects []string, dailyHours float64, daysPerWeek int) error {
	if err := Subjects(subjects); err != nil {
		return err
	}
	if err := DailyHours(dailyHours); err != nil {
		return err
	}
	return DaysPerWeek(daysPerWeek)
}
