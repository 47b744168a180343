// Package planner turns a subject list and an hour budget into a week of
// daily study plans.
package planner

import (
	"math"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/validate"
)

// BlockHours is the longest single session.
const BlockHours = 1.0

// epsilon absorbs float dust left after subtracting blocks.
const epsilon = 1e-9

// Rounding decides how a subject's fractional share of the week becomes a
// whole block count.
type Rounding int

const (
	// RoundHalfEven rounds ties to the even neighbour (2.5 -> 2, 3.5 -> 4).
	RoundHalfEven Rounding = iota
	// RoundHalfUp rounds ties away from zero.
	RoundHalfUp
	// RoundDown truncates.
	RoundDown
)

func (r Rounding) apply(v float64) int {
	switch r {
	case RoundHalfUp:
		return int(math.Round(v))
	case RoundDown:
		return int(math.Floor(v))
	default:
		return int(math.RoundToEven(v))
	}
}

// String returns the policy name.
func (r Rounding) String() string {
	switch r {
	case RoundHalfUp:
		return "half-up"
	case RoundDown:
		return "down"
	default:
		return "half-even"
	}
}

// Allocator builds week plans by rotating subjects through one-hour blocks.
type Allocator struct {
	Rounding Rounding
}

// NewAllocator returns an Allocator using half-even block rounding.
func NewAllocator() *Allocator {
	return &Allocator{Rounding: RoundHalfEven}
}

// BlocksPerSubject returns each subject's target block count for the week,
// never less than one.
func (a *Allocator) BlocksPerSubject(subjects int, dailyHours float64, daysPerWeek int) int {
	if subjects <= 0 {
		return 1
	}
	total := dailyHours * float64(daysPerWeek)
	return max(1, a.Rounding.apply(total/float64(subjects)))
}

// rotationPool repeats each subject blocks times in input order, so the
// pool for {A, B} with two blocks is A A B B.
func rotationPool(subjects []string, blocks int) []string {
	pool := make([]string, 0, len(subjects)*blocks)
	for _, s := range subjects {
		for i := 0; i < blocks; i++ {
			pool = append(pool, s)
		}
	}
	if len(pool) == 0 {
		return subjects
	}
	return pool
}

// Generate returns exactly daysPerWeek daily plans. Each day is filled with
// blocks of min(BlockHours, remaining) drawn cyclically from the rotation
// pool, so the sessions of a day always sum to dailyHours. Every day gets at
// least one session however small dailyHours is.
//
// The result depends on subject order.
func (a *Allocator) Generate(subjects []string, dailyHours float64, daysPerWeek int) ([]DailyPlan, error) {
	if err := validate.PlanInputs(subjects, dailyHours, daysPerWeek); err != nil {
		return nil, err
	}

	blocks := a.BlocksPerSubject(len(subjects), dailyHours, daysPerWeek)
	pool := rotationPool(subjects, blocks)

	occurrences := make(map[string]int, len(subjects))
	cursor := 0

	plans := make([]DailyPlan, 0, daysPerWeek)
	for day := 0; day < daysPerWeek; day++ {
		var sessions []StudySession
		remaining := dailyHours

		for len(sessions) == 0 || remaining > epsilon {
			subject := pool[cursor%len(pool)]
			cursor++

			duration := math.Min(BlockHours, remaining)
			phase := PhaseFor(occurrences[subject], blocks, day, daysPerWeek)
			occurrences[subject]++

			sessions = append(sessions, StudySession{
				Subject:       subject,
				SessionType:   phase,
				DurationHours: duration,
				Notes:         NotesFor(subject, phase),
			})
			remaining -= duration
		}

		plans = append(plans, DailyPlan{
			Day:        DayName(day),
			TotalHours: dailyHours,
			Sessions:   sessions,
		})
	}

	return plans, nil
}

var defaultAllocator = NewAllocator()

// GenerateStudyPlan builds a week plan with the default allocator.
func GenerateStudyPlan(subjects []string, dailyHours float64, daysPerWeek int) ([]DailyPlan, error) {
	return defaultAllocator.Generate(subjects, dailyHours, daysPerWeek)
}
