// Package workflow composes the session allocator and the resource linker
// into one request: validate once, plan, link, aggregate.
package workflow

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/planner"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/resources"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/timeslot"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/validate"
)

// DefaultDaysPerWeek is used by callers that leave the day count unset.
const DefaultDaysPerWeek = 6

// Stage names reported in ExecutionError.
const (
	StagePlan      = "plan"
	StageResources = "resources"
	StageTimeSlots = "time_slots"
)

// Input is one planning request.
type Input struct {
	Subjects    []string
	DailyHours  float64
	DaysPerWeek int
	// StartTime is an optional HH:MM clock; when set every day gets time slots.
	StartTime string
}

// Result is the aggregated output of a run.
type Result struct {
	Plan      []planner.DailyPlan                   `json:"plan"`
	Resources map[string]resources.SubjectResources `json:"resources"`
}

// PlanFunc builds the week of sessions.
type PlanFunc func(subjects []string, dailyHours float64, daysPerWeek int) ([]planner.DailyPlan, error)

// LinkFunc builds the per-subject resource links.
type LinkFunc func(subjects []string) (map[string]resources.SubjectResources, error)

// Orchestrator runs the workflow with swappable components.
type Orchestrator struct {
	Plan   PlanFunc
	Link   LinkFunc
	Logger *log.Logger
}

// New returns an Orchestrator wired to the default allocator and linker.
// A nil logger discards output.
func New(logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Orchestrator{
		Plan:   planner.GenerateStudyPlan,
		Link:   resources.Generate,
		Logger: logger,
	}
}

// Run validates in, then plans and links. Validation failures match
// validate.ErrInvalidInput and nothing else runs. Any later failure,
// including a panic inside a component, is an *ExecutionError.
func (o *Orchestrator) Run(ctx context.Context, in Input) (*Result, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.Logger.Info("starting workflow",
		"subjects", strings.Join(in.Subjects, ","),
		"daily_hours", in.DailyHours,
		"days_per_week", in.DaysPerWeek,
	)

	var plan []planner.DailyPlan
	err := runStage(StagePlan, func() (err error) {
		plan, err = o.Plan(in.Subjects, in.DailyHours, in.DaysPerWeek)
		return err
	})
	if err != nil {
		o.Logger.Error("workflow failed", "stage", StagePlan, "err", err)
		return nil, err
	}
	o.Logger.Debug("planner completed", "days", len(plan))

	if in.StartTime != "" {
		err = runStage(StageTimeSlots, func() error {
			return attachTimeSlots(plan, in.StartTime, in.DailyHours)
		})
		if err != nil {
			o.Logger.Error("workflow failed", "stage", StageTimeSlots, "err", err)
			return nil, err
		}
	}

	var links map[string]resources.SubjectResources
	err = runStage(StageResources, func() (err error) {
		links, err = o.Link(in.Subjects)
		return err
	})
	if err != nil {
		o.Logger.Error("workflow failed", "stage", StageResources, "err", err)
		return nil, err
	}
	o.Logger.Debug("resource linker completed", "subjects", len(links))

	o.Logger.Info("workflow completed")
	return &Result{Plan: plan, Resources: links}, nil
}

var defaultOrchestrator = New(nil)

// Run executes the workflow with the default components.
func Run(ctx context.Context, in Input) (*Result, error) {
	return defaultOrchestrator.Run(ctx, in)
}

func validateInput(in Input) error {
	if err := validate.PlanInputs(in.Subjects, in.DailyHours, in.DaysPerWeek); err != nil {
		return err
	}
	if in.StartTime != "" {
		if _, err := timeslot.ParseClock(in.StartTime); err != nil {
			return err
		}
	}
	return nil
}

func attachTimeSlots(plan []planner.DailyPlan, start string, dailyHours float64) error {
	slots, err := timeslot.BuildDefault(start, dailyHours)
	if err != nil {
		return err
	}
	for i := range plan {
		plan[i].TimeSlots = append([]timeslot.Slot(nil), slots...)
	}
	return nil
}

// runStage calls fn and turns an error or a panic into an *ExecutionError.
func runStage(stage string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ExecutionError{Stage: stage, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if err := fn(); err != nil {
		return &ExecutionError{Stage: stage, Err: err}
	}
	return nil
}
