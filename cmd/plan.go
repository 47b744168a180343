package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/client"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/logger"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/render"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/workflow"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a weekly study plan",
	Long: "Generate a weekly study plan by calling a running studyplan service,\n" +
		"or in-process with --local.",
	Example: `  studyplan plan -s "Mathematics, Physics" --hours 3 --days 6
  studyplan plan -s "Python, JavaScript, React" --hours 2 --days 5 -o study_plan.json
  studyplan plan -s Biology --hours 4 --start 07:00 --local`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("subjects")
		hours, _ := cmd.Flags().GetFloat64("hours")
		days, _ := cmd.Flags().GetInt("days")
		start, _ := cmd.Flags().GetString("start")
		output, _ := cmd.Flags().GetString("output")
		local, _ := cmd.Flags().GetBool("local")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		subjects := splitSubjects(raw)
		if len(subjects) == 0 {
			return errors.New("at least one subject is required")
		}

		apiURL, _ := cmd.Flags().GetString("api-url")
		if apiURL == "" {
			apiURL = cfg.APIURL
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Fetching study plan for: %s\n", strings.Join(subjects, ", "))
		fmt.Fprintf(out, "   Daily hours: %g | Days/week: %d\n\n", hours, days)

		in := workflow.Input{
			Subjects:    subjects,
			DailyHours:  hours,
			DaysPerWeek: days,
			StartTime:   start,
		}

		var res *workflow.Result
		var err error
		if local {
			res, err = workflow.New(logger.Get()).Run(cmd.Context(), in)
		} else {
			res, err = fetchPlan(cmd.Context(), client.New(apiURL, client.WithTimeout(timeout)), in)
		}
		if err != nil {
			return describePlanError(err)
		}

		render.Result(out, res)

		if output != "" {
			saveJSON(cmd, output, res)
		}
		return nil
	},
}

func fetchPlan(ctx context.Context, c *client.Client, in workflow.Input) (*workflow.Result, error) {
	logger.Debug("requesting plan", "api", c.BaseURL(), "subjects", len(in.Subjects))
	return c.Plan(ctx, client.PlanRequest{
		Subjects:    in.Subjects,
		Hours:       in.DailyHours,
		DaysPerWeek: in.DaysPerWeek,
		StartTime:   in.StartTime,
	})
}

// describePlanError adds a hint for the failures a user can act on.
func describePlanError(err error) error {
	var verr *client.ValidationError
	switch {
	case errors.As(err, &verr):
		return errors.New(verr.Detail)
	case errors.Is(err, client.ErrConnection):
		return fmt.Errorf("%w\nMake sure the service is running with: studyplan serve", err)
	case errors.Is(err, client.ErrTimeout):
		return fmt.Errorf("%w: the service took too long to respond", err)
	default:
		return err
	}
}

func init() {
	planCmd.Flags().StringP("subjects", "s", "", "Comma-separated list of subjects (required)")
	planCmd.Flags().Float64("hours", 3, "Daily study hours")
	planCmd.Flags().Int("days", workflow.DefaultDaysPerWeek, "Days per week to study")
	planCmd.Flags().String("start", "", "Daily start time (HH:MM) for a clock timetable")
	planCmd.Flags().StringP("output", "o", "", "Save plan as JSON to this file")
	planCmd.Flags().String("api-url", "", "Service URL (default from STUDYPLAN_API_URL or http://localhost:8000)")
	planCmd.Flags().Duration("timeout", client.DefaultTimeout, "Request timeout")
	planCmd.Flags().Bool("local", false, "Run the planner in-process instead of calling the service")
	_ = planCmd.MarkFlagRequired("subjects")
}
