package server

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/outline"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/validate"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/workflow"
)

const (
	detailPlanFailed      = "Failed to generate study plan"
	detailUnexpected      = "An unexpected error occurred"
	detailNoProvider      = "Outline generation is not configured"
	detailOutlineUpstream = "Failed to generate subject outline"
)

// PlanRequest is the POST /plan body.
type PlanRequest struct {
	Subjects    []string `json:"subjects" binding:"required,min=1,max=8,dive,notblank,max=100"`
	Hours       *float64 `json:"hours" binding:"required,gt=0,lte=12"`
	DaysPerWeek *int     `json:"days_per_week,omitempty" binding:"omitempty,min=1,max=7"`
	StartTime   string   `json:"start_time,omitempty" binding:"omitempty,hhmm"`
}

// OutlineRequest is the POST /outline body.
type OutlineRequest struct {
	Subjects []string `json:"subjects" binding:"required,min=1,max=8,dive,notblank,max=100"`
}

// OutlineResponse is the POST /outline reply.
type OutlineResponse struct {
	Outlines map[string]*outline.SubjectOutline `json:"outlines"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func abortDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, errorResponse{Detail: detail})
}

func invalidInput(c *gin.Context, msg string) {
	abortDetail(c, http.StatusUnprocessableEntity, "Invalid input: "+msg)
}

func (s *Server) health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": s.opts.Version})
	}
}

func (s *Server) createPlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body PlanRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			s.logger.Warn("invalid plan request", "err", err)
			invalidInput(c, describeBindError(err))
			return
		}

		in := workflow.Input{
			Subjects:    body.Subjects,
			DailyHours:  *body.Hours,
			DaysPerWeek: workflow.DefaultDaysPerWeek,
			StartTime:   body.StartTime,
		}
		if body.DaysPerWeek != nil {
			in.DaysPerWeek = *body.DaysPerWeek
		}

		s.logger.Info("study plan request",
			"subjects", strings.Join(in.Subjects, ","),
			"hours", in.DailyHours,
			"days", in.DaysPerWeek,
		)

		res, err := s.opts.Planner.Run(c.Request.Context(), in)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, res)
		case errors.Is(err, validate.ErrInvalidInput):
			s.logger.Warn("validation error", "err", err)
			invalidInput(c, strings.TrimPrefix(err.Error(), validate.ErrInvalidInput.Error()+": "))
		case errors.Is(err, workflow.ErrExecutionFailed):
			s.logger.Error("workflow error", "err", err)
			abortDetail(c, http.StatusInternalServerError, detailPlanFailed)
		default:
			s.logger.Error("unexpected error", "err", err)
			abortDetail(c, http.StatusInternalServerError, detailUnexpected)
		}
	}
}

func (s *Server) createOutlines() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.opts.Outlines == nil {
			abortDetail(c, http.StatusServiceUnavailable, detailNoProvider)
			return
		}

		var body OutlineRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			invalidInput(c, describeBindError(err))
			return
		}

		outlines, err := s.generateOutlines(c, uniqueTrimmed(body.Subjects))
		switch {
		case err == nil:
			c.JSON(http.StatusOK, OutlineResponse{Outlines: outlines})
		case errors.Is(err, validate.ErrInvalidInput):
			invalidInput(c, strings.TrimPrefix(err.Error(), validate.ErrInvalidInput.Error()+": "))
		case errors.Is(err, outline.ErrUpstreamGeneration):
			s.logger.Error("outline generation failed", "err", err)
			abortDetail(c, http.StatusBadGateway, detailOutlineUpstream)
		default:
			s.logger.Error("unexpected error", "err", err)
			abortDetail(c, http.StatusInternalServerError, detailUnexpected)
		}
	}
}

// generateOutlines fans out one provider call per subject, bounded by
// OutlineConcurrency. The first failure cancels the rest.
func (s *Server) generateOutlines(c *gin.Context, subjects []string) (map[string]*outline.SubjectOutline, error) {
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.SetLimit(s.opts.OutlineConcurrency)

	var mu sync.Mutex
	out := make(map[string]*outline.SubjectOutline, len(subjects))

	for _, subject := range subjects {
		g.Go(func() error {
			o, err := s.opts.Outlines.Generate(ctx, subject)
			if err != nil {
				return err
			}
			mu.Lock()
			out[subject] = o
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func uniqueTrimmed(subjects []string) []string {
	seen := make(map[string]bool, len(subjects))
	out := make([]string, 0, len(subjects))
	for _, s := range subjects {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
