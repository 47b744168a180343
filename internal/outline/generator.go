// Package outline asks a text-completion provider for a concept and
// practice-task outline per subject. It is independent of plan generation.
package outline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/llm"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/validate"
)

// Generator produces subject outlines through an llm.Provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates an outline generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate returns the outline for one subject. A blank or over-long subject
// is an input error; every provider, parse or schema failure is an
// *UpstreamError.
func (g *Generator) Generate(ctx context.Context, subject string) (*SubjectOutline, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, fmt.Errorf("%w: subject must not be blank", validate.ErrInvalidInput)
	}
	if len([]rune(subject)) > MaxSubjectLength {
		return nil, fmt.Errorf("%w: subject must be at most %d characters", validate.ErrInvalidInput, MaxSubjectLength)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeOutline)
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	req := llm.UserPrompt(outlineSystemPrompt, buildOutlineUserMessage(subject))
	req.Schema = OutlineSchema
	req.MaxTokens = g.cfg.MaxTokens
	req.Temperature = g.cfg.Temperature

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &UpstreamError{Subject: subject, Err: err}
	}

	var out SubjectOutline
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &UpstreamError{
			Subject: subject,
			Err:     &llm.ErrInvalidResponse{Content: resp.Content, Err: err},
		}
	}

	// Keyed by what the caller asked for, not the model's spelling.
	out.Subject = subject
	if out.Concepts == nil {
		out.Concepts = []string{}
	}
	if out.PracticeTasks == nil {
		out.PracticeTasks = []string{}
	}
	return &out, nil
}

// GenerateAll generates outlines one subject at a time, skipping blank
// entries. Subjects are keyed by their trimmed form. The first failure
// aborts the run.
func (g *Generator) GenerateAll(ctx context.Context, subjects []string) (map[string]*SubjectOutline, error) {
	out := make(map[string]*SubjectOutline, len(subjects))
	for _, s := range subjects {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, done := out[s]; done {
			continue
		}
		o, err := g.Generate(ctx, s)
		if err != nil {
			return nil, err
		}
		out[s] = o
	}
	return out, nil
}
