package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/llm"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/logger"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/outline"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/render"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/store"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Generate concept and practice outlines with the configured LLM",
	Example: `  studyplan outline -s "Go, Rust"
  GROQ_API_KEY=... studyplan outline -s Biology -o biology.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("subjects")
		output, _ := cmd.Flags().GetString("output")

		subjects := splitSubjects(raw)
		if len(subjects) == 0 {
			return errors.New("at least one subject is required")
		}

		gen, cleanup, err := openOutlineGenerator(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		outlines, err := gen.GenerateAll(cmd.Context(), subjects)
		if err != nil {
			return fmt.Errorf("generate outlines: %w", err)
		}

		render.Outlines(cmd.OutOrStdout(), outlines)

		if output != "" {
			saveJSON(cmd, output, outlines)
		}
		return nil
	},
}

// openOutlineGenerator opens the call ledger and builds an outline generator
// on the provider resolved from the environment. cleanup closes the ledger.
func openOutlineGenerator(ctx context.Context, cmd *cobra.Command) (*outline.Generator, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	provider, llmCfg, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), logger.Get())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	outlineCfg := outline.DefaultConfig()
	outlineCfg.Timeout = llmCfg.Timeout
	logger.Debug("outline generator ready", "provider", llmCfg.Provider, "model", llmCfg.ModelName())

	return outline.NewGenerator(provider, outlineCfg), func() { st.Close() }, nil
}

// saveJSON writes v as indented JSON. Failure is a warning, not an error.
func saveJSON(cmd *cobra.Command, path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err == nil {
		err = os.WriteFile(path, append(data, '\n'), 0o644)
	}
	if err != nil {
		logger.Warn("could not save output", "path", path, "err", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not save to %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved to: %s\n", path)
}

func init() {
	outlineCmd.Flags().StringP("subjects", "s", "", "Comma-separated list of subjects (required)")
	outlineCmd.Flags().StringP("output", "o", "", "Save outlines as JSON to this file")
	_ = outlineCmd.MarkFlagRequired("subjects")
}
