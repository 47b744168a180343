package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/config"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/logger"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/store"
)

// cfg is loaded once per invocation by the root pre-run hook.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "studyplan",
	Short: "Weekly study planner",
	Long: "studyplan builds a weekly study schedule with resource links for a set of subjects,\n" +
		"serves it over HTTP, and can ask an LLM for per-subject concept outlines.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYPLAN_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides STUDYPLAN_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this rotating file (overrides STUDYPLAN_LOG_FILE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and initializes the global logger. Flags win over
// the environment.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}

	if err := logger.Init(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured DBPath (STUDYPLAN_DB, .env included), then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// splitSubjects parses a comma-separated subject list, dropping blanks.
func splitSubjects(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
