package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/logger"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := cfg.Addr
		if v, _ := cmd.Flags().GetString("addr"); v != "" {
			addr = v
		}

		opts := server.Options{
			Addr:               addr,
			Version:            version,
			Logger:             logger.Get(),
			OutlineConcurrency: cfg.OutlineConcurrency,
		}

		gen, cleanup, err := openOutlineGenerator(ctx, cmd)
		if err != nil {
			logger.Warn("outline generation unavailable", "err", err)
		} else {
			defer cleanup()
			opts.Outlines = gen
		}

		return server.New(opts).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from STUDYPLAN_ADDR or :8000)")
}
