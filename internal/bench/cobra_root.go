package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"inferd/pkg/types"
)

// BuildRootCmd constructs the benchctl command tree on top of env defaults.
func BuildRootCmd(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "benchctl",
		Short:         "Sequential latency harness for an inferd instance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> Config
	root.PersistentFlags().StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Base URL of the inferd instance (defaults BENCH_BASE_URL)")
	root.PersistentFlags().IntVar(&cfg.Requests, "requests", cfg.Requests, "Sequential calls per endpoint (defaults BENCH_REQUESTS or 100)")
	root.PersistentFlags().StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "Directory for result JSON files (defaults BENCH_OUT_DIR)")
	root.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-request HTTP timeout")
	root.PersistentFlags().StringVar(&cfg.LogLvl, "log-level", cfg.LogLvl, "Log level: debug|info|warn|error (defaults BENCH_LOG_LEVEL or info)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		SetLogLevel(cfg.LogLvl)
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a latency test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("run requires a subcommand: text|image|all")
		},
	}

	runText := &cobra.Command{
		Use:     "text",
		Short:   "Drive /generate_text sequentially and persist statistics",
		Example: "  benchctl run text --requests 100 --prompt \"Once upon a time\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOne(cmd.Context(), cfg, TagText)
		},
	}
	runText.Flags().StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "Prompt sent on every call (defaults BENCH_PROMPT)")
	runText.Flags().IntVar(&cfg.MaxLength, "max-length", cfg.MaxLength, "max_length sent on every call (defaults BENCH_MAX_LENGTH or 50)")

	runImage := &cobra.Command{
		Use:     "image",
		Short:   "Drive /process_image sequentially and persist statistics",
		Example: "  benchctl run image --requests 100",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOne(cmd.Context(), cfg, TagImage)
		},
	}

	runAll := &cobra.Command{
		Use:   "all",
		Short: "Text run followed by image run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runOne(cmd.Context(), cfg, TagText); err != nil {
				return err
			}
			return runOne(cmd.Context(), cfg, TagImage)
		},
	}

	runCmd.AddCommand(runText, runImage, runAll)
	root.AddCommand(runCmd)
	return root
}

// runOne executes a single-endpoint run end to end: health check, sequential
// calls, aggregation, persistence.
func runOne(ctx context.Context, cfg *Config, tag string) error {
	r := NewRunner(cfg.BaseURL, cfg.Requests, cfg.Timeout)
	if err := r.CheckHealth(ctx); err != nil {
		return err
	}
	info("testing %s endpoint with %d sequential requests against %s", tag, cfg.Requests, cfg.BaseURL)

	var (
		report types.RunReport
		err    error
	)
	switch tag {
	case TagText:
		report, err = r.RunText(ctx, cfg.Prompt, cfg.MaxLength)
	case TagImage:
		report, err = r.RunImage(ctx)
	default:
		return fmt.Errorf("unknown endpoint tag %q", tag)
	}
	if err != nil {
		errl("%s run aborted: %v", tag, err)
		return err
	}
	path, err := WriteReport(cfg.OutDir, tag, report, time.Now())
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	PrintSummary(tag, report.Statistics)
	info("results written to %s", path)
	return nil
}
