package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/tcss/internal/tcss"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Parse stylesheets and report recovered or unparsed input",
	Long: `Parse every stylesheet under the given files, directories or globs.
Skipped input is reported as a warning, input the parser could not consume
as an error. Only errors fail the run unless --strict is set.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("verify", false, "Re-lex the printed output and report lexer errors")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (recover) suffix on issues")
	f.BoolP("watch", "w", false, "Re-run the check when stylesheets change")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(args)
	quiet := getBool("quiet", false)
	format := tcss.DetermineOutputFormat(getString("check.output-format", ""))
	out := cmd.OutOrStdout()
	if quiet {
		out = io.Discard
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		return watchCheck(cmd.Context(), out, cfg, format)
	}

	ctx, cancel := withTimeout(cmd.Context())
	defer cancel()

	result, err := checkOnce(ctx, out, cfg, format)
	if err != nil {
		return err
	}
	if result.Failed(cfg.Strict) {
		return errCheckFailed
	}
	return nil
}

func checkOnce(ctx context.Context, out io.Writer, cfg tcss.Config, format tcss.OutputFormat) (*tcss.CheckResult, error) {
	start := time.Now()
	result, err := tcss.Check(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("check failed: %w", err)
	}
	logger.Debug("check finished",
		zap.Int("files", result.FilesScanned),
		zap.Int("skipped", result.FilesSkipped),
		zap.Int("issues", len(result.Issues)),
		zap.Duration("elapsed", time.Since(start)),
	)
	if err := tcss.WriteOutput(out, result, format, cfg); err != nil {
		return nil, err
	}
	return result, nil
}

// watchCheck runs the check once and again after every batch of stylesheet
// changes until interrupted. A failing check does not stop the loop.
func watchCheck(parent context.Context, out io.Writer, cfg tcss.Config, format tcss.OutputFormat) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := tcss.NewWatcher(cfg.Paths, tcss.DefaultDebounce)
	if err != nil {
		return err
	}
	w.OnError = func(err error) {
		logger.Warn("watch error", zap.Error(err))
	}

	run := func() {
		runCtx, cancel := withTimeout(ctx)
		defer cancel()
		if _, err := checkOnce(runCtx, out, cfg, format); err != nil {
			logger.Error("check failed", zap.Error(err))
		}
	}

	run()
	logger.Info("watching for changes", zap.Strings("paths", cfg.Paths))
	return w.Run(ctx, func(changed []string) {
		logger.Debug("stylesheets changed", zap.Strings("files", changed))
		run()
	})
}

func withTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if d := getDuration("timeout", 5*time.Minute); d > 0 {
		return context.WithTimeout(parent, d)
	}
	return context.WithCancel(parent)
}
