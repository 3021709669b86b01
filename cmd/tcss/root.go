package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger carries diagnostics to stderr. Reports go to stdout through the
// reporters, never through the logger.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "tcss",
	Short: "Parser and checker for template CSS",
	Long: `Parse stylesheets that embed template values as ${kind:name} markers.
Reports recovered and unparsed input, prints canonical CSS, and dumps syntax trees.`,
	// Default behavior: run check when no subcommand is given.
	// loadConfig runs here because PreRunE of checkCmd is not triggered
	// when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCheck(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigPath, "Config file path")
	pf.Bool("placeholders", true, "Treat ${kind:name} markers as embedded values")
	pf.Int("max-depth", 0, "Maximum nesting depth (0=parser default)")
	pf.Bool("memoize", false, "Memoize parse results for deeply nested input")
	pf.IntP("jobs", "j", 0, "Files parsed concurrently (0=GOMAXPROCS)")
	pf.Duration("timeout", 5*time.Minute, "Abort after this long (0=no limit)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogger installs a development logger in verbose mode and a
// warnings-only production logger otherwise.
func setupLogger(verbose bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if verbose {
		l, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		l, err = cfg.Build()
	}
	if err != nil {
		return err
	}
	logger = l
	return nil
}
