package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/tcss/internal/tcss"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [paths...]",
	Short: "Print stylesheets in canonical form",
	Long: `Parse stylesheets and print them back in canonical form.
Without flags the formatted output is written to stdout. Placeholder markers
are kept as written.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runFmt,
}

func init() {
	f := fmtCmd.Flags()
	f.Bool("write", false, "Write the result back to the source files")
	f.BoolP("list", "l", false, "List files whose formatting differs")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(args)
	write := getBool("fmt.write", false)
	list := getBool("fmt.list", false)
	out := cmd.OutOrStdout()

	ctx, cancel := withTimeout(cmd.Context())
	defer cancel()

	files, err := tcss.FormatFiles(ctx, cfg)
	if err != nil {
		return err
	}

	failed := false
	for _, f := range files {
		if f.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", f.Path, f.Err)
			failed = true
			continue
		}
		if list && f.Changed {
			fmt.Fprintln(out, f.Path)
		}
		if write {
			if err := tcss.WriteBack(f); err != nil {
				return err
			}
			if f.Changed {
				logger.Debug("formatted", zap.String("file", f.Path))
			}
		}
		if !write && !list {
			fmt.Fprint(out, f.Output)
		}
	}
	if failed {
		return errCheckFailed
	}
	return nil
}
