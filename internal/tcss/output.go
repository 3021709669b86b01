package tcss

import (
	"fmt"
	"io"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown or empty values fall back to issues, like golangci-lint.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the check result in the given format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, cfg Config) error {
	switch format {
	case OutputSummary:
		verbose := NewVerboseReporter(w, shouldUseColors(cfg))
		verbose.PrintStatistics(*result)
		verbose.PrintEmbedded(*result)

	case OutputFull:
		reporter := NewReporter(w, cfg)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verbose := NewVerboseReporter(w, reporter.UseColors())
		verbose.PrintStatistics(*result)
		verbose.PrintEmbedded(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	default:
		reporter := NewReporter(w, cfg)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}
