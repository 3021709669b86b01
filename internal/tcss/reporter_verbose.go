package tcss

import (
	"fmt"
	"io"
	"sort"
)

// VerboseReporter prints parse statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs what the parser found across the batch
func (r *VerboseReporter) PrintStatistics(result CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, "Parse Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------")

	fmt.Fprintf(r.w, "Files Scanned:   %d\n", result.FilesScanned)
	if result.FilesSkipped > 0 {
		fmt.Fprintf(r.w, "Files Skipped:   %d\n", result.FilesSkipped)
	}
	fmt.Fprintf(r.w, "Rules:           %d\n", result.Stats.Rules)
	fmt.Fprintf(r.w, "At-Rules:        %d\n", result.Stats.AtRules)
	fmt.Fprintf(r.w, "Declarations:    %d\n", result.Stats.Declarations)
	fmt.Fprintf(r.w, "Recovered:       %d\n", result.Stats.Recovered)
}

// PrintEmbedded shows embedded references by kind
func (r *VerboseReporter) PrintEmbedded(result CheckResult) {
	if len(result.Stats.Embedded) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, "Embedded References", r.useColors))
	fmt.Fprintln(r.w, "-------------------")

	kinds := make([]string, 0, len(result.Stats.Embedded))
	for kind := range result.Stats.Embedded {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(r.w, "%-16s %d\n", kind+":", result.Stats.Embedded[kind])
	}
}
