package tcss

// Config holds checking and formatting configuration
type Config struct {
	Paths        []string // Files, directories or globs ("styles/**/*.css")
	Placeholders bool     // Split ${kind:name} markers into embedded references (default: true)
	MaxDepth     int      // Nesting cap; 0 = parser default
	Memoize      bool     // Packrat memoization for deeply nested input
	Jobs         int      // Files parsed concurrently; 0 = GOMAXPROCS
	Verbose      bool

	// Check settings
	Strict bool // Warnings fail the run, not only errors
	Verify bool // Lex the printed output and report lexer errors

	// golangci-style reporting
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (recover) suffix (default: true)
	UseColors          bool // Force color output (default: auto-detect)
}

// Stats counts what the parser produced across a batch
type Stats struct {
	Rules        int
	AtRules      int
	Declarations int
	Recovered    int
	Embedded     map[string]int // Embedded references by kind name
}

func (s *Stats) add(o Stats) {
	s.Rules += o.Rules
	s.AtRules += o.AtRules
	s.Declarations += o.Declarations
	s.Recovered += o.Recovered
	for k, v := range o.Embedded {
		if s.Embedded == nil {
			s.Embedded = make(map[string]int)
		}
		s.Embedded[k] += v
	}
}

// CheckResult contains the results of checking a batch of files
type CheckResult struct {
	Issues         []Issue
	FilesScanned   int
	FilesSkipped   int
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits
	Stats          Stats
}

// Failed reports whether the result should fail the run.
func (r *CheckResult) Failed(strict bool) bool {
	if strict {
		return r.ErrorCount+r.WarningCount > 0
	}
	return r.ErrorCount > 0
}

// OutputFormat represents the checker output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows parse statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
