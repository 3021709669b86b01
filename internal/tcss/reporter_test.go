package tcss

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  a{color:red;;garbage}",
			column:     16,
			want:       "               ^", // 15 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\tcolor: red",
			column:     5,
			want:       "\t\t  ^",
		},
		{
			name:       "multibyte prefix",
			sourceLine: `content:"é";x`,
			column:     13,
			want:       "            ^",
		},
		{
			name:       "start of line",
			sourceLine: "}",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func plainReporter(buf *bytes.Buffer) *Reporter {
	return &Reporter{w: buf, printLines: true, printLinterName: true}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	plainReporter(&buf).PrintIssues([]Issue{{
		FromLinter:  LinterRecover,
		Text:        `unrecognized input skipped: "garbage;"`,
		Severity:    SeverityWarning,
		SourceLines: []string{"a{color:red;;garbage;;}"},
		Pos:         IssuePos{Filename: "a.css", Offset: 13, Line: 1, Column: 14},
	}})

	assert.Equal(t,
		"a.css:1:14: unrecognized input skipped: \"garbage;\" (recover)\n"+
			"\ta{color:red;;garbage;;}\n"+
			"\t             ^\n",
		buf.String())
}

func TestPrintIssuesWithoutLines(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}
	r.PrintIssues([]Issue{{
		FromLinter:  LinterParse,
		Text:        `unparsed input: "}"`,
		Severity:    SeverityError,
		SourceLines: []string{"}"},
		Pos:         IssuePos{Filename: "b.css", Line: 2, Column: 1},
	}})
	assert.Equal(t, "b.css:2:1: unparsed input: \"}\"\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result CheckResult
		want   string
	}{
		{
			name:   "clean",
			result: CheckResult{FilesScanned: 1},
			want:   "\n0 issues:\n1 file clean\n",
		},
		{
			name: "warnings only",
			result: CheckResult{
				Issues:       []Issue{{FromLinter: LinterRecover, Severity: SeverityWarning}},
				WarningCount: 1,
			},
			want: "\n1 issue:\n* recover: 1\n",
		},
		{
			name: "mixed and truncated",
			result: CheckResult{
				Issues: []Issue{
					{FromLinter: LinterRecover, Severity: SeverityWarning},
					{FromLinter: LinterParse, Severity: SeverityError},
				},
				ErrorCount:     1,
				WarningCount:   1,
				TruncatedCount: 3,
			},
			want: "\n2 issues (1 error, 1 warning, 3 issues truncated):\n* parse: 1\n* recover: 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			plainReporter(&buf).PrintSummary(tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestShouldUseColors(t *testing.T) {
	assert.True(t, shouldUseColors(Config{UseColors: true}))

	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "1")
	assert.False(t, shouldUseColors(Config{}))
}

func TestRenderStyle(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleError, "plain", false))
}
