package tcss

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *CheckResult {
	return &CheckResult{
		Issues: []Issue{{
			FromLinter:  LinterRecover,
			Text:        `unrecognized input skipped: "junk"`,
			Severity:    SeverityWarning,
			SourceLines: []string{"a{junk}"},
			Pos:         IssuePos{Filename: "a.css", Offset: 2, Line: 1, Column: 3},
		}},
		FilesScanned: 2,
		WarningCount: 1,
		Stats: Stats{
			Rules:        4,
			Declarations: 9,
			Recovered:    1,
			Embedded:     map[string]int{"expr": 2, "set": 1},
		},
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag string
		want OutputFormat
	}{
		{flag: "", want: OutputIssues},
		{flag: "issues", want: OutputIssues},
		{flag: "summary", want: OutputSummary},
		{flag: "full", want: OutputFull},
		{flag: "json", want: OutputJSON},
		{flag: "markdown", want: OutputIssues},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag), tt.flag)
	}
}

func TestBuildJSONOutput(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	out := buildJSONOutput(sampleResult(), now)

	assert.Equal(t, "2026-01-02T03:04:05Z", out.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 1, Warnings: 1, FilesScanned: 2}, out.Summary)
	assert.Equal(t, 9, out.Stats.Declarations)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, JSONIssue{
		File:     "a.css",
		Line:     1,
		Column:   3,
		Offset:   2,
		Severity: SeverityWarning,
		Message:  `unrecognized input skipped: "junk"`,
		Linter:   LinterRecover,
		Source:   "a{junk}",
	}, out.Issues[0])
}

func TestWriteOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputJSON, Config{}))

	var decoded JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "1.0", decoded.Version)
	assert.Equal(t, map[string]int{"expr": 2, "set": 1}, decoded.Stats.Embedded)
}

func TestWriteOutputSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputSummary, Config{}))

	out := buf.String()
	assert.Contains(t, out, "Parse Statistics")
	assert.Contains(t, out, "Declarations:    9\n")
	assert.Contains(t, out, "expr:            2\n")
	assert.NotContains(t, out, "a.css:1:3")
}

func TestWriteOutputFull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputFull, Config{PrintLinterName: true}))

	out := buf.String()
	assert.Contains(t, out, "a.css:1:3:")
	assert.Contains(t, out, "(recover)")
	assert.Contains(t, out, "Parse Statistics")
}
