package tcss

// Issue represents a single finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "recover", "parse", "verify"
	Text        string   `json:"Text"`        // "unrecognized input skipped: \"garbage;\""
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/button.css"
	Offset   int    `json:"Offset"`   // byte offset into the file
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 5 (1-based)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names
const (
	LinterRecover = "recover"
	LinterParse   = "parse"
	LinterVerify  = "verify"
)

// Issue message formats
const (
	IssueRecovered = "unrecognized input skipped: %q"
	IssueUnparsed  = "unparsed input: %q"
	IssueTooDeep   = "nesting too deep (limit %d)"
	IssueVerify    = "printed output does not lex cleanly: %s"
)
