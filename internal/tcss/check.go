package tcss

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"

	"github.com/yacobolo/tcss/internal/ast"
	"github.com/yacobolo/tcss/internal/grammar"
	"github.com/yacobolo/tcss/internal/printer"
)

// maxQuoted bounds source text quoted in issue messages.
const maxQuoted = 40

// Parsed is one file after parsing. Err holds a read, split or parse failure;
// Root is nil when Err is set.
type Parsed struct {
	Path   string
	Source *Source
	Root   *ast.Node
	Err    error
}

// LoadSource reads path, splitting placeholder markers when asked to.
func LoadSource(path string, placeholders bool) (*Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !placeholders {
		return NewSource(path, content), nil
	}
	return SplitSource(path, content)
}

// ParseSource parses src with the parser settings in cfg.
func ParseSource(src *Source, cfg Config) (*ast.Node, error) {
	opts := grammar.Options{MaxDepth: cfg.MaxDepth, Memoize: cfg.Memoize}
	return grammar.ParseWith(opts, src.Elements...)
}

// ParseFile loads and parses one file.
func ParseFile(path string, cfg Config) Parsed {
	src, err := LoadSource(path, cfg.Placeholders)
	if err != nil {
		return Parsed{Path: path, Err: err}
	}
	root, err := ParseSource(src, cfg)
	return Parsed{Path: path, Source: src, Root: root, Err: err}
}

// CheckParsed turns a parsed file into issues and statistics. Recovered
// fragments are warnings; anything that stopped the parse is an error.
func CheckParsed(p Parsed, cfg Config) ([]Issue, Stats) {
	if p.Source == nil {
		return []Issue{{
			FromLinter: LinterParse,
			Text:       p.Err.Error(),
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: p.Path},
		}}, Stats{}
	}
	if p.Err != nil {
		return []Issue{parseErrorIssue(p.Source, p.Err, cfg)}, Stats{}
	}

	var issues []Issue
	for _, n := range ast.FindAll(p.Root, ast.TagRecover) {
		issues = append(issues, Issue{
			FromLinter: LinterRecover,
			Text:       fmt.Sprintf(IssueRecovered, quote(rawText(n))),
			Severity:   SeverityWarning,
		}.at(p.Source, p.Source.FileOffset(n.Offset)))
	}

	if cfg.Verify {
		printed := printer.String(p.Root)
		for _, prob := range VerifyOutput(printed) {
			issues = append(issues, verifyIssue(p.Path, printed, prob))
		}
	}

	return issues, CountNodes(p.Root)
}

func parseErrorIssue(src *Source, err error, cfg Config) Issue {
	issue := Issue{FromLinter: LinterParse, Severity: SeverityError}

	var unparsed *grammar.UnparsedError
	var depth *grammar.DepthError
	switch {
	case errors.As(err, &unparsed):
		issue.Text = fmt.Sprintf(IssueUnparsed, quote(unparsed.Remaining))
		return issue.at(src, src.SegmentOffset(unparsed.Segment, unparsed.Offset))
	case errors.As(err, &depth):
		limit := cfg.MaxDepth
		if limit <= 0 {
			limit = grammar.DefaultMaxDepth
		}
		issue.Text = fmt.Sprintf(IssueTooDeep, limit)
		return issue.at(src, src.FileOffset(depth.Offset))
	default:
		issue.Text = err.Error()
		return issue.at(src, 0)
	}
}

func verifyIssue(path, printed string, prob LexProblem) Issue {
	line, col, _ := parse.Position(strings.NewReader(printed), prob.Offset)
	return Issue{
		FromLinter:  LinterVerify,
		Text:        fmt.Sprintf(IssueVerify, prob.Message),
		Severity:    SeverityError,
		SourceLines: lineAt([]byte(printed), line),
		Pos:         IssuePos{Filename: path + " (printed)", Offset: prob.Offset, Line: line, Column: col},
	}
}

// at fills in the position of the issue from a byte offset into src.
func (i Issue) at(src *Source, off int) Issue {
	line, col, _ := parse.Position(bytes.NewReader(src.Content), off)
	i.Pos = IssuePos{Filename: src.Path, Offset: off, Line: line, Column: col}
	i.SourceLines = lineAt(src.Content, line)
	return i
}

// lineAt returns the 1-based line of content, without its line ending.
func lineAt(content []byte, line int) []string {
	for i := 1; len(content) > 0; i++ {
		end := bytes.IndexByte(content, '\n')
		cur := content
		if end >= 0 {
			cur = content[:end]
		}
		if i == line {
			return []string{strings.TrimRight(string(cur), "\r")}
		}
		if end < 0 {
			break
		}
		content = content[end+1:]
	}
	return nil
}

// rawText is the source text a recovered node absorbed.
func rawText(n *ast.Node) string {
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(printer.String(c))
	}
	return b.String()
}

// quote trims s to its first line and at most maxQuoted bytes, cut on a rune
// boundary, for a message.
func quote(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i] + "..."
	}
	if len(s) > maxQuoted {
		n := maxQuoted
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n] + "..."
	}
	return s
}

// CountNodes tallies the productions of interest in a tree.
func CountNodes(root *ast.Node) Stats {
	var s Stats
	ast.Walk(root, func(c ast.Child) bool {
		switch c := c.(type) {
		case *ast.Node:
			switch c.Tag {
			case ast.TagRule:
				if c.First(ast.TagAtRule) != nil {
					s.AtRules++
				} else {
					s.Rules++
				}
			case ast.TagDeclaration:
				s.Declarations++
			case ast.TagRecover:
				s.Recovered++
			}
		case *ast.Ref:
			if s.Embedded == nil {
				s.Embedded = make(map[string]int)
			}
			s.Embedded[c.Kind.String()]++
		}
		return true
	})
	return s
}
