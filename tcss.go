// Package tcss parses template CSS: stylesheets with embedded values spliced
// in at selector, property, value and at-rule positions.
//
// # Parsing
//
// Input is a sequence of text spans and embedded references. Each reference
// carries a Kind naming the position it may fill:
//
//	theme := &tcss.Ref{ID: 1, Kind: tcss.KindExpr, Value: "#fff"}
//	root, err := tcss.Parse(
//		tcss.Text(".card{background:"), tcss.Embed(theme), tcss.Text("}"),
//	)
//
// Malformed fragments inside a declaration list are kept as recover nodes;
// input left after the root production is reported as *UnparsedError.
//
// # Printing
//
//	fmt.Println(tcss.Stringify(root))
//
// # Checking files
//
// Check parses files, directories and globs concurrently and reports
// recovered or unparsed input:
//
//	result, err := tcss.Check(ctx, tcss.Config{Paths: []string{"styles"}, Placeholders: true})
//
// # CLI Tool
//
// tcss also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/tcss/cmd/tcss@latest
package tcss

import (
	"context"
	"io"

	"github.com/yacobolo/tcss/internal/ast"
	"github.com/yacobolo/tcss/internal/cursor"
	"github.com/yacobolo/tcss/internal/grammar"
	"github.com/yacobolo/tcss/internal/printer"
	checker "github.com/yacobolo/tcss/internal/tcss"
)

type (
	Node    = ast.Node
	Child   = ast.Child
	Leaf    = ast.Leaf
	Tag     = ast.Tag
	Ref     = ast.Ref
	Kind    = ast.Kind
	Element = cursor.Element

	Options       = grammar.Options
	UnparsedError = grammar.UnparsedError
	DepthError    = grammar.DepthError
	Config        = checker.Config
	CheckResult   = checker.CheckResult
	Issue         = checker.Issue
	OutputFormat  = checker.OutputFormat
	TreeFormat    = checker.TreeFormat
)

// Embedded value kinds.
const (
	KindPlain    = ast.KindPlain
	KindSet      = ast.KindSet
	KindID       = ast.KindID
	KindExpr     = ast.KindExpr
	KindSelector = ast.KindSelector
	KindAtExpr   = ast.KindAtExpr
)

// Node tags.
const (
	TagSet           = ast.TagSet
	TagRule          = ast.TagRule
	TagAtRule        = ast.TagAtRule
	TagAtExpr        = ast.TagAtExpr
	TagAtTerm        = ast.TagAtTerm
	TagAtDeclaration = ast.TagAtDeclaration
	TagSelector      = ast.TagSelector
	TagSelectorTerm  = ast.TagSelectorTerm
	TagCombinator    = ast.TagCombinator
	TagAttrib        = ast.TagAttrib
	TagPseudo        = ast.TagPseudo
	TagPseudoArgs    = ast.TagPseudoArgs
	TagDeclaration   = ast.TagDeclaration
	TagExpr          = ast.TagExpr
	TagTerm          = ast.TagTerm
	TagOperator      = ast.TagOperator
	TagFunc          = ast.TagFunc
	TagID            = ast.TagID
	TagHex           = ast.TagHex
	TagValue         = ast.TagValue
	TagImportant     = ast.TagImportant
	TagRecover       = ast.TagRecover
	TagExtCSS        = ast.TagExtCSS
	TagExtProperty   = ast.TagExtProperty
	TagExtValue      = ast.TagExtValue
	TagExtSelector   = ast.TagExtSelector
	TagExtAt         = ast.TagExtAt
)

// DefaultMaxDepth is the nesting cap used when Options.MaxDepth is zero.
const DefaultMaxDepth = grammar.DefaultMaxDepth

// ErrTooDeep matches a *DepthError under errors.Is.
var ErrTooDeep = grammar.ErrTooDeep

// Text returns a text span element.
func Text(s string) Element { return cursor.Text(s) }

// Embed returns an embedded value element.
func Embed(r *Ref) Element { return cursor.Embed(r) }

// Parse parses elems as a declaration list.
func Parse(elems ...Element) (*Node, error) { return grammar.Parse(elems...) }

// ParseString parses a stylesheet with no embedded values.
func ParseString(s string) (*Node, error) { return grammar.ParseString(s) }

// ParseWith parses elems as a declaration list under opts.
func ParseWith(opts Options, elems ...Element) (*Node, error) {
	return grammar.ParseWith(opts, elems...)
}

// ParseKind maps a kind name such as "expr" to its Kind.
func ParseKind(s string) (Kind, error) { return ast.ParseKind(s) }

// Stringify prints a tree as canonical CSS.
func Stringify(c Child) string { return printer.String(c) }

// Fprint writes the canonical CSS for c to w.
func Fprint(w io.Writer, c Child) error { return printer.Fprint(w, c) }

// Walk visits c and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func Walk(c Child, fn func(Child) bool) { ast.Walk(c, fn) }

// FindAll returns every node under root with the given tag, in document order.
func FindAll(root Child, tag Tag) []*Node { return ast.FindAll(root, tag) }

// Check parses the configured files concurrently and collects issues.
func Check(ctx context.Context, cfg Config) (*CheckResult, error) {
	return checker.Check(ctx, cfg)
}

// WriteOutput writes a check result in the given format.
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, cfg Config) error {
	return checker.WriteOutput(w, result, format, cfg)
}
