package grammar

import (
	"fmt"
	"unicode/utf8"

	"github.com/yacobolo/tcss/internal/ast"
	"github.com/yacobolo/tcss/internal/comb"
	"github.com/yacobolo/tcss/internal/cursor"
)

// ErrTooDeep is returned when input nests deeper than Options.MaxDepth allows.
var ErrTooDeep = comb.ErrTooDeep

// DefaultMaxDepth is the nesting cap used when Options.MaxDepth is zero.
const DefaultMaxDepth = comb.DefaultMaxDepth

// Options tunes a parse. The zero value is ready to use.
type Options struct {
	// MaxDepth caps production nesting; 0 means DefaultMaxDepth.
	MaxDepth int
	// Memoize caches production results by position, bounding the cost of
	// alternation retrial on deeply nested input.
	Memoize bool
}

// DepthError reports where a parse hit the nesting cap. It matches ErrTooDeep
// under errors.Is.
type DepthError struct {
	Offset int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, ErrTooDeep)
}

func (e *DepthError) Unwrap() error { return ErrTooDeep }

// UnparsedError reports input left over after the root production. It is the
// only failure of a set parse: malformed fragments inside a set are recovered.
type UnparsedError struct {
	// Offset is the byte offset of the remainder, counting text spans only.
	Offset int
	// Segment is the index of the text segment the remainder starts in.
	Segment int
	// Remaining is the unconsumed input, embedded references shown as ${id}.
	Remaining string
}

func (e *UnparsedError) Error() string {
	return fmt.Sprintf("unparsed input at offset %d: %q", e.Offset, clip(e.Remaining, 40))
}

// clip cuts s to at most n bytes on a rune boundary, marking the cut.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

// Parse parses elems as a declaration list (a set) and returns its root node.
func Parse(elems ...cursor.Element) (*ast.Node, error) {
	return ParseWith(Options{}, elems...)
}

// ParseString parses a plain text document.
func ParseString(s string) (*ast.Node, error) {
	return ParseWith(Options{}, cursor.Text(s))
}

// ParseWith parses elems as a set using opts.
func ParseWith(opts Options, elems ...cursor.Element) (*ast.Node, error) {
	return parse(opts, css.set, cursor.New(elems...))
}

// ParseAs parses elems as a single production. Supported entry points are
// set, selector, declaration and expr.
func ParseAs(tag ast.Tag, elems ...cursor.Element) (*ast.Node, error) {
	var p comb.Parser
	switch tag {
	case ast.TagSet:
		p = css.set
	case ast.TagSelector:
		p = css.selector
	case ast.TagDeclaration:
		p = css.declaration
	case ast.TagExpr:
		p = css.expr
	default:
		return nil, fmt.Errorf("%s is not an entry production", tag)
	}
	return parse(Options{}, p, cursor.New(elems...))
}

func parse(opts Options, p comb.Parser, in *cursor.Input) (*ast.Node, error) {
	st := comb.NewState(opts.MaxDepth, opts.Memoize)
	start := in.Start().SkipIgnored()

	res, ok := p(st, start)
	if st.Err() != nil {
		return nil, &DepthError{Offset: st.ErrOffset()}
	}
	if !ok {
		return nil, unparsed(start)
	}
	if end := res.Next.SkipIgnored(); !end.AtEnd() {
		return nil, unparsed(end)
	}
	return res.Children[0].(*ast.Node), nil
}

func unparsed(c cursor.Cursor) *UnparsedError {
	return &UnparsedError{
		Offset:    c.Offset(),
		Segment:   c.Pos().Seg,
		Remaining: c.Remaining(),
	}
}
