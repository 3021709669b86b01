package cursor

import (
	"strings"

	"github.com/yacobolo/tcss/internal/ast"
)

// Pos is a position in an Input: a text segment and a byte offset into it.
type Pos struct {
	Seg int
	Off int
}

// Less reports whether p comes strictly before q.
func (p Pos) Less(q Pos) bool {
	return p.Seg < q.Seg || (p.Seg == q.Seg && p.Off < q.Off)
}

// Cursor is an immutable position over an Input.
type Cursor struct {
	in  *Input
	pos Pos
}

// Pos returns the cursor position.
func (c Cursor) Pos() Pos { return c.pos }

// Mark returns the current position for a later Rewind.
func (c Cursor) Mark() Pos { return c.pos }

// Rewind returns a cursor over the same input at p.
func (c Cursor) Rewind(p Pos) Cursor { return Cursor{in: c.in, pos: p} }

// Offset returns the byte offset of the cursor counting text spans only.
func (c Cursor) Offset() int {
	return c.in.starts[c.pos.Seg] + c.pos.Off
}

func (c Cursor) rest() string {
	return c.in.texts[c.pos.Seg][c.pos.Off:]
}

func (c Cursor) advance(n int) Cursor {
	return Cursor{in: c.in, pos: Pos{Seg: c.pos.Seg, Off: c.pos.Off + n}}
}

// AtSegmentEnd reports whether the current text span is exhausted.
func (c Cursor) AtSegmentEnd() bool {
	return c.pos.Off >= len(c.in.texts[c.pos.Seg])
}

// AtEnd reports whether the whole input is consumed.
func (c Cursor) AtEnd() bool {
	return c.pos.Seg == len(c.in.texts)-1 && c.AtSegmentEnd()
}

// Literal matches tok at the cursor.
func (c Cursor) Literal(tok string) (Cursor, bool) {
	if !strings.HasPrefix(c.rest(), tok) {
		return c, false
	}
	return c.advance(len(tok)), true
}

// Pattern matches a lexical rule at the cursor and returns the matched text.
// A match never crosses into an embedded reference.
func (c Cursor) Pattern(l Lexer) (string, Cursor, bool) {
	rest := c.rest()
	n := l(rest)
	if n < 0 {
		return "", c, false
	}
	return rest[:n], c.advance(n), true
}

// Peek reports whether l would match at the cursor, without consuming.
func (c Cursor) Peek(l Lexer) bool {
	return l(c.rest()) >= 0
}

// Embedded consumes the reference that follows the current text span when the
// span is exhausted and pred accepts the reference.
func (c Cursor) Embedded(pred func(*ast.Ref) bool) (*ast.Ref, Cursor, bool) {
	if !c.AtSegmentEnd() || c.pos.Seg >= len(c.in.refs) {
		return nil, c, false
	}
	r := c.in.refs[c.pos.Seg]
	if !pred(r) {
		return nil, c, false
	}
	return r, Cursor{in: c.in, pos: Pos{Seg: c.pos.Seg + 1}}, true
}

// SkipIgnored skips whitespace and comments in the current text span.
func (c Cursor) SkipIgnored() Cursor {
	if n := Ignored(c.rest()); n > 0 {
		return c.advance(n)
	}
	return c
}

// BlockAhead reports whether a '{' appears before the next ';' or '}' with at
// least one character or reference in between. The scan crosses references,
// which count as opaque content.
func (c Cursor) BlockAhead() bool {
	seen := false
	for seg, off := c.pos.Seg, c.pos.Off; seg < len(c.in.texts); seg, off = seg+1, 0 {
		text := c.in.texts[seg]
		for i := off; i < len(text); i++ {
			switch text[i] {
			case '{':
				return seen
			case ';', '}':
				return false
			}
			seen = true
		}
		if seg < len(c.in.refs) {
			seen = true
		}
	}
	return false
}

// Remaining renders the unconsumed input, references shown as "${id}".
func (c Cursor) Remaining() string {
	var b strings.Builder
	b.WriteString(c.rest())
	for seg := c.pos.Seg; seg < len(c.in.refs); seg++ {
		b.WriteString(refMarker(c.in.refs[seg]))
		b.WriteString(c.in.texts[seg+1])
	}
	return b.String()
}
