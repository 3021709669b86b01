// Package cursor holds an immutable position over a mixed sequence of text
// spans and embedded-value references, and the primitive matchers the grammar
// is built from.
//
// A Cursor is a small value. Every matcher returns a new Cursor on success and
// leaves the receiver untouched, so a failed trial needs no explicit rewind.
package cursor

import (
	"strconv"
	"strings"

	"github.com/yacobolo/tcss/internal/ast"
)

// Element is one item of parser input: a text span or an embedded reference.
type Element struct {
	text string
	ref  *ast.Ref
}

// Text returns a text span element.
func Text(s string) Element { return Element{text: s} }

// Embed returns an embedded-value element.
func Embed(r *ast.Ref) Element { return Element{ref: r} }

// Ref returns the embedded reference, or nil for a text span.
func (e Element) Ref() *ast.Ref { return e.ref }

// String returns the span text, or "${id}" for a reference.
func (e Element) String() string {
	if e.ref != nil {
		return refMarker(e.ref)
	}
	return e.text
}

// Input is a normalized parser input: texts[i] is followed by refs[i], and the
// last text has no reference after it. len(texts) == len(refs)+1 always holds.
type Input struct {
	texts  []string
	refs   []*ast.Ref
	starts []int // byte offset of texts[i] counting text only
}

// New normalizes elems. Adjacent text spans are merged and an empty span is
// placed between adjacent references.
func New(elems ...Element) *Input {
	in := &Input{}
	var cur strings.Builder
	for _, e := range elems {
		if e.ref == nil {
			cur.WriteString(e.text)
			continue
		}
		in.texts = append(in.texts, cur.String())
		in.refs = append(in.refs, e.ref)
		cur.Reset()
	}
	in.texts = append(in.texts, cur.String())

	in.starts = make([]int, len(in.texts))
	off := 0
	for i, t := range in.texts {
		in.starts[i] = off
		off += len(t)
	}
	return in
}

// NewString returns the input for a plain text document.
func NewString(s string) *Input { return New(Text(s)) }

// Start returns a cursor at the beginning of the input.
func (in *Input) Start() Cursor { return Cursor{in: in} }

// Segments returns the number of text segments.
func (in *Input) Segments() int { return len(in.texts) }

// Refs returns the embedded references in input order.
func (in *Input) Refs() []*ast.Ref { return in.refs }

func refMarker(r *ast.Ref) string {
	return "${" + strconv.Itoa(r.ID) + "}"
}
