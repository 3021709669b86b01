package tcss

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/yacobolo/tcss/internal/ast"
	"github.com/yacobolo/tcss/internal/cursor"
)

// markerPattern matches a placeholder: ${name} or ${kind:name}.
var markerPattern = regexp.MustCompile(`\$\{(?:([a-z_]+):)?([A-Za-z_][A-Za-z0-9_.-]*)\}`)

// Source is a file split into text spans and embedded references.
//
// Each marker becomes an *ast.Ref whose Value is the marker text itself, so
// printing a tree reproduces the markers and the output can be checked again.
type Source struct {
	Path     string
	Content  []byte
	Elements []cursor.Element

	// Per text segment: offset counting text only, and offset in Content.
	textStarts []int
	fileStarts []int
}

// NewSource returns a source without placeholder splitting.
func NewSource(path string, content []byte) *Source {
	return &Source{
		Path:       path,
		Content:    content,
		Elements:   []cursor.Element{cursor.Text(string(content))},
		textStarts: []int{0},
		fileStarts: []int{0},
	}
}

// SplitSource splits ${kind:name} markers out of content. A marker without a
// kind is plain and fits every position.
func SplitSource(path string, content []byte) (*Source, error) {
	src := &Source{Path: path, Content: content}
	text := string(content)

	last, textOff := 0, 0
	for i, m := range markerPattern.FindAllStringSubmatchIndex(text, -1) {
		kind := ast.KindPlain
		if m[2] >= 0 {
			k, err := ast.ParseKind(text[m[2]:m[3]])
			if err != nil {
				return nil, fmt.Errorf("%s: offset %d: %w", path, m[0], err)
			}
			kind = k
		}

		span := text[last:m[0]]
		src.addText(span, textOff, last)
		textOff += len(span)

		src.Elements = append(src.Elements, cursor.Embed(&ast.Ref{
			ID:    i + 1,
			Kind:  kind,
			Value: text[m[0]:m[1]],
		}))
		last = m[1]
	}
	src.addText(text[last:], textOff, last)
	return src, nil
}

func (s *Source) addText(span string, textOff, fileOff int) {
	s.Elements = append(s.Elements, cursor.Text(span))
	s.textStarts = append(s.textStarts, textOff)
	s.fileStarts = append(s.fileStarts, fileOff)
}

// Refs returns the embedded references in source order.
func (s *Source) Refs() []*ast.Ref {
	var refs []*ast.Ref
	for _, e := range s.Elements {
		if r := e.Ref(); r != nil {
			refs = append(refs, r)
		}
	}
	return refs
}

// FileOffset maps a parser text offset to a byte offset in Content. Offsets on
// a segment boundary map to the start of the later segment.
func (s *Source) FileOffset(textOff int) int {
	i := sort.Search(len(s.textStarts), func(i int) bool { return s.textStarts[i] > textOff }) - 1
	if i < 0 {
		i = 0
	}
	return s.fileStarts[i] + textOff - s.textStarts[i]
}

// SegmentOffset maps a text offset known to lie in segment seg.
func (s *Source) SegmentOffset(seg, textOff int) int {
	if seg < 0 || seg >= len(s.fileStarts) {
		return s.FileOffset(textOff)
	}
	return s.fileStarts[seg] + textOff - s.textStarts[seg]
}
