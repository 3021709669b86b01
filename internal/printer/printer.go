// Package printer renders template CSS syntax trees back to text.
//
// Output is structurally faithful rather than byte-identical: whitespace is
// normalized, pseudo-element colons collapse to one, and recovered fragments
// are emitted as comments. Printing a well-formed declaration list and parsing
// the result again yields the same tree shape.
package printer

import (
	"io"
	"strings"

	"github.com/yacobolo/tcss/internal/ast"
)

// Placeholder is printed for an embedded value that is not plain data.
const Placeholder = "/*ext*/"

// String renders c as text.
func String(c ast.Child) string {
	var b strings.Builder
	render(&b, c)
	return b.String()
}

// Fprint renders c to w.
func Fprint(w io.Writer, c ast.Child) error {
	_, err := io.WriteString(w, String(c))
	return err
}

func render(b *strings.Builder, c ast.Child) {
	switch c := c.(type) {
	case ast.Leaf:
		b.WriteString(string(c))
	case *ast.Ref:
		printRef(b, c)
	case *ast.Node:
		if c != nil {
			printNode(b, c)
		}
	}
}

func printRef(b *strings.Builder, r *ast.Ref) {
	switch v := r.Value.(type) {
	case string:
		b.WriteString(v)
	case *ast.Node:
		render(b, v)
	default:
		b.WriteString(Placeholder)
	}
}

func join(b *strings.Builder, children []ast.Child, sep string) {
	for i, c := range children {
		if i > 0 {
			b.WriteString(sep)
		}
		render(b, c)
	}
}

func child(n *ast.Node, i int) ast.Child {
	if i < len(n.Children) {
		return n.Children[i]
	}
	return nil
}

func printNode(b *strings.Builder, n *ast.Node) {
	switch n.Tag {
	case ast.TagExpr, ast.TagSelector, ast.TagAtExpr:
		join(b, n.Children, " ")

	case ast.TagSet:
		join(b, n.Children, ";\n")

	case ast.TagExtCSS, ast.TagExtProperty, ast.TagExtValue, ast.TagExtSelector, ast.TagExtAt:
		render(b, child(n, 0))

	case ast.TagID, ast.TagHex:
		render(b, child(n, 0))

	case ast.TagImportant:
		b.WriteString("!important")

	case ast.TagPseudoArgs:
		b.WriteByte('(')
		join(b, n.Children, "")
		b.WriteByte(')')

	case ast.TagPseudo:
		b.WriteByte(':')
		join(b, n.Children, "")

	case ast.TagAttrib:
		printAttrib(b, n)

	case ast.TagFunc:
		render(b, child(n, 0))
		b.WriteByte('(')
		render(b, child(n, 1))
		b.WriteByte(')')

	case ast.TagAtDeclaration:
		b.WriteByte('(')
		render(b, child(n, 0))
		b.WriteByte(')')

	case ast.TagDeclaration:
		render(b, child(n, 0))
		b.WriteString(": ")
		render(b, child(n, 1))
		if imp := child(n, 2); imp != nil {
			b.WriteByte(' ')
			render(b, imp)
		}

	case ast.TagAtRule:
		b.WriteByte('@')
		render(b, child(n, 0))
		b.WriteByte(' ')
		if expr := child(n, 1); expr != nil {
			render(b, expr)
			b.WriteByte(' ')
		}

	case ast.TagRule:
		render(b, child(n, 0))
		b.WriteString("{\n")
		render(b, child(n, 1))
		b.WriteString("\n}")

	case ast.TagRecover:
		var raw strings.Builder
		join(&raw, n.Children, "")
		b.WriteString("/*")
		b.WriteString(strings.ReplaceAll(raw.String(), "*/", "* /"))
		b.WriteString("*/")

	case ast.TagSelectorTerm, ast.TagCombinator, ast.TagTerm,
		ast.TagOperator, ast.TagValue, ast.TagAtTerm:
		join(b, n.Children, "")

	default:
		join(b, n.Children, "")
	}
}

// printAttrib renders [name], [name op value] or [name op value flag].
func printAttrib(b *strings.Builder, n *ast.Node) {
	b.WriteByte('[')
	for i, c := range n.Children {
		if i == 3 {
			b.WriteByte(' ')
		}
		render(b, c)
	}
	b.WriteByte(']')
}
