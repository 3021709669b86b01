package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tcss/internal/ast"
)

func id(s string) *ast.Node { return ast.New(ast.TagID, ast.Leaf(s)) }

func term(c ast.Child) *ast.Node { return ast.New(ast.TagTerm, c) }

func decl(prop string, value ast.Child, important bool) *ast.Node {
	n := ast.New(ast.TagDeclaration, id(prop), ast.New(ast.TagExpr, term(value)))
	if important {
		n.Children = append(n.Children, ast.New(ast.TagImportant))
	}
	return n
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node ast.Child
		want string
	}{
		{
			name: "declaration",
			node: decl("color", id("red"), false),
			want: "color: red",
		},
		{
			name: "important",
			node: decl("color", id("red"), true),
			want: "color: red !important",
		},
		{
			name: "set",
			node: ast.New(ast.TagSet, decl("a", id("b"), false), decl("c", id("d"), false)),
			want: "a: b;\nc: d",
		},
		{
			name: "empty set",
			node: ast.New(ast.TagSet),
			want: "",
		},
		{
			name: "rule",
			node: ast.New(ast.TagRule,
				ast.New(ast.TagSelector, ast.New(ast.TagSelectorTerm, ast.Leaf("a"))),
				ast.New(ast.TagSet, decl("x", id("y"), false))),
			want: "a{\nx: y\n}",
		},
		{
			name: "function",
			node: ast.New(ast.TagFunc, ast.Leaf("rgb"), ast.New(ast.TagExpr,
				term(ast.New(ast.TagValue, ast.Leaf("1"))),
				ast.New(ast.TagOperator, ast.Leaf(",")),
				term(ast.New(ast.TagValue, ast.Leaf("2"))))),
			want: "rgb(1 , 2)",
		},
		{
			name: "function without arguments",
			node: ast.New(ast.TagFunc, ast.Leaf("f")),
			want: "f()",
		},
		{
			name: "attribute with flag",
			node: ast.New(ast.TagAttrib, ast.Leaf("lang"), ast.Leaf("|="), ast.Leaf(`"en"`), ast.Leaf("i")),
			want: `[lang|="en" i]`,
		},
		{
			name: "bare attribute",
			node: ast.New(ast.TagAttrib, ast.Leaf("disabled")),
			want: "[disabled]",
		},
		{
			name: "pseudo with arguments",
			node: ast.New(ast.TagPseudo, ast.Leaf("not"), ast.New(ast.TagPseudoArgs,
				ast.New(ast.TagSelector, ast.New(ast.TagSelectorTerm, ast.Leaf(".a"))))),
			want: ":not(.a)",
		},
		{
			name: "at rule",
			node: ast.New(ast.TagAtRule, ast.Leaf("media"), ast.New(ast.TagAtExpr,
				ast.New(ast.TagAtTerm, id("screen")),
				ast.New(ast.TagAtTerm, ast.New(ast.TagAtDeclaration, decl("min-width", ast.New(ast.TagValue, ast.Leaf("1px")), false))))),
			want: "@media screen (min-width: 1px) ",
		},
		{
			name: "recover",
			node: ast.New(ast.TagRecover, ast.Leaf("oops;")),
			want: "/*oops;*/",
		},
		{
			name: "recover defuses comment end",
			node: ast.New(ast.TagRecover, ast.Leaf("a */ b")),
			want: "/*a * / b*/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.node))
		})
	}
}

func TestRefValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "1px solid", want: "1px solid"},
		{name: "node", value: decl("color", id("red"), false), want: "color: red"},
		{name: "nil", value: nil, want: Placeholder},
		{name: "foreign", value: struct{ N int }{N: 1}, want: Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := ast.New(ast.TagExtValue, &ast.Ref{ID: 3, Kind: ast.KindExpr, Value: tt.value})
			assert.Equal(t, tt.want, String(ext))
		})
	}
}

func TestNilChild(t *testing.T) {
	assert.Equal(t, "", String(nil))
	var n *ast.Node
	assert.Equal(t, "", String(n))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, decl("margin", id("auto"), true)))
	assert.Equal(t, "margin: auto !important", buf.String())
}
