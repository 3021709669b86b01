// Package grammar defines the template CSS grammar and parses input with it.
//
// Alternation order is load-bearing throughout: a set position tries rule,
// then an embedded set, then a declaration, and only then recovery, so a
// selector that looks like a declaration prefix is still read as a rule head
// whenever a '{' comes before the next ';' or '}'.
package grammar

import (
	"github.com/yacobolo/tcss/internal/ast"
	"github.com/yacobolo/tcss/internal/comb"
	"github.com/yacobolo/tcss/internal/cursor"
)

// productions are the entry points of the grammar.
type productions struct {
	set         comb.Parser
	selector    comb.Parser
	declaration comb.Parser
	expr        comb.Parser
}

var css = build()

func accepts(k ast.Kind) func(*ast.Ref) bool {
	return func(r *ast.Ref) bool { return r.Accepts(k) }
}

func anyRef(*ast.Ref) bool { return true }

func build() productions {
	var set, selector, declaration, expr comb.Parser

	var (
		space = comb.Space
		semis = comb.Many(comb.Seq(comb.Lit(";"), space))
	)

	// Splice points. Each accepts one reference tagged for its position, or a
	// plain one.
	extCSS := comb.Node(ast.TagExtCSS, comb.Seq(comb.Embed(accepts(ast.KindSet)), space, semis))
	extProperty := comb.Node(ast.TagExtProperty, comb.Seq(comb.Embed(accepts(ast.KindID)), space))
	extValue := comb.Node(ast.TagExtValue, comb.Seq(comb.Embed(accepts(ast.KindExpr)), space))
	extSelector := comb.Node(ast.TagExtSelector, comb.Embed(accepts(ast.KindSelector)))
	extAt := comb.Node(ast.TagExtAt, comb.Seq(comb.Embed(accepts(ast.KindAtExpr)), space))

	id := comb.Node(ast.TagID, comb.Seq(comb.Tok(cursor.Ident), space))
	hex := comb.Node(ast.TagHex, comb.Seq(comb.Tok(cursor.Hex), space))
	important := comb.Node(ast.TagImportant,
		comb.Seq(comb.Lit("!"), space, comb.Lit("important"), space))

	// Values.
	fn := comb.Node(ast.TagFunc, comb.Seq(
		comb.Tok(cursor.Ident), comb.Lit("("), space,
		comb.Opt(comb.Ref(&expr)),
		comb.Lit(")"), space,
	))
	value := comb.Node(ast.TagValue, comb.Seq(
		comb.Alt(
			comb.Seq(comb.Tok(cursor.Number), comb.Opt(comb.Tok(cursor.Unit))),
			comb.Tok(cursor.String),
		),
		space,
	))
	term := comb.Node(ast.TagTerm, comb.Alt(extValue, fn, id, hex, value))
	operator := comb.Node(ast.TagOperator, comb.Seq(comb.Tok(cursor.Operator), space))
	expr = comb.Node(ast.TagExpr, comb.Seq(term, comb.Many(comb.Seq(comb.Opt(operator), term))))

	declaration = comb.Node(ast.TagDeclaration, comb.Seq(
		comb.Alt(id, extProperty),
		comb.Lit(":"), space,
		expr,
		comb.Opt(important),
	))

	// Selectors. The parts of one term are adjacent: no whitespace is skipped
	// between them, so "a:hover" is one term and "a :hover" two.
	pseudoArgs := comb.Node(ast.TagPseudoArgs, comb.Seq(
		comb.Lit("("), space, comb.Opt(comb.Ref(&selector)), space, comb.Lit(")"),
	))
	pseudo := comb.Node(ast.TagPseudo, comb.Seq(
		comb.Skip(cursor.Colons), comb.Tok(cursor.Ident), comb.Opt(pseudoArgs),
	))
	attrib := comb.Node(ast.TagAttrib, comb.Seq(
		comb.Lit("["), space,
		comb.Tok(cursor.Ident), space,
		comb.Opt(comb.Seq(
			comb.Tok(cursor.AttrOp), space,
			comb.Alt(comb.Tok(cursor.String), comb.Tok(cursor.Ident)), space,
			comb.Opt(comb.Seq(comb.Tok(cursor.AttrFlag), space)),
		)),
		comb.Lit("]"),
	))
	part := comb.Alt(extSelector, comb.Tok(cursor.SimpleSelector), attrib, pseudo)
	selectorTerm := comb.Node(ast.TagSelectorTerm, comb.Seq(comb.Many1(part), space))
	combinator := comb.Node(ast.TagCombinator, comb.Seq(comb.Tok(cursor.Combinator), space))
	selector = comb.Node(ast.TagSelector, comb.Seq(
		comb.Many1(comb.Seq(comb.Opt(combinator), selectorTerm)),
		space,
	))

	// At-rules.
	atDeclaration := comb.Node(ast.TagAtDeclaration, comb.Seq(
		comb.Lit("("), space, comb.Ref(&declaration), comb.Lit(")"), space,
	))
	atTerm := comb.Node(ast.TagAtTerm, comb.Alt(extAt, id, atDeclaration))
	atExpr := comb.Node(ast.TagAtExpr, comb.Seq(
		atTerm,
		comb.Many(comb.Alt(comb.Seq(comb.Tok(cursor.Comma), space), atTerm)),
	))
	atRule := comb.Node(ast.TagAtRule, comb.Seq(
		comb.Lit("@"), comb.Tok(cursor.Ident), space, comb.Opt(atExpr),
	))

	rule := comb.Node(ast.TagRule, comb.Seq(
		comb.Ahead(cursor.Cursor.BlockAhead),
		comb.Alt(atRule, selector),
		comb.Lit("{"), space,
		comb.Ref(&set),
		comb.Lit("}"), space,
	))

	recovery := comb.Node(ast.TagRecover, comb.Seq(recoverBody, space))

	set = comb.Node(ast.TagSet, comb.Seq(
		space, semis,
		comb.Many(comb.Seq(
			comb.Alt(rule, extCSS, declaration, recovery),
			semis,
		)),
	))

	return productions{
		set:         set,
		selector:    selector,
		declaration: declaration,
		expr:        expr,
	}
}

// recoverBody absorbs everything up to the next ';' or '}', including any
// embedded references on the way, plus the ';' itself when present. It always
// consumes at least one byte or reference, or fails.
func recoverBody(_ *comb.State, c cursor.Cursor) (comb.Result, bool) {
	out := comb.Result{Next: c}
	for {
		if text, next, ok := out.Next.Pattern(cursor.Garbage); ok {
			out.Children = appendText(out.Children, text)
			out.Next = next
			continue
		}
		if r, next, ok := out.Next.Embedded(anyRef); ok {
			out.Children = append(out.Children, r)
			out.Next = next
			continue
		}
		break
	}
	if len(out.Children) == 0 {
		return comb.Result{}, false
	}
	if next, ok := out.Next.Literal(";"); ok {
		out.Children = appendText(out.Children, ";")
		out.Next = next
	}
	return out, true
}

// appendText appends text, merging it into a trailing leaf.
func appendText(children []ast.Child, text string) []ast.Child {
	if n := len(children); n > 0 {
		if l, ok := children[n-1].(ast.Leaf); ok {
			children[n-1] = l + ast.Leaf(text)
			return children
		}
	}
	return append(children, ast.Leaf(text))
}
