// Package comb composes cursor matchers into grammar productions: sequence,
// ordered alternation, optional, repetition and lookahead.
//
// A Parser either succeeds with the advanced cursor and its captured children,
// or fails without side effects on the cursor. Failure is a no-match, never an
// error; only the State can abort a parse.
package comb

import (
	"github.com/yacobolo/tcss/internal/ast"
	"github.com/yacobolo/tcss/internal/cursor"
)

// Result is a successful match: the cursor after it and the captured children.
type Result struct {
	Next     cursor.Cursor
	Children []ast.Child
}

// Parser attempts a match at c.
type Parser func(st *State, c cursor.Cursor) (Result, bool)

// Lit matches a literal token without capturing it.
func Lit(tok string) Parser {
	return func(_ *State, c cursor.Cursor) (Result, bool) {
		next, ok := c.Literal(tok)
		if !ok {
			return Result{}, false
		}
		return Result{Next: next}, true
	}
}

// Tok matches a lexical rule and captures the text as a leaf.
func Tok(l cursor.Lexer) Parser {
	return func(_ *State, c cursor.Cursor) (Result, bool) {
		text, next, ok := c.Pattern(l)
		if !ok {
			return Result{}, false
		}
		return Result{Next: next, Children: []ast.Child{ast.Leaf(text)}}, true
	}
}

// Skip matches a lexical rule without capturing it.
func Skip(l cursor.Lexer) Parser {
	return func(_ *State, c cursor.Cursor) (Result, bool) {
		_, next, ok := c.Pattern(l)
		if !ok {
			return Result{}, false
		}
		return Result{Next: next}, true
	}
}

// Space skips optional whitespace and comments. It never fails.
func Space(_ *State, c cursor.Cursor) (Result, bool) {
	return Result{Next: c.SkipIgnored()}, true
}

// Embed consumes one embedded reference accepted by pred and captures it.
func Embed(pred func(*ast.Ref) bool) Parser {
	return func(_ *State, c cursor.Cursor) (Result, bool) {
		r, next, ok := c.Embedded(pred)
		if !ok {
			return Result{}, false
		}
		return Result{Next: next, Children: []ast.Child{r}}, true
	}
}

// Seq matches every parser in order. On any failure the whole sequence fails
// and the caller's cursor is untouched.
func Seq(ps ...Parser) Parser {
	return func(st *State, c cursor.Cursor) (Result, bool) {
		out := Result{Next: c}
		for _, p := range ps {
			r, ok := p(st, out.Next)
			if !ok {
				return Result{}, false
			}
			out.Next = r.Next
			out.Children = append(out.Children, r.Children...)
		}
		return out, true
	}
}

// Alt tries each parser in declared order and returns the first success.
// The order is a tie-break: earlier branches win on ambiguous input.
func Alt(ps ...Parser) Parser {
	return func(st *State, c cursor.Cursor) (Result, bool) {
		for _, p := range ps {
			if r, ok := p(st, c); ok {
				return r, true
			}
		}
		return Result{}, false
	}
}

// Opt matches p zero or one time. It never fails.
func Opt(p Parser) Parser {
	return func(st *State, c cursor.Cursor) (Result, bool) {
		if r, ok := p(st, c); ok {
			return r, true
		}
		return Result{Next: c}, true
	}
}

// Many matches p greedily zero or more times. It stops at the first failure or
// at a match that does not advance, and never gives back accepted matches.
func Many(p Parser) Parser {
	return func(st *State, c cursor.Cursor) (Result, bool) {
		out := Result{Next: c}
		for {
			r, ok := p(st, out.Next)
			if !ok || !out.Next.Pos().Less(r.Next.Pos()) {
				return out, true
			}
			out.Next = r.Next
			out.Children = append(out.Children, r.Children...)
		}
	}
}

// Many1 matches p one or more times.
func Many1(p Parser) Parser {
	return Seq(p, Many(p))
}

// Ahead succeeds without consuming when pred holds at the cursor.
func Ahead(pred func(cursor.Cursor) bool) Parser {
	return func(_ *State, c cursor.Cursor) (Result, bool) {
		return Result{Next: c}, pred(c)
	}
}

// Not succeeds without consuming when p fails at the cursor.
func Not(p Parser) Parser {
	return func(st *State, c cursor.Cursor) (Result, bool) {
		if _, ok := p(st, c); ok {
			return Result{}, false
		}
		return Result{Next: c}, true
	}
}

// Ref defers to *p at parse time, for recursive productions.
func Ref(p *Parser) Parser {
	return func(st *State, c cursor.Cursor) (Result, bool) {
		return (*p)(st, c)
	}
}

// Node runs p and wraps its captured children in a node tagged tag.
// Node frames count against the state's depth limit and are memoized when the
// state was created with memoization.
func Node(tag ast.Tag, p Parser) Parser {
	return func(st *State, c cursor.Cursor) (Result, bool) {
		key := memoKey{pos: c.Pos(), tag: tag}
		if st.memo != nil {
			if e, ok := st.memo[key]; ok {
				return e.res, e.ok
			}
		}
		if !st.enter(c) {
			return Result{}, false
		}
		r, ok := p(st, c)
		st.leave()

		var res Result
		if ok {
			n := &ast.Node{Tag: tag, Offset: c.Offset(), Children: r.Children}
			res = Result{Next: r.Next, Children: []ast.Child{n}}
		}
		if st.memo != nil && st.err == nil {
			st.memo[key] = memoEntry{res: res, ok: ok}
		}
		return res, ok
	}
}
