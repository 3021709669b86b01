package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexers(t *testing.T) {
	tests := []struct {
		name  string
		lexer Lexer
		input string
		want  int
	}{
		{name: "ident plain", lexer: Ident, input: "color:", want: 5},
		{name: "ident custom property", lexer: Ident, input: "--main-bg ", want: 9},
		{name: "ident vendor", lexer: Ident, input: "-webkit-box", want: 11},
		{name: "ident three hyphens", lexer: Ident, input: "---x", want: -1},
		{name: "ident digit start", lexer: Ident, input: "10px", want: -1},
		{name: "ident negative number", lexer: Ident, input: "-1px", want: -1},
		{name: "ident underscore", lexer: Ident, input: "_x1", want: 3},

		{name: "number integer", lexer: Number, input: "10px", want: 2},
		{name: "number fraction", lexer: Number, input: "1.5em", want: 3},
		{name: "number leading dot", lexer: Number, input: ".5", want: 2},
		{name: "number signed", lexer: Number, input: "-3", want: 2},
		{name: "number exponent", lexer: Number, input: "1e3", want: 3},
		{name: "number exponent signed", lexer: Number, input: "2.5E-2x", want: 6},
		{name: "number em is unit", lexer: Number, input: "2em", want: 1},
		{name: "number trailing dot", lexer: Number, input: "1.", want: 1},
		{name: "number none", lexer: Number, input: "px", want: -1},

		{name: "unit percent", lexer: Unit, input: "%;", want: 1},
		{name: "unit word", lexer: Unit, input: "px ", want: 2},
		{name: "unit none", lexer: Unit, input: " px", want: -1},

		{name: "string double", lexer: String, input: `"a b" c`, want: 5},
		{name: "string single", lexer: String, input: `'x'`, want: 3},
		{name: "string escaped quote", lexer: String, input: `"a\"b"`, want: 6},
		{name: "string escaped newline", lexer: String, input: "\"a\\\nb\"", want: 6},
		{name: "string raw newline", lexer: String, input: "\"a\nb\"", want: -1},
		{name: "string unterminated", lexer: String, input: `"abc`, want: -1},

		{name: "hex three", lexer: Hex, input: "#fff;", want: 4},
		{name: "hex eight", lexer: Hex, input: "#11223344", want: 9},
		{name: "hex capped at eight", lexer: Hex, input: "#1122334455", want: 9},
		{name: "hex five is allowed", lexer: Hex, input: "#abcde", want: 6},
		{name: "hex too short", lexer: Hex, input: "#ab", want: -1},

		{name: "selector type", lexer: SimpleSelector, input: "div.a", want: 3},
		{name: "selector class", lexer: SimpleSelector, input: ".btn--primary:", want: 13},
		{name: "selector id", lexer: SimpleSelector, input: "#main ", want: 5},
		{name: "selector amp", lexer: SimpleSelector, input: "&:hover", want: 1},
		{name: "selector star", lexer: SimpleSelector, input: "*", want: 1},
		{name: "selector keyframe", lexer: SimpleSelector, input: "50%{", want: 3},
		{name: "selector nth", lexer: SimpleSelector, input: "2n+1", want: 2},
		{name: "selector bare dot", lexer: SimpleSelector, input: ". a", want: -1},

		{name: "ignored spaces", lexer: Ignored, input: " \n\tx", want: 3},
		{name: "ignored block comment", lexer: Ignored, input: "/* a */ x", want: 8},
		{name: "ignored line comment", lexer: Ignored, input: "// a\nx", want: 5},
		{name: "ignored unterminated comment", lexer: Ignored, input: " /* a", want: 1},
		{name: "ignored nothing", lexer: Ignored, input: "x", want: -1},

		{name: "attr op eq", lexer: AttrOp, input: `="a"`, want: 1},
		{name: "attr op prefix", lexer: AttrOp, input: `^="a"`, want: 2},
		{name: "attr op none", lexer: AttrOp, input: `!=`, want: -1},
		{name: "attr flag", lexer: AttrFlag, input: "i]", want: 1},
		{name: "attr flag is word", lexer: AttrFlag, input: "is]", want: -1},

		{name: "colons single", lexer: Colons, input: ":hover", want: 1},
		{name: "colons double", lexer: Colons, input: "::before", want: 2},

		{name: "garbage to semicolon", lexer: Garbage, input: "abc;d", want: 3},
		{name: "garbage to brace", lexer: Garbage, input: "a b}", want: 3},
		{name: "garbage empty", lexer: Garbage, input: ";", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.lexer(tt.input))
		})
	}
}

func TestOneOfLexers(t *testing.T) {
	for _, s := range []string{">", "+", "~", ","} {
		require.Equal(t, 1, Combinator(s), "combinator %q", s)
	}
	for _, s := range []string{"/", ",", "*", "+", "-"} {
		require.Equal(t, 1, Operator(s), "operator %q", s)
	}
	require.Equal(t, -1, Combinator(""))
	require.Equal(t, -1, Operator("!"))
}
