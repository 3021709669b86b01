package cursor

import "strings"

// Lexer is a lexical rule. It returns the byte length of the match at the start
// of s, or -1 when s does not start with a match.
type Lexer func(s string) int

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isHex(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// isWord matches the \w class plus any non-ASCII byte.
func isWord(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_' || b >= 0x80
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func words(s string, i int) int {
	for i < len(s) && (isWord(s[i]) || s[i] == '-') {
		i++
	}
	return i
}

// Ignored matches a run of whitespace, block comments and line comments.
// An unterminated block comment is not ignored.
func Ignored(s string) int {
	i := 0
	for i < len(s) {
		switch {
		case isSpace(s[i]):
			i++
		case s[i] == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return orNoMatch(i)
			}
			i += end + 4
		case s[i] == '/' && i+1 < len(s) && s[i+1] == '/':
			i += 2
			for i < len(s) && s[i] != '\n' && s[i] != '\r' {
				i++
			}
		default:
			return orNoMatch(i)
		}
	}
	return orNoMatch(i)
}

func orNoMatch(n int) int {
	if n == 0 {
		return -1
	}
	return n
}

// Ident matches up to two leading hyphens followed by a letter, underscore or
// non-ASCII byte, then any word characters and hyphens. Digits may not start an
// identifier, so "10px" and "-1px" are left to Number.
func Ident(s string) int {
	i := 0
	for i < 2 && i < len(s) && s[i] == '-' {
		i++
	}
	if i >= len(s) || !(isLetter(s[i]) || s[i] == '_' || s[i] >= 0x80) {
		return -1
	}
	return words(s, i+1)
}

// Number matches an optionally signed decimal with optional fraction and exponent.
func Number(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	} else if i == start {
		return -1
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

// Unit matches "%" or a run of word characters.
func Unit(s string) int {
	if s != "" && s[0] == '%' {
		return 1
	}
	i := 0
	for i < len(s) && isWord(s[i]) {
		i++
	}
	return orNoMatch(i)
}

// String matches a single- or double-quoted string. A backslash escapes the
// following byte, newlines included; an unescaped newline ends the match.
func String(s string) int {
	if s == "" || (s[0] != '"' && s[0] != '\'') {
		return -1
	}
	q := s[0]
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '\n':
			return -1
		case q:
			return i + 1
		}
	}
	return -1
}

// Hex matches '#' followed by three to eight hex digits.
func Hex(s string) int {
	if s == "" || s[0] != '#' {
		return -1
	}
	i := 1
	for i < len(s) && i <= 8 && isHex(s[i]) {
		i++
	}
	if i < 4 {
		return -1
	}
	return i
}

// SimpleSelector matches '&', '*', or an optional '#'/'.' followed by a word.
// A run of digits may end in '%' for keyframe selectors.
func SimpleSelector(s string) int {
	if s == "" {
		return -1
	}
	if s[0] == '&' || s[0] == '*' {
		return 1
	}
	i := 0
	if s[0] == '#' || s[0] == '.' {
		i++
	}
	if i >= len(s) || !isWord(s[i]) {
		return -1
	}
	end := words(s, i+1)
	if i == 0 && end < len(s) && s[end] == '%' && allDigits(s[:end]) {
		end++
	}
	return end
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}

func oneOf(set string) Lexer {
	return func(s string) int {
		if s == "" {
			return -1
		}
		for i := 0; i < len(set); i++ {
			if s[0] == set[i] {
				return 1
			}
		}
		return -1
	}
}

var (
	// Combinator matches a selector combinator: '>', '+', '~', or ',' between
	// the selectors of a list.
	Combinator = oneOf(">+~,")
	// Operator matches a value operator.
	Operator = oneOf("/,*+-")
	// Comma matches a single ','.
	Comma = oneOf(",")
)

// Colons matches the ':' or '::' that opens a pseudo selector.
func Colons(s string) int {
	switch {
	case len(s) >= 2 && s[0] == ':' && s[1] == ':':
		return 2
	case s != "" && s[0] == ':':
		return 1
	}
	return -1
}

// AttrOp matches an attribute operator: "=", "~=", "|=", "^=", "$=" or "*=".
func AttrOp(s string) int {
	if s != "" && s[0] == '=' {
		return 1
	}
	if len(s) >= 2 && s[1] == '=' {
		switch s[0] {
		case '~', '|', '^', '$', '*':
			return 2
		}
	}
	return -1
}

// AttrFlag matches a case-sensitivity flag: one of i, I, s, S standing alone.
func AttrFlag(s string) int {
	if s == "" {
		return -1
	}
	switch s[0] {
	case 'i', 'I', 's', 'S':
		if len(s) > 1 && (isWord(s[1]) || s[1] == '-') {
			return -1
		}
		return 1
	}
	return -1
}

// Garbage matches a non-empty run of bytes other than ';' and '}'.
func Garbage(s string) int {
	i := 0
	for i < len(s) && s[i] != ';' && s[i] != '}' {
		i++
	}
	return orNoMatch(i)
}
