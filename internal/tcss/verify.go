package tcss

import (
	"errors"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// LexProblem is a lexer complaint about printed CSS.
type LexProblem struct {
	Offset  int // byte offset into the printed text
	Message string
}

// VerifyOutput runs printed CSS through an independent CSS3 tokenizer and
// reports bad strings and bad urls along with lexer errors.
func VerifyOutput(printed string) []LexProblem {
	var problems []LexProblem
	lexer := css.NewLexer(parse.NewInputString(printed))

	offset := 0
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				problems = append(problems, LexProblem{Offset: offset, Message: err.Error()})
			}
			return problems
		case css.BadStringToken:
			problems = append(problems, LexProblem{Offset: offset, Message: "unterminated string"})
		case css.BadURLToken:
			problems = append(problems, LexProblem{Offset: offset, Message: "malformed url"})
		}
		offset += len(text)
	}
}
