package tcss

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yacobolo/tcss/internal/ast"
	"github.com/yacobolo/tcss/internal/printer"
)

// Formatted is the printed form of one file.
type Formatted struct {
	Path    string
	Output  string
	Changed bool // Output differs from the file content
	Err     error
}

// ErrRecovered is reported for files whose tree holds recovered fragments.
// Printing them would turn source text into comments, so they are not
// formatted.
var ErrRecovered = errors.New("unrecognized input would be commented out")

// Format prints p. Placeholder markers survive as their original text.
func Format(p Parsed) Formatted {
	if p.Err != nil {
		return Formatted{Path: p.Path, Err: p.Err}
	}
	if n := len(ast.FindAll(p.Root, ast.TagRecover)); n > 0 {
		return Formatted{
			Path: p.Path,
			Err:  fmt.Errorf("%w (%s)", ErrRecovered, pluralizeCount(n, "fragment", "fragments")),
		}
	}
	out := printer.String(p.Root) + "\n"
	return Formatted{
		Path:    p.Path,
		Output:  out,
		Changed: out != string(p.Source.Content),
	}
}

// FormatFiles parses and prints every configured file.
func FormatFiles(ctx context.Context, cfg Config) ([]Formatted, error) {
	parsed, _, err := ParseFiles(ctx, cfg)
	if err != nil {
		return nil, err
	}
	out := make([]Formatted, len(parsed))
	for i, p := range parsed {
		out[i] = Format(p)
	}
	return out, nil
}

// WriteBack replaces the file content with the formatted output when it
// changed, keeping the file mode.
func WriteBack(f Formatted) error {
	if f.Err != nil || !f.Changed {
		return f.Err
	}
	info, err := os.Stat(f.Path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.Path, []byte(f.Output), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return nil
}

// TreeFormat is an encoding for dumped syntax trees.
type TreeFormat string

const (
	TreeJSON TreeFormat = "json"
	TreeYAML TreeFormat = "yaml"
)

// TreeDoc is one file's syntax tree in a tree dump.
type TreeDoc struct {
	File  string    `json:"file" yaml:"file"`
	Tree  *ast.Node `json:"tree,omitempty" yaml:"tree,omitempty"`
	Error string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// TreeDocs converts parsed files into tree dump documents.
func TreeDocs(parsed []Parsed) []TreeDoc {
	docs := make([]TreeDoc, len(parsed))
	for i, p := range parsed {
		docs[i] = TreeDoc{File: p.Path, Tree: p.Root}
		if p.Err != nil {
			docs[i].Error = p.Err.Error()
		}
	}
	return docs
}

// WriteTree encodes v, a tree or tree documents, to w.
func WriteTree(w io.Writer, v any, format TreeFormat) error {
	switch format {
	case TreeJSON, "":
		return newJSONEncoder(w).Encode(v)
	case TreeYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown tree format %q (want json or yaml)", format)
	}
}
