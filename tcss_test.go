package tcss_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tcss"
)

func TestParseEmbeddedValue(t *testing.T) {
	theme := &tcss.Ref{ID: 1, Kind: tcss.KindExpr, Value: "#fff"}
	root, err := tcss.Parse(tcss.Text(".card{background:"), tcss.Embed(theme), tcss.Text("}"))
	require.NoError(t, err)

	assert.Len(t, tcss.FindAll(root, tcss.TagRule), 1)
	ext := tcss.FindAll(root, tcss.TagExtValue)
	require.Len(t, ext, 1)
	assert.Same(t, theme, ext[0].Children[0])
	assert.Equal(t, ".card{\nbackground: #fff\n}", tcss.Stringify(root))
}

func TestParseErrors(t *testing.T) {
	_, err := tcss.ParseString("a{}\n}")
	var unparsed *tcss.UnparsedError
	require.ErrorAs(t, err, &unparsed)
	assert.Equal(t, "}", unparsed.Remaining)

	deep := strings.Repeat("a{", 50) + strings.Repeat("}", 50)
	_, err = tcss.ParseWith(tcss.Options{MaxDepth: 16}, tcss.Text(deep))
	assert.True(t, errors.Is(err, tcss.ErrTooDeep))
}

func TestParseKind(t *testing.T) {
	kind, err := tcss.ParseKind("selector")
	require.NoError(t, err)
	assert.Equal(t, tcss.KindSelector, kind)

	_, err = tcss.ParseKind("color")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte("a{color:${expr:accent}}"), 0644))

	result, err := tcss.Check(context.Background(), tcss.Config{Paths: []string{dir}, Placeholders: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesScanned)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 1, result.Stats.Embedded["expr"])
}
