package tcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tcss/internal/ast"
)

func TestSplitSource(t *testing.T) {
	src, err := SplitSource("a.css", []byte("a{color:${expr:c};}${set:x}"))
	require.NoError(t, err)

	require.Len(t, src.Elements, 5)
	refs := src.Refs()
	require.Len(t, refs, 2)

	assert.Equal(t, 1, refs[0].ID)
	assert.Equal(t, ast.KindExpr, refs[0].Kind)
	assert.Equal(t, "${expr:c}", refs[0].Value)
	assert.Equal(t, 2, refs[1].ID)
	assert.Equal(t, ast.KindSet, refs[1].Kind)
}

func TestSplitSourceMarkers(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kinds   []ast.Kind
		wantErr bool
	}{
		{name: "no markers", content: "a{color:red}"},
		{name: "plain", content: "a{color:${c}}", kinds: []ast.Kind{ast.KindPlain}},
		{name: "at expression", content: "@media ${at_expr:q}{}", kinds: []ast.Kind{ast.KindAtExpr}},
		{name: "adjacent", content: "${id:p}${id:q}", kinds: []ast.Kind{ast.KindID, ast.KindID}},
		{name: "not a marker", content: "a{content:'$'}${1x}"},
		{name: "unknown kind", content: "a{${color:x}}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := SplitSource("a.css", []byte(tt.content))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "a.css: offset 2")
				return
			}
			require.NoError(t, err)

			var kinds []ast.Kind
			for _, r := range src.Refs() {
				kinds = append(kinds, r.Kind)
			}
			assert.Equal(t, tt.kinds, kinds)
			assert.Len(t, src.Elements, 2*len(tt.kinds)+1)
		})
	}
}

func TestFileOffset(t *testing.T) {
	// texts "a{color:" | ";}" | "" around two markers
	src, err := SplitSource("a.css", []byte("a{color:${expr:c};}${set:x}"))
	require.NoError(t, err)

	tests := []struct {
		textOff int
		want    int
	}{
		{textOff: 0, want: 0},
		{textOff: 3, want: 3},
		{textOff: 8, want: 17},
		{textOff: 9, want: 18},
		{textOff: 10, want: 27},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, src.FileOffset(tt.textOff), "text offset %d", tt.textOff)
	}

	assert.Equal(t, 8, src.SegmentOffset(0, 8))
	assert.Equal(t, 17, src.SegmentOffset(1, 8))
}

func TestNewSourceKeepsMarkers(t *testing.T) {
	src := NewSource("a.css", []byte("a{color:${c}}"))
	require.Len(t, src.Elements, 1)
	assert.Empty(t, src.Refs())
	assert.Equal(t, 5, src.FileOffset(5))
}
