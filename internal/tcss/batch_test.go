package tcss

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestExpandPaths(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.css":      "a{}",
		"b.css":      "b{}",
		"sub/c.css":  "c{}",
		"x.min.css":  "x{}",
		"notes.txt":  "",
		"sub/d.scss": "",
	})

	files, stats, err := ExpandPaths([]string{dir, filepath.Join(dir, "a.css")})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.css"),
		filepath.Join(dir, "b.css"),
		filepath.Join(dir, "sub", "c.css"),
	}, files)
	assert.Equal(t, ScanStats{FilesDiscovered: 4, FilesScanned: 3, FilesSkipped: 1}, stats)

	files, _, err = ExpandPaths([]string{filepath.Join(dir, "sub", "*.css")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "sub", "c.css")}, files)
}

func TestProcessFilesKeepsOrder(t *testing.T) {
	files := []string{"a", "b", "c", "d", "e"}
	var calls atomic.Int32

	out, err := processFiles(context.Background(), files, 2, func(f string) (string, error) {
		calls.Add(1)
		return f + f, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "bb", "cc", "dd", "ee"}, out)
	assert.Equal(t, int32(5), calls.Load())
}

func TestProcessFilesStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	_, err := processFiles(context.Background(), []string{"a", "b"}, 1, func(f string) (int, error) {
		if f == "a" {
			return 0, boom
		}
		return 1, nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestProcessFilesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := processFiles(ctx, []string{"a"}, 0, func(string) (int, error) { return 1, nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheck(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"ok.css":       "a{color:${expr:c}}",
		"warn.css":     "a{color:red;;garbage;;}",
		"sub/bad.css":  "a{}}",
		"sub/fine.css": "b{c:d}",
	})

	result, err := Check(context.Background(), Config{Paths: []string{dir}, Placeholders: true})
	require.NoError(t, err)

	assert.Equal(t, 4, result.FilesScanned)
	require.Len(t, result.Issues, 2)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	assert.True(t, result.Failed(false))

	// sorted by file name
	assert.Equal(t, filepath.Join(dir, "sub", "bad.css"), result.Issues[0].Pos.Filename)
	assert.Equal(t, filepath.Join(dir, "warn.css"), result.Issues[1].Pos.Filename)

	assert.Equal(t, 3, result.Stats.Rules)
	assert.Equal(t, map[string]int{"expr": 1}, result.Stats.Embedded)
}

func TestCheckAllStrict(t *testing.T) {
	result := CheckAll(nil, ScanStats{}, Config{})
	assert.False(t, result.Failed(true))

	result = &CheckResult{WarningCount: 1}
	assert.False(t, result.Failed(false))
	assert.True(t, result.Failed(true))
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{FromLinter: LinterRecover, Text: "same"},
		{FromLinter: LinterRecover, Text: "same"},
		{FromLinter: LinterRecover, Text: "other"},
		{FromLinter: LinterParse, Text: "same"},
	}

	kept, truncated := limitIssues(issues, Config{MaxIssuesPerLinter: 2})
	assert.Len(t, kept, 3)
	assert.Equal(t, 1, truncated)

	kept, truncated = limitIssues(issues, Config{MaxSameIssues: 1})
	assert.Equal(t, []Issue{issues[0], issues[2]}, kept)
	assert.Equal(t, 2, truncated)

	kept, truncated = limitIssues(issues, Config{})
	assert.Equal(t, issues, kept)
	assert.Zero(t, truncated)
}
