package tcss

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// processFiles runs fn over files with at most jobs calls in flight and returns
// the results in file order. It stops early when ctx is done or fn fails.
func processFiles[T any](ctx context.Context, files []string, jobs int, fn func(string) (T, error)) ([]T, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	out := make([]T, len(files))
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := fn(file)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseFiles expands cfg.Paths and parses every file concurrently. Per-file
// failures are carried in Parsed.Err; only cancellation fails the batch.
func ParseFiles(ctx context.Context, cfg Config) ([]Parsed, ScanStats, error) {
	files, stats, err := ExpandPaths(cfg.Paths)
	if err != nil {
		return nil, stats, err
	}
	parsed, err := processFiles(ctx, files, cfg.Jobs, func(path string) (Parsed, error) {
		return ParseFile(path, cfg), nil
	})
	return parsed, stats, err
}

// Check parses every configured file and collects issues.
func Check(ctx context.Context, cfg Config) (*CheckResult, error) {
	parsed, stats, err := ParseFiles(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return CheckAll(parsed, stats, cfg), nil
}

// CheckAll builds a result from already parsed files.
func CheckAll(parsed []Parsed, stats ScanStats, cfg Config) *CheckResult {
	result := &CheckResult{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
	}
	for _, p := range parsed {
		issues, s := CheckParsed(p, cfg)
		result.Issues = append(result.Issues, issues...)
		result.Stats.add(s)
	}

	sortIssues(result.Issues)
	result.Issues, result.TruncatedCount = limitIssues(result.Issues, cfg)

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	return result
}

// sortIssues orders issues by file, then line, then column.
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, cfg Config) ([]Issue, int) {
	originalCount := len(issues)

	if cfg.MaxIssuesPerLinter > 0 {
		perLinter := make(map[string]int)
		var kept []Issue
		for _, issue := range issues {
			if perLinter[issue.FromLinter] < cfg.MaxIssuesPerLinter {
				kept = append(kept, issue)
				perLinter[issue.FromLinter]++
			}
		}
		issues = kept
	}

	if cfg.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, cfg.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
