// Package walk discovers .sol source files under one or more roots.
// Adapted from the teacher's core.FileWalker, stripped of its goroutine
// worker pool: spec.md §5 requires strictly sequential, deterministic,
// lexicographic-order file processing, which a parallel producer/
// consumer channel pipeline cannot guarantee without extra buffering and
// a sort step anyway — so walking here is a single recursive pass that
// sorts its own output instead of fanning out across workers.
package walk

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Scope mirrors the teacher's FileScope: the knobs that bound a walk.
type Scope struct {
	Root     string
	Include  []string // defaults to ["**/*.sol"] when empty
	Exclude  []string
	MaxDepth int // 0 = unlimited
}

// Result is one discovered file, already stat'd.
type Result struct {
	Path string
	Size int64
}

// Walk recursively discovers files under scope.Root matching scope's
// include/exclude patterns and returns them sorted by path, satisfying
// spec.md §5's "lexicographic path order" requirement.
func Walk(scope Scope) ([]Result, error) {
	info, err := os.Stat(scope.Root)
	if err != nil {
		return nil, fmt.Errorf("cannot access root %s: %w", scope.Root, err)
	}
	if !info.IsDir() {
		if matchesAny(scope.Root, includePatterns(scope)) {
			return []Result{{Path: scope.Root, Size: info.Size()}}, nil
		}
		return nil, fmt.Errorf("%s does not match include patterns", scope.Root)
	}

	var results []Result
	err = scan(scope.Root, scope, 0, &results)
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

func scan(dir string, scope Scope, depth int, out *[]Result) error {
	if scope.MaxDepth > 0 && depth > scope.MaxDepth {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if matchesAny(full, scope.Exclude) {
			continue
		}
		if entry.IsDir() {
			if err := scan(full, scope, depth+1, out); err != nil {
				return err
			}
			continue
		}
		if matchesAny(full, includePatterns(scope)) {
			info, err := entry.Info()
			if err != nil {
				continue
			}
			*out = append(*out, Result{Path: full, Size: info.Size()})
		}
	}
	return nil
}

func includePatterns(scope Scope) []string {
	if len(scope.Include) > 0 {
		return scope.Include
	}
	return []string{"**/*.sol"}
}

func matchesAny(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	for _, p := range patterns {
		if matched, err := doublestar.PathMatch(p, path); err == nil && matched {
			return true
		}
		if !strings.Contains(p, "/") {
			if matched, err := doublestar.PathMatch(p, filepath.Base(path)); err == nil && matched {
				return true
			}
		}
	}
	return false
}
