package discovery

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar"
)

// Filter matches slash-separated relative paths against include and exclude globs.
// Globs support ** for any number of directories.
type Filter struct {
	includes []string
	excludes []string
}

// NewFilter creates a new Filter
func NewFilter(includes, excludes []string) *Filter {
	return &Filter{includes: includes, excludes: excludes}
}

// Matches reports whether path is selected by at least one include and by no exclude
func (f *Filter) Matches(path string) (bool, error) {
	path = filepath.ToSlash(path)

	included, err := matchAny(f.includes, path)
	if err != nil || !included {
		return false, err
	}

	excluded, err := matchAny(f.excludes, path)
	if err != nil {
		return false, err
	}
	return !excluded, nil
}

// FilterPaths keeps the paths Matches accepts, in order
func (f *Filter) FilterPaths(paths []string) ([]string, error) {
	var filtered []string
	for _, p := range paths {
		ok, err := f.Matches(p)
		if err != nil {
			return nil, err
		}
		if ok {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func matchAny(patterns []string, path string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(filepath.ToSlash(pattern), path)
		if err != nil {
			return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
