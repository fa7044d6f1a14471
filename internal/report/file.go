package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"surefire/internal/domain"
)

// file writes <reportsDir>/<set>.txt. Brief files only carry runner output for failed sets.
type file struct {
	dir   string
	plain bool
}

func newFile(dir string, plain bool) *file {
	return &file{dir: dir, plain: plain}
}

func (f *file) Consume(set *domain.TestSetResult) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("-", 63) + "\n")
	fmt.Fprintf(&b, "Test set: %s\n", set.Name)
	b.WriteString(strings.Repeat("-", 63) + "\n")
	b.WriteString(summaryLine(set) + "\n")
	if f.plain || !set.Success {
		b.WriteString(set.Output)
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(f.dir, FileName(set.Name)+".txt")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func (f *file) Complete(*domain.RunResult) error {
	return nil
}

// FileName makes a set name safe to use as a file name
func FileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}
