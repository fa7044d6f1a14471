package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"surefire/internal/domain"
)

// ClassExtension is the extension of compiled test classes
const ClassExtension = ".class"

// Scanner finds compiled test classes for a directory battery
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan walks the battery directory and returns the fully qualified names of the
// classes selected by the battery patterns, sorted.
func (s *Scanner) Scan(battery domain.Battery) ([]string, error) {
	root := filepath.Clean(battery.Directory)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test classes directory does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test classes directory is not a directory: %s", root)
	}

	filter := NewFilter(battery.Includes, battery.Excludes)
	var classes []string

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// Skip hidden directories (starting with .)
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ClassExtension) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		ok, err := filter.Matches(rel)
		if err != nil {
			return err
		}
		if ok {
			classes = append(classes, ClassName(rel))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(classes)
	return classes, nil
}

// ClassName converts a relative class file path (com/acme/FooTest.class) to a class name (com.acme.FooTest)
func ClassName(relPath string) string {
	name := strings.TrimSuffix(filepath.ToSlash(relPath), filepath.Ext(relPath))
	return strings.ReplaceAll(name, "/", ".")
}

// SourceFile returns the expected source file of a class under sourceDir
func SourceFile(sourceDir, className string) string {
	return filepath.Join(sourceDir, filepath.FromSlash(strings.ReplaceAll(className, ".", "/"))+".java")
}
