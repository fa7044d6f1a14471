package storage

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"surefire/internal/report"
)

// Storage loads the reports a previous run left in the reports directory
type Storage interface {
	Load() ([]report.Suite, error)
}

// XMLStorage reads TEST-*.xml files written by the XML reporter
type XMLStorage struct {
	dir string
}

// NewXMLStorage returns a Storage reading the given reports directory
func NewXMLStorage(dir string) *XMLStorage {
	return &XMLStorage{dir: dir}
}

// Load parses every XML report, failing suites first, then by name
func (s *XMLStorage) Load() ([]report.Suite, error) {
	pattern := filepath.Join(s.dir, report.XMLPrefix+"*.xml")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no %s*.xml reports in %s", report.XMLPrefix, s.dir)
	}

	suites := make([]report.Suite, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}
		var suite report.Suite
		if err := xml.Unmarshal(data, &suite); err != nil {
			return nil, fmt.Errorf("parse report %s: %w", path, err)
		}
		if suite.Name == "" {
			suite.Name = strings.TrimSuffix(strings.TrimPrefix(filepath.Base(path), report.XMLPrefix), ".xml")
		}
		suites = append(suites, suite)
	}

	sort.SliceStable(suites, func(i, j int) bool {
		fi, fj := suites[i].Failed(), suites[j].Failed()
		if fi != fj {
			return fi
		}
		return suites[i].Name < suites[j].Name
	})
	return suites, nil
}
