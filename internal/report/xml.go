package report

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"surefire/internal/domain"
)

// XMLPrefix starts the file name of every XML report
const XMLPrefix = "TEST-"

// Suite is the XML form of one test set
type Suite struct {
	XMLName   xml.Name   `xml:"testsuite"`
	Name      string     `xml:"name,attr"`
	Tests     int        `xml:"tests,attr"`
	Failures  int        `xml:"failures,attr"`
	Errors    int        `xml:"errors,attr"`
	Skipped   int        `xml:"skipped,attr"`
	Time      float64    `xml:"time,attr"`
	TestCases []TestCase `xml:"testcase"`
	SystemOut string     `xml:"system-out,omitempty"`
}

// TestCase is a launched class inside a suite
type TestCase struct {
	Name      string   `xml:"name,attr"`
	ClassName string   `xml:"classname,attr"`
	Failure   *Failure `xml:"failure,omitempty"`
}

// Failure marks a failed test case
type Failure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr,omitempty"`
}

// Failed reports whether the suite has failures or errors
func (s *Suite) Failed() bool {
	if s.Failures > 0 || s.Errors > 0 {
		return true
	}
	for _, tc := range s.TestCases {
		if tc.Failure != nil {
			return true
		}
	}
	return false
}

// NewSuite converts a set result to its XML form
func NewSuite(set *domain.TestSetResult) *Suite {
	suite := &Suite{
		Name:      set.Name,
		Tests:     set.Tests,
		Failures:  set.Failures,
		Errors:    set.Errors,
		Skipped:   set.Skipped,
		Time:      set.Duration.Seconds(),
		SystemOut: set.Output,
	}

	names := set.Classes
	if len(names) == 0 {
		names = []string{set.Name}
	}
	for _, name := range names {
		tc := TestCase{Name: name, ClassName: name}
		if !set.Success {
			tc.Failure = &Failure{Message: "test set failed", Type: set.Battery.String()}
		}
		suite.TestCases = append(suite.TestCases, tc)
	}
	return suite
}

type xmlReporter struct {
	dir string
}

func newXML(dir string) *xmlReporter {
	return &xmlReporter{dir: dir}
}

func (x *xmlReporter) Consume(set *domain.TestSetResult) error {
	data, err := xml.MarshalIndent(NewSuite(set), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal xml report: %w", err)
	}

	if err := os.MkdirAll(x.dir, 0755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(x.dir, XMLPrefix+FileName(set.Name)+".xml")
	data = append([]byte(xml.Header), data...)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func (x *xmlReporter) Complete(*domain.RunResult) error {
	return nil
}
