package domain

import (
	"fmt"
	"strings"
)

// ForkMode says whether tests run in-process, in one child process or in one child per test
type ForkMode int

const (
	ForkNone ForkMode = iota
	ForkOnce
	ForkPerTest
)

// ParseForkMode parses "none", "once" or "pertest"
func ParseForkMode(s string) (ForkMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return ForkNone, nil
	case "once":
		return ForkOnce, nil
	case "pertest":
		return ForkPerTest, nil
	}
	return ForkNone, fmt.Errorf("unknown fork mode %q (expected none, once or pertest)", s)
}

func (m ForkMode) String() string {
	switch m {
	case ForkOnce:
		return "once"
	case ForkPerTest:
		return "pertest"
	default:
		return "none"
	}
}

// Forking reports whether tests leave the current process
func (m ForkMode) Forking() bool {
	return m != ForkNone
}

// ReportFormat selects the format-specific reporter
type ReportFormat int

const (
	FormatBrief ReportFormat = iota
	FormatPlain
	// FormatXML adds nothing beyond the XML reporter that is always attached
	FormatXML
)

// ParseReportFormat parses "brief", "plain" or "xml"
func ParseReportFormat(s string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "brief", "":
		return FormatBrief, nil
	case "plain":
		return FormatPlain, nil
	case "xml":
		return FormatXML, nil
	}
	return FormatBrief, fmt.Errorf("unknown report format %q (expected brief, plain or xml)", s)
}

func (f ReportFormat) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatXML:
		return "xml"
	default:
		return "brief"
	}
}
