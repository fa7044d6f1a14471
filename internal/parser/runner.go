package parser

import (
	"regexp"
	"strconv"
)

var (
	// JUnitCore: OK (3 tests)
	okPattern = regexp.MustCompile(`OK\s*\(\s*(\d+)\s+tests?\s*\)`)
	// JUnitCore: Tests run: 3,  Failures: 1 / surefire style: Tests run: 3, Failures: 1, Errors: 0, Skipped: 0
	testsRunPattern = regexp.MustCompile(`(?m)^\s*Tests run:\s*(\d+)`)
	// TestNG: Total tests run: 3, Passes: 2, Failures: 1, Skips: 0
	totalRunPattern = regexp.MustCompile(`Total tests run:\s*(\d+)`)
	failuresPattern = regexp.MustCompile(`Failures:\s*(\d+)`)
	errorsPattern   = regexp.MustCompile(`Errors:\s*(\d+)`)
	skippedPattern  = regexp.MustCompile(`(?:Skipped|Skips):\s*(\d+)`)
)

// RunnerParser understands the console summaries of JUnitCore and TestNG
type RunnerParser struct{}

// NewRunnerParser creates a new RunnerParser
func NewRunnerParser() *RunnerParser {
	return &RunnerParser{}
}

// ParseCounts extracts the counts of the last summary in output.
// Without a recognisable summary the launch counts as one test, erroneous when it did not succeed.
func (p *RunnerParser) ParseCounts(output string, success bool) Counts {
	if total, ok := last(okPattern, output); ok {
		return Counts{Tests: total}
	}

	total, ok := last(totalRunPattern, output)
	if !ok {
		total, ok = last(testsRunPattern, output)
	}
	if ok {
		failures, _ := last(failuresPattern, output)
		errors, _ := last(errorsPattern, output)
		skipped, _ := last(skippedPattern, output)
		return Counts{Tests: total, Failures: failures, Errors: errors, Skipped: skipped}
	}

	if success {
		return Counts{Tests: 1}
	}
	return Counts{Tests: 1, Errors: 1}
}

func last(pattern *regexp.Regexp, output string) (int, bool) {
	matches := pattern.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil {
		return 0, false
	}
	return n, true
}
