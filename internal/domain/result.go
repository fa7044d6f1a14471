package domain

import "time"

// TestSetResult is the outcome of one launched test set (a class, a class group or a suite file)
type TestSetResult struct {
	Name     string        // Report name of the set
	Battery  BatteryKind   // Battery the set came from
	Classes  []string      // Test classes launched, empty for suites
	Success  bool          // Whether the runner exited cleanly
	Tests    int           // Tests run, as reported by the runner
	Failures int           // Assertion failures
	Errors   int           // Unexpected errors
	Skipped  int           // Ignored or skipped tests
	Output   string        // Raw runner output
	Duration time.Duration // Wall time of the launch
}

// RunResult is the verdict of a whole invocation. It is consumed right away and never persisted.
type RunResult struct {
	Success     bool
	Diagnostics string
	Sets        []TestSetResult
	Duration    time.Duration
}

// Totals are the counts summed over every set of a run
type Totals struct {
	Sets     int
	Tests    int
	Failures int
	Errors   int
	Skipped  int
}

// Totals sums the per-set counts
func (r *RunResult) Totals() Totals {
	t := Totals{Sets: len(r.Sets)}
	for _, set := range r.Sets {
		t.Tests += set.Tests
		t.Failures += set.Failures
		t.Errors += set.Errors
		t.Skipped += set.Skipped
	}
	return t
}
