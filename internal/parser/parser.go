package parser

// Counts are the test counts a runner printed in its summary
type Counts struct {
	Tests    int
	Failures int
	Errors   int
	Skipped  int
}

// Parser extracts counts from runner console output
type Parser interface {
	ParseCounts(output string, success bool) Counts
}
