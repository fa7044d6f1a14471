// Package exitcodes defines the process exit codes of the surefire command.
package exitcodes

const (
	// Success means every test passed, tests were skipped, or there was nothing to run
	Success = 0
	// TestFailure means tests failed or errored and failures are not ignored
	TestFailure = 1
	// RuntimeError means the run could not be carried out
	RuntimeError = 2
	// ConfigError means the configuration or command line was invalid
	ConfigError = 3
)
