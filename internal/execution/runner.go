package execution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"surefire/internal/domain"
	"surefire/internal/parser"
)

// CommandBuilder creates the process for a command. Tests swap it out.
type CommandBuilder func(ctx context.Context, name string, arg ...string) *exec.Cmd

// Job is a planned launch together with its composed command
type Job struct {
	Launch  Launch
	Command Command
	// Debug logs the runner output
	Debug bool
}

// Runner executes a single runner process
type Runner struct {
	log        *slog.Logger
	parser     parser.Parser
	cmdBuilder CommandBuilder
}

// NewRunner creates a new Runner. A nil builder uses exec.CommandContext.
func NewRunner(log *slog.Logger, p parser.Parser, cmdBuilder CommandBuilder) *Runner {
	if cmdBuilder == nil {
		cmdBuilder = exec.CommandContext
	}
	return &Runner{log: log, parser: p, cmdBuilder: cmdBuilder}
}

// Run launches the job and waits for it. A non-zero exit is a failed set; an error is
// returned only when the process could not run to completion.
func (r *Runner) Run(ctx context.Context, job Job) (domain.TestSetResult, error) {
	r.log.Debug("Launching " + job.Command.String())

	cmd := r.cmdBuilder(ctx, job.Command.Path, job.Command.Args...)
	cmd.Env = job.Command.Env
	cmd.Dir = job.Command.Dir

	start := time.Now()
	output, err := cmd.CombinedOutput()
	duration := time.Since(start)

	result := domain.TestSetResult{
		Name:     job.Launch.Name,
		Battery:  job.Launch.Battery,
		Classes:  job.Launch.Classes,
		Success:  err == nil,
		Output:   string(output),
		Duration: duration,
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("run %s: %w", job.Launch.Name, ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, fmt.Errorf("launch %s: %w", job.Launch.Name, err)
		}
	}

	if job.Debug {
		for _, line := range strings.Split(strings.TrimRight(result.Output, "\n"), "\n") {
			r.log.Debug("[" + job.Launch.Name + "] " + line)
		}
	}

	counts := r.parser.ParseCounts(result.Output, result.Success)
	result.Tests = counts.Tests
	result.Failures = counts.Failures
	result.Errors = counts.Errors
	result.Skipped = counts.Skipped

	return result, nil
}
