package execution

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"surefire/internal/booter"
	"surefire/internal/discovery"
	"surefire/internal/domain"
	"surefire/internal/report"
)

var _ Engine = (*ProcessEngine)(nil)

// ProcessEngine runs batteries by launching JVM test runners
type ProcessEngine struct {
	log         *slog.Logger
	scanner     *discovery.Scanner
	runner      *Runner
	registry    *report.Registry
	out         io.Writer
	newProgress func(total int) Progress
}

// NewProcessEngine creates a new ProcessEngine. Console reporters write to out.
func NewProcessEngine(log *slog.Logger, scanner *discovery.Scanner, runner *Runner, registry *report.Registry, out io.Writer) *ProcessEngine {
	return &ProcessEngine{
		log:      log,
		scanner:  scanner,
		runner:   runner,
		registry: registry,
		out:      out,
	}
}

// SetProgress installs a progress bar factory used when forking per test
func (e *ProcessEngine) SetProgress(newProgress func(total int) Progress) {
	e.newProgress = newProgress
}

// Run executes every battery in order and feeds each set result to the selected reporters
func (e *ProcessEngine) Run(ctx context.Context, b *booter.Booter) (*domain.RunResult, error) {
	reporters, err := e.registry.New(b.Reporters, report.Options{ReportsDir: b.ReportsDirectory, Out: e.out})
	if err != nil {
		return nil, err
	}
	sink := report.Multi(reporters)

	start := time.Now()
	result := &domain.RunResult{Success: true}
	var diagnostics []string
	names := make(map[string]int)

	for _, battery := range b.Batteries {
		jobs, err := e.plan(b, battery)
		if err != nil {
			return nil, err
		}
		for i := range jobs {
			jobs[i].Launch.Name = uniqueName(names, jobs[i].Launch.Name)
		}
		if len(jobs) == 0 {
			e.log.Info("No tests found for " + battery.Kind.String() + " battery")
			continue
		}

		sets, err := e.execute(ctx, b, jobs)
		if err != nil {
			return nil, err
		}

		for i := range sets {
			set := &sets[i]
			if err := sink.Consume(set); err != nil {
				return nil, fmt.Errorf("report %s: %w", set.Name, err)
			}
			if !set.Success {
				result.Success = false
				diagnostics = append(diagnostics, fmt.Sprintf("%s: %d failures, %d errors", set.Name, set.Failures, set.Errors))
			}
			result.Sets = append(result.Sets, *set)
		}
	}

	result.Duration = time.Since(start)
	result.Diagnostics = strings.Join(diagnostics, "\n")

	if err := sink.Complete(result); err != nil {
		return nil, fmt.Errorf("complete reports: %w", err)
	}
	return result, nil
}

func (e *ProcessEngine) plan(b *booter.Booter, battery domain.Battery) ([]Job, error) {
	var launches []Launch
	switch battery.Kind {
	case domain.DirectoryBattery:
		classes, err := e.scanner.Scan(battery)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", battery.Directory, err)
		}
		launches = directoryLaunches(b, battery, classes)
	case domain.SuiteBattery:
		launches = []Launch{suiteLaunch(b, battery)}
	default:
		return nil, fmt.Errorf("unknown battery kind %d", battery.Kind)
	}

	debug := b.Fork != nil && b.Fork.Debug
	jobs := make([]Job, 0, len(launches))
	for _, l := range launches {
		jobs = append(jobs, Job{Launch: l, Command: NewCommand(b, l), Debug: debug})
	}
	return jobs, nil
}

// execute runs per-test forks on the worker pool and everything else sequentially
func (e *ProcessEngine) execute(ctx context.Context, b *booter.Booter, jobs []Job) ([]domain.TestSetResult, error) {
	workers := 1
	if b.ForkMode == domain.ForkPerTest && b.Parallel && b.ThreadCount > 0 {
		workers = b.ThreadCount
	}

	pool := NewWorkerPool(e.runner, workers)
	if b.ForkMode == domain.ForkPerTest && e.newProgress != nil {
		pool.SetProgress(e.newProgress(len(jobs)))
	}
	return pool.Execute(ctx, jobs)
}

// uniqueName suffixes repeated set names with their occurrence count (testng, testng-2, ...)
// so their report files do not overwrite each other.
func uniqueName(seen map[string]int, name string) string {
	seen[name]++
	n := seen[name]
	if n == 1 {
		return name
	}
	candidate := name + "-" + strconv.Itoa(n)
	for seen[candidate] > 0 {
		n++
		seen[name] = n
		candidate = name + "-" + strconv.Itoa(n)
	}
	seen[candidate]++
	return candidate
}
