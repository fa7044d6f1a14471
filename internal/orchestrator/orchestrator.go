// Package orchestrator drives a single test run from configuration to verdict.
package orchestrator

import (
	"context"
	"log/slog"
	"os"

	"surefire/internal/booter"
	"surefire/internal/classpath"
	"surefire/internal/config"
	"surefire/internal/discovery"
	"surefire/internal/execution"
	"surefire/internal/report"
)

// State is the lifecycle position of a run
type State int

const (
	Idle State = iota
	Skipped
	NoTests
	Configuring
	Invoking
	Succeeded
	FailedTolerated
	FailedFatal
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Skipped:
		return "skipped"
	case NoTests:
		return "no-tests"
	case Configuring:
		return "configuring"
	case Invoking:
		return "invoking"
	case Succeeded:
		return "succeeded"
	case FailedTolerated:
		return "failed-tolerated"
	case FailedFatal:
		return "failed-fatal"
	}
	return "unknown"
}

// Orchestrator runs the configured tests once
type Orchestrator struct {
	config    *config.Config
	log       *slog.Logger
	assembler *classpath.Assembler
	builder   *booter.Builder
	engine    execution.Engine
	state     State
}

// New creates a new Orchestrator. cfg must already be validated.
func New(cfg *config.Config, log *slog.Logger, assembler *classpath.Assembler, builder *booter.Builder, engine execution.Engine) *Orchestrator {
	return &Orchestrator{
		config:    cfg,
		log:       log,
		assembler: assembler,
		builder:   builder,
		engine:    engine,
		state:     Idle,
	}
}

// State returns where the last Execute call ended
func (o *Orchestrator) State() State {
	return o.state
}

// Execute runs the tests and returns a *BuildError when the build must fail
func (o *Orchestrator) Execute(ctx context.Context) error {
	cfg := o.config

	if cfg.Skip {
		o.log.Info("Tests are skipped.")
		o.state = Skipped
		return nil
	}

	if !dirExists(cfg.TestClassesDirectory) {
		o.log.Info("No tests to run.")
		o.state = NoTests
		return nil
	}

	o.state = Configuring
	o.log.Info("Setting reports dir: " + cfg.ReportsDirectory)

	selection := discovery.Resolve(cfg.TestFilter(), cfg.Includes, cfg.Excludes, cfg.SuiteXMLFiles)
	batteries := selection.Batteries(cfg.TestClassesDirectory)
	if len(batteries) == 0 {
		o.log.Info("No suite files found, no tests to run.")
		o.state = Succeeded
		return nil
	}

	cp := o.assembler.Assemble(cfg.TestClassesDirectory, cfg.ClassesDirectory, cfg.ClasspathElements, cfg.PluginArtifacts)
	reporters := report.Select(cfg.UseFile, cfg.PrintSummary, cfg.Format, cfg.Fork.Forking())

	b := o.builder.Build(booter.Options{
		Groups:               cfg.Groups,
		ExcludedGroups:       cfg.ExcludedGroups,
		ThreadCount:          cfg.ThreadCount,
		Parallel:             cfg.Parallel,
		TestSourceDirectory:  cfg.TestSourceDirectory,
		ReportsDirectory:     cfg.ReportsDirectory,
		Batteries:            batteries,
		Reporters:            reporters,
		Classpath:            cp,
		Basedir:              cfg.Basedir,
		LocalRepositoryPath:  cfg.LocalRepositoryPath,
		SystemProperties:     cfg.SystemProperties,
		ForkMode:             cfg.Fork,
		JVM:                  cfg.JVM,
		ArgLine:              cfg.ArgLine,
		EnvironmentVariables: cfg.EnvironmentVariables,
		WorkingDirectory:     cfg.WorkingDirectory,
		ChildDelegation:      cfg.ChildDelegation,
	})

	if cfg.ExportProperties {
		if err := booter.ExportProperties(b.SystemProperties); err != nil {
			o.state = FailedFatal
			return &BuildError{Kind: KindExecution, Message: ExecutionMessage, Cause: err}
		}
	}

	o.state = Invoking
	result, err := o.engine.Run(ctx, b)
	if err != nil {
		o.state = FailedFatal
		return &BuildError{Kind: KindExecution, Message: ExecutionMessage, Cause: err}
	}

	if result.Success {
		o.state = Succeeded
		return nil
	}

	if cfg.TestFailureIgnore {
		o.log.Error(TestFailureMessage)
		o.state = FailedTolerated
		return nil
	}

	o.state = FailedFatal
	return &BuildError{Kind: KindTestFailure, Message: TestFailureMessage}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
