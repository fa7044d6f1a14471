// Package booter builds the immutable execution handle the test engine runs from.
package booter

import (
	"log/slog"
	"path/filepath"

	"surefire/internal/domain"
	"surefire/internal/logging"
	"surefire/internal/report"
)

// Options is everything the builder needs to configure a run
type Options struct {
	Groups              string
	ExcludedGroups      string
	ThreadCount         int
	Parallel            bool
	TestSourceDirectory string
	ReportsDirectory    string
	Batteries           []domain.Battery
	Reporters           []report.Kind
	Classpath           []string

	Basedir             string
	LocalRepositoryPath string
	SystemProperties    map[string]string

	ForkMode             domain.ForkMode
	JVM                  string
	ArgLine              string
	EnvironmentVariables map[string]string
	WorkingDirectory     string
	ChildDelegation      bool
}

// ForkSettings only exist when tests run in a child process
type ForkSettings struct {
	// Properties is the effective property set captured when the booter was built
	Properties           Properties
	JVM                  string
	Basedir              string
	ArgLine              string
	EnvironmentVariables map[string]string
	WorkingDirectory     string
	ChildDelegation      bool
	Debug                bool
}

// Booter is the configured run handed to the engine. Do not modify it after Build.
type Booter struct {
	Groups              string
	ExcludedGroups      string
	ThreadCount         int
	Parallel            bool
	TestSourceDirectory string
	ReportsDirectory    string
	Batteries           []domain.Battery
	Reporters           []report.Kind
	Classpath           []string
	SystemProperties    Properties
	ForkMode            domain.ForkMode
	// Fork is nil when ForkMode is ForkNone
	Fork                *ForkSettings
}

// Builder builds Booters
type Builder struct {
	log *slog.Logger
}

// NewBuilder creates a new Builder
func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{log: log}
}

// Build assembles the handle. It does not validate anything; problems surface when the engine runs.
func (b *Builder) Build(opts Options) *Booter {
	booter := &Booter{
		Groups:              opts.Groups,
		ExcludedGroups:      opts.ExcludedGroups,
		ThreadCount:         opts.ThreadCount,
		Parallel:            opts.Parallel,
		TestSourceDirectory: opts.TestSourceDirectory,
		ReportsDirectory:    opts.ReportsDirectory,
		Batteries:           opts.Batteries,
		Reporters:           opts.Reporters,
		Classpath:           opts.Classpath,
		SystemProperties:    b.properties(opts),
		ForkMode:            opts.ForkMode,
	}

	if opts.ForkMode.Forking() {
		booter.Fork = &ForkSettings{
			Properties:           booter.SystemProperties,
			JVM:                  opts.JVM,
			Basedir:              absolute(opts.Basedir),
			ArgLine:              opts.ArgLine,
			EnvironmentVariables: copyMap(opts.EnvironmentVariables),
			WorkingDirectory:     opts.WorkingDirectory,
			ChildDelegation:      opts.ChildDelegation,
			Debug:                logging.DebugEnabled(b.log),
		}
	}

	return booter
}

// properties sets the implicit keys first, then applies the caller's entries in key order.
// The last write wins, so a caller entry named like an implicit key replaces it.
func (b *Builder) properties(opts Options) Properties {
	props := Properties{}.
		With(BasedirProperty, absolute(opts.Basedir)).
		With(LocalRepositoryProperty, opts.LocalRepositoryPath)

	for _, key := range sortedKeys(opts.SystemProperties) {
		value := opts.SystemProperties[key]
		if key == BasedirProperty || key == LocalRepositoryProperty {
			b.log.Warn("System property overrides an implicit property", "key", key)
		}
		b.log.Debug("Setting system property [" + key + "]=[" + value + "]")
		props = props.With(key, value)
	}
	return props
}

func absolute(path string) string {
	if path == "" {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func copyMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
