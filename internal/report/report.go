// Package report selects and renders the reporters attached to a test run.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"surefire/internal/domain"
)

// Kind identifies a reporter
type Kind string

// Built-in reporters
const (
	ForkingConsoleReporter  Kind = "ForkingConsoleReporter"
	ConsoleReporter         Kind = "ConsoleReporter"
	BriefFileReporter       Kind = "BriefFileReporter"
	FileReporter            Kind = "FileReporter"
	BriefConsoleReporter    Kind = "BriefConsoleReporter"
	DetailedConsoleReporter Kind = "DetailedConsoleReporter"
	XMLReporter             Kind = "XMLReporter"
)

// Reporter renders test set results to one output channel
type Reporter interface {
	// Consume is called once per finished test set, in completion order
	Consume(set *domain.TestSetResult) error
	// Complete is called once after the last set
	Complete(result *domain.RunResult) error
}

// Options are handed to every reporter factory
type Options struct {
	ReportsDir string
	Out        io.Writer
}

// Factory creates a reporter
type Factory func(opts Options) Reporter

// Select maps the reporting options to the ordered reporters to attach.
// The XML reporter is always last.
func Select(useFile, printSummary bool, format domain.ReportFormat, forking bool) []Kind {
	var kinds []Kind

	if useFile {
		if printSummary {
			if forking {
				kinds = append(kinds, ForkingConsoleReporter)
			} else {
				kinds = append(kinds, ConsoleReporter)
			}
		}

		switch format {
		case domain.FormatBrief:
			kinds = append(kinds, BriefFileReporter)
		case domain.FormatPlain:
			kinds = append(kinds, FileReporter)
		case domain.FormatXML:
		}
	} else {
		switch format {
		case domain.FormatBrief:
			kinds = append(kinds, BriefConsoleReporter)
		case domain.FormatPlain:
			kinds = append(kinds, DetailedConsoleReporter)
		case domain.FormatXML:
		}
	}

	return append(kinds, XMLReporter)
}

// Registry resolves reporter kinds to factories
type Registry struct {
	factories map[Kind]Factory
}

// NewRegistry creates a Registry holding the built-in reporters
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[Kind]Factory)}
	r.Register(ConsoleReporter, func(o Options) Reporter { return newConsole(o.Out, false) })
	r.Register(ForkingConsoleReporter, func(o Options) Reporter { return newConsole(o.Out, true) })
	r.Register(BriefConsoleReporter, func(o Options) Reporter { return newStreamConsole(o.Out, false) })
	r.Register(DetailedConsoleReporter, func(o Options) Reporter { return newStreamConsole(o.Out, true) })
	r.Register(BriefFileReporter, func(o Options) Reporter { return newFile(o.ReportsDir, false) })
	r.Register(FileReporter, func(o Options) Reporter { return newFile(o.ReportsDir, true) })
	r.Register(XMLReporter, func(o Options) Reporter { return newXML(o.ReportsDir) })
	return r
}

// Register adds or replaces a reporter kind
func (r *Registry) Register(kind Kind, factory Factory) {
	r.factories[kind] = factory
}

// Kinds lists the registered kinds, sorted
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// New instantiates the given kinds in order
func (r *Registry) New(kinds []Kind, opts Options) ([]Reporter, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	reporters := make([]Reporter, 0, len(kinds))
	for _, kind := range kinds {
		factory, ok := r.factories[kind]
		if !ok {
			return nil, fmt.Errorf("unknown reporter %q", kind)
		}
		reporters = append(reporters, factory(opts))
	}
	return reporters, nil
}

// Multi fans results out to several reporters, stopping at the first error
type Multi []Reporter

func (m Multi) Consume(set *domain.TestSetResult) error {
	for _, r := range m {
		if err := r.Consume(set); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Complete(result *domain.RunResult) error {
	for _, r := range m {
		if err := r.Complete(result); err != nil {
			return err
		}
	}
	return nil
}
