package commands

import (
	"io"

	"surefire/internal/booter"
	"surefire/internal/classpath"
	"surefire/internal/config"
	"surefire/internal/discovery"
	"surefire/internal/execution"
	"surefire/internal/logging"
	"surefire/internal/orchestrator"
	"surefire/internal/parser"
	"surefire/internal/report"
	"surefire/internal/ui"

	"github.com/spf13/cobra"
)

// TestCommand handles the test command
type TestCommand struct {
	config   *config.Config
	scanner  *discovery.Scanner
	parser   parser.Parser
	registry *report.Registry
	out      io.Writer
	errOut   io.Writer
}

// NewTestCommand creates a new TestCommand
func NewTestCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	p parser.Parser,
	registry *report.Registry,
	out io.Writer,
	errOut io.Writer,
) *TestCommand {
	return &TestCommand{
		config:   cfg,
		scanner:  scanner,
		parser:   p,
		registry: registry,
		out:      out,
		errOut:   errOut,
	}
}

// Execute runs the command
func (tc *TestCommand) Execute(cmd *cobra.Command, args []string) error {
	log := logging.New(tc.out, tc.config.Level)

	runner := execution.NewRunner(log, tc.parser, nil)
	engine := execution.NewProcessEngine(log, tc.scanner, runner, tc.registry, tc.out)
	if tc.config.Flags.Progress {
		engine.SetProgress(func(total int) execution.Progress {
			return ui.NewProgressBar(total, tc.errOut)
		})
	}

	orch := orchestrator.New(tc.config, log, classpath.NewAssembler(log), booter.NewBuilder(log), engine)
	return orch.Execute(cmd.Context())
}
