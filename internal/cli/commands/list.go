package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"surefire/internal/config"
	"surefire/internal/discovery"
	"surefire/internal/domain"
	"surefire/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	formatter *ui.Formatter
	out       io.Writer
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	formatter *ui.Formatter,
	out io.Writer,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		formatter: formatter,
		out:       out,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := lc.config
	if info, err := os.Stat(cfg.TestClassesDirectory); err != nil || !info.IsDir() {
		fmt.Fprintln(lc.out, color.YellowString("No tests to run."))
		return nil
	}

	selection := discovery.Resolve(cfg.TestFilter(), cfg.Includes, cfg.Excludes, cfg.SuiteXMLFiles)
	batteries := selection.Batteries(cfg.TestClassesDirectory)
	if len(batteries) == 0 {
		fmt.Fprintln(lc.out, color.YellowString("No suite files found"))
		return nil
	}

	for _, battery := range batteries {
		if battery.Kind == domain.SuiteBattery {
			fmt.Fprintln(lc.out, color.CyanString("Suite %s", battery.SuiteFile))
			continue
		}

		classes, err := lc.scanner.Scan(battery)
		if err != nil {
			return err
		}
		lc.formatter.PrintTestList(classes, cfg.TestSourceDirectory, cfg.Flags.TestCases)
	}
	return nil
}
