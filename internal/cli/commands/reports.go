package commands

import (
	"github.com/spf13/cobra"

	"surefire/internal/config"
	"surefire/internal/storage"
	"surefire/internal/ui"
)

// ReportsCommand handles the reports command
type ReportsCommand struct {
	config    *config.Config
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewReportsCommand creates a new ReportsCommand
func NewReportsCommand(cfg *config.Config, formatter *ui.Formatter, viewer ui.Viewer) *ReportsCommand {
	return &ReportsCommand{
		config:    cfg,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *ReportsCommand) Execute(cmd *cobra.Command, args []string) error {
	suites, err := storage.NewXMLStorage(rc.config.ReportsDirectory).Load()
	if err != nil {
		return err
	}

	if rc.config.Flags.NoTUI {
		rc.formatter.PrintReports(suites)
		return nil
	}
	return rc.viewer.View(suites)
}
