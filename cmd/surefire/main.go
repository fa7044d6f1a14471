package main

import (
	"errors"
	"fmt"
	"os"

	"surefire/internal/cli"
	"surefire/internal/cli/commands"
	"surefire/internal/config"
	"surefire/internal/exitcodes"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

type exitCoder interface {
	ExitCode() int
}

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "surefire",
		Short:         "Run a project's compiled JUnit and TestNG tests",
		Long:          `Select compiled test classes or TestNG suite files, launch them in-process or in forked JVMs, and write console, text and XML reports.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &config.ValidationError{Field: "flags", Err: err}
	})

	cmds := commands.NewCommands(cfg, os.Stdout, os.Stderr)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var coder exitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	if config.IsValidationError(err) {
		return exitcodes.ConfigError
	}
	return exitcodes.RuntimeError
}
