package commands

import (
	"io"

	"surefire/internal/cli"
	"surefire/internal/config"
	"surefire/internal/discovery"
	"surefire/internal/parser"
	"surefire/internal/report"
	"surefire/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Test    *TestCommand
	List    *ListCommand
	Reports *ReportsCommand
}

// NewCommands creates all commands with dependencies. Regular output goes to out,
// progress bars to errOut.
func NewCommands(cfg *config.Config, out, errOut io.Writer) *Commands {
	scanner := discovery.NewScanner()
	testCaseParser := discovery.NewParser()
	runnerParser := parser.NewRunnerParser()
	registry := report.NewRegistry()
	formatter := ui.NewFormatter(out, testCaseParser)
	viewer := ui.NewReportViewer(out)

	return &Commands{
		Test:    NewTestCommand(cfg, scanner, runnerParser, registry, out, errOut),
		List:    NewListCommand(cfg, scanner, formatter, out),
		Reports: NewReportsCommand(cfg, formatter, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		return flags.Apply(cfg, cmd.Flags().Changed)
	}

	// Shared by every command
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigFile, cli.FlagConfig, "", "Config file (default <basedir>/surefire.yaml when present)")
	pf.StringVarP(&flags.Basedir, cli.FlagBasedir, "b", config.DefaultBasedir, "Project base directory")
	pf.StringVar(&flags.TestClassesDirectory, cli.FlagTestClassesDirectory, "", "Compiled test classes directory (default <basedir>/target/test-classes)")
	pf.StringVar(&flags.ReportsDirectory, cli.FlagReportsDirectory, "", "Reports directory (default <basedir>/target/surefire-reports)")
	pf.StringVar(&flags.LogLevel, cli.FlagLogLevel, config.DefaultLogLevel, "Log level: debug, info, warn or error")
	pf.BoolVarP(&flags.Debug, "debug", "X", false, "Debug logging")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "Only log errors")

	// Test command
	testCmd := &cobra.Command{
		Use:     "test",
		Short:   "Run the project's tests",
		Long:    "Select test classes or suite files, launch them with the configured runner and report the results",
		RunE:    c.Test.Execute,
		PreRunE: applyFlags,
	}
	f := testCmd.Flags()
	f.BoolVar(&flags.Skip, cli.FlagSkip, false, "Skip running tests")
	f.BoolVar(&flags.TestFailureIgnore, cli.FlagTestFailureIgnore, false, "Do not fail the build on test failures")
	f.StringVar(&flags.ClassesDirectory, cli.FlagClassesDirectory, "", "Main classes directory (default <basedir>/target/classes)")
	f.StringVar(&flags.TestSourceDirectory, cli.FlagTestSourceDirectory, "", "Test sources directory (default <basedir>/src/test/java)")
	f.StringSliceVar(&flags.ClasspathElements, cli.FlagClasspath, nil, "Test dependency classpath entries, in order")
	f.StringVar(&flags.LocalRepositoryPath, cli.FlagLocalRepository, "", "Local artifact repository (default ~/.m2/repository)")
	f.StringArrayVarP(&flags.SystemProperties, cli.FlagDefine, "D", nil, "System property key=value, repeatable")
	f.StringArrayVar(&flags.PluginArtifacts, cli.FlagPluginArtifact, nil, "Runner artifact groupId:artifactId:file, repeatable")
	f.BoolVar(&flags.PrintSummary, cli.FlagPrintSummary, true, "Print a summary to the console")
	f.BoolVar(&flags.UseFile, cli.FlagUseFile, true, "Write per-set report files")
	f.StringVar(&flags.ReportFormat, cli.FlagReportFormat, config.DefaultReportFormat, "Report format: brief, plain or xml")
	f.StringVar(&flags.ForkMode, cli.FlagForkMode, config.DefaultForkMode, "Fork mode: none, once or pertest")
	f.StringVar(&flags.JVM, cli.FlagJVM, config.DefaultJVM, "Java executable used when forking")
	f.StringVar(&flags.ArgLine, cli.FlagArgLine, "", "Extra JVM arguments when forking")
	f.StringArrayVar(&flags.EnvironmentVariables, cli.FlagEnv, nil, "Environment variable KEY=VALUE for forked runs, repeatable")
	f.StringVar(&flags.EnvironmentFile, cli.FlagEnvFile, "", "Dotenv file merged under --env")
	f.StringVar(&flags.WorkingDirectory, cli.FlagWorkingDirectory, "", "Working directory of forked runs (default basedir)")
	f.BoolVar(&flags.ChildDelegation, cli.FlagChildDelegation, true, "Delegate class loading to the child first when forking")
	f.StringVar(&flags.Groups, cli.FlagGroups, "", "TestNG groups to include")
	f.StringVar(&flags.ExcludedGroups, cli.FlagExcludedGroups, "", "TestNG groups to exclude")
	f.IntVar(&flags.ThreadCount, cli.FlagThreadCount, 0, "Threads for parallel runs")
	f.BoolVar(&flags.Parallel, cli.FlagParallel, false, "Run in parallel")
	f.BoolVar(&flags.ExportProperties, cli.FlagExportProperties, false, "Also export system properties into the process environment")
	f.BoolVar(&flags.Progress, "progress", false, "Show a progress bar when forking per test")
	addSelectionFlags(testCmd, flags)
	rootCmd.AddCommand(testCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List selected test classes",
		Long:    "Scan the test classes directory and list the classes a test run would launch",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVar(&flags.TestSourceDirectory, cli.FlagTestSourceDirectory, "", "Test sources directory (default <basedir>/src/test/java)")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test methods under each class")
	addSelectionFlags(listCmd, flags)
	rootCmd.AddCommand(listCmd)

	// Reports command
	reportsCmd := &cobra.Command{
		Use:     "reports",
		Short:   "View the reports of the last run",
		Long:    "Display the XML reports in the reports directory in an interactive viewer",
		RunE:    c.Reports.Execute,
		PreRunE: applyFlags,
	}
	reportsCmd.Flags().BoolVar(&flags.NoTUI, "no-tui", false, "Print a table instead of opening the viewer")
	rootCmd.AddCommand(reportsCmd)
}

func addSelectionFlags(cmd *cobra.Command, flags *cli.Flags) {
	f := cmd.Flags()
	f.StringVarP(&flags.Test, cli.FlagTest, "t", "", "Comma-separated test class names, overrides includes and excludes")
	f.StringSliceVar(&flags.Includes, cli.FlagInclude, nil, "Include pattern, repeatable")
	f.StringSliceVar(&flags.Excludes, cli.FlagExclude, nil, "Exclude pattern, repeatable")
	f.StringSliceVar(&flags.SuiteXMLFiles, cli.FlagSuiteXMLFile, nil, "TestNG suite file, repeatable")
}
