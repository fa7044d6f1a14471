package cli

import (
	"fmt"
	"os"
	"strings"

	"surefire/internal/config"
	"surefire/internal/domain"
)

// Flag names shared by the binding in commands and Apply
const (
	FlagConfig               = "config"
	FlagBasedir              = "basedir"
	FlagSkip                 = "skip-tests"
	FlagTestFailureIgnore    = "test-failure-ignore"
	FlagTest                 = "test"
	FlagInclude              = "include"
	FlagExclude              = "exclude"
	FlagSuiteXMLFile         = "suite-xml-file"
	FlagClassesDirectory     = "classes-dir"
	FlagTestClassesDirectory = "test-classes-dir"
	FlagReportsDirectory     = "reports-dir"
	FlagTestSourceDirectory  = "test-source-dir"
	FlagClasspath            = "classpath"
	FlagLocalRepository      = "local-repository"
	FlagDefine               = "define"
	FlagPluginArtifact       = "plugin-artifact"
	FlagPrintSummary         = "print-summary"
	FlagUseFile              = "use-file"
	FlagReportFormat         = "report-format"
	FlagForkMode             = "fork-mode"
	FlagJVM                  = "jvm"
	FlagArgLine              = "arg-line"
	FlagEnv                  = "env"
	FlagEnvFile              = "env-file"
	FlagWorkingDirectory     = "working-dir"
	FlagChildDelegation      = "child-delegation"
	FlagGroups               = "groups"
	FlagExcludedGroups       = "excluded-groups"
	FlagThreadCount          = "thread-count"
	FlagParallel             = "parallel"
	FlagExportProperties     = "export-properties"
	FlagLogLevel             = "log-level"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	Basedir    string

	Skip              bool
	TestFailureIgnore bool

	Test          string
	Includes      []string
	Excludes      []string
	SuiteXMLFiles []string

	ClassesDirectory     string
	TestClassesDirectory string
	ReportsDirectory     string
	TestSourceDirectory  string
	ClasspathElements    []string
	LocalRepositoryPath  string

	SystemProperties []string
	PluginArtifacts  []string

	PrintSummary bool
	UseFile      bool
	ReportFormat string

	ForkMode             string
	JVM                  string
	ArgLine              string
	EnvironmentVariables []string
	EnvironmentFile      string
	WorkingDirectory     string
	ChildDelegation      bool

	Groups         string
	ExcludedGroups string
	ThreadCount    int
	Parallel       bool

	ExportProperties bool
	LogLevel         string
	Debug            bool
	Quiet            bool
	TestCases        bool
	Progress         bool
	NoTUI            bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile: f.ConfigFile,
		TestCases:  f.TestCases,
		Progress:   f.Progress,
		NoTUI:      f.NoTUI,
		Debug:      f.Debug,
		Quiet:      f.Quiet,
	}
}

// Apply builds the effective configuration into cfg: the base directory first, then the
// config file, then every flag the user set, then derived defaults. changed reports
// whether a flag was given on the command line.
func (f *Flags) Apply(cfg *config.Config, changed func(name string) bool) error {
	cfg.Flags = f.ToConfigFlags()
	if changed(FlagBasedir) {
		cfg.Basedir = f.Basedir
	}

	path, required := cfg.ConfigPath()
	if _, err := os.Stat(path); err == nil || required {
		if err := cfg.LoadFile(path); err != nil {
			return err
		}
	}

	if err := f.override(cfg, changed); err != nil {
		return err
	}

	cfg.ApplyDefaults()
	if err := cfg.LoadEnvFile(); err != nil {
		return err
	}
	return cfg.Validate()
}

func (f *Flags) override(cfg *config.Config, changed func(name string) bool) error {
	setString := func(name string, dst *string, value string) {
		if changed(name) {
			*dst = value
		}
	}
	setBool := func(name string, dst *bool, value bool) {
		if changed(name) {
			*dst = value
		}
	}
	setSlice := func(name string, dst *[]string, value []string) {
		if changed(name) {
			*dst = append([]string(nil), value...)
		}
	}

	setBool(FlagSkip, &cfg.Skip, f.Skip)
	setBool(FlagTestFailureIgnore, &cfg.TestFailureIgnore, f.TestFailureIgnore)
	setString(FlagTest, &cfg.Test, f.Test)
	setSlice(FlagInclude, &cfg.Includes, f.Includes)
	setSlice(FlagExclude, &cfg.Excludes, f.Excludes)
	setSlice(FlagSuiteXMLFile, &cfg.SuiteXMLFiles, f.SuiteXMLFiles)
	setString(FlagClassesDirectory, &cfg.ClassesDirectory, f.ClassesDirectory)
	setString(FlagTestClassesDirectory, &cfg.TestClassesDirectory, f.TestClassesDirectory)
	setString(FlagReportsDirectory, &cfg.ReportsDirectory, f.ReportsDirectory)
	setString(FlagTestSourceDirectory, &cfg.TestSourceDirectory, f.TestSourceDirectory)
	setSlice(FlagClasspath, &cfg.ClasspathElements, f.ClasspathElements)
	setString(FlagLocalRepository, &cfg.LocalRepositoryPath, f.LocalRepositoryPath)
	setBool(FlagPrintSummary, &cfg.PrintSummary, f.PrintSummary)
	setBool(FlagUseFile, &cfg.UseFile, f.UseFile)
	setString(FlagReportFormat, &cfg.ReportFormat, f.ReportFormat)
	setString(FlagForkMode, &cfg.ForkMode, f.ForkMode)
	setString(FlagJVM, &cfg.JVM, f.JVM)
	setString(FlagArgLine, &cfg.ArgLine, f.ArgLine)
	setString(FlagEnvFile, &cfg.EnvironmentFile, f.EnvironmentFile)
	setString(FlagWorkingDirectory, &cfg.WorkingDirectory, f.WorkingDirectory)
	setBool(FlagChildDelegation, &cfg.ChildDelegation, f.ChildDelegation)
	setString(FlagGroups, &cfg.Groups, f.Groups)
	setString(FlagExcludedGroups, &cfg.ExcludedGroups, f.ExcludedGroups)
	setBool(FlagParallel, &cfg.Parallel, f.Parallel)
	setBool(FlagExportProperties, &cfg.ExportProperties, f.ExportProperties)
	setString(FlagLogLevel, &cfg.LogLevel, f.LogLevel)
	if changed(FlagThreadCount) {
		cfg.ThreadCount = f.ThreadCount
	}

	// Map flags add to the config file entries
	if changed(FlagDefine) {
		if err := mergePairs(&cfg.SystemProperties, f.SystemProperties, FlagDefine); err != nil {
			return err
		}
	}
	if changed(FlagEnv) {
		if err := mergePairs(&cfg.EnvironmentVariables, f.EnvironmentVariables, FlagEnv); err != nil {
			return err
		}
	}
	if changed(FlagPluginArtifact) {
		for _, raw := range f.PluginArtifacts {
			artifact, err := ParseArtifact(raw)
			if err != nil {
				return err
			}
			cfg.PluginArtifacts = append(cfg.PluginArtifacts, artifact)
		}
	}
	return nil
}

// ParsePair splits key=value on the first '='. The value is kept verbatim and may be
// empty or contain '='.
func ParsePair(raw string) (string, string, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", raw)
	}
	return key, value, nil
}

// ParseArtifact parses groupId:artifactId:file positionally. Either id may be empty
// and the file may contain ':'.
func ParseArtifact(raw string) (domain.ArtifactRef, error) {
	groupID, rest, ok := strings.Cut(raw, ":")
	artifactID, file, ok2 := strings.Cut(rest, ":")
	if !ok || !ok2 || file == "" || (groupID == "" && artifactID == "") {
		return domain.ArtifactRef{}, &config.ValidationError{
			Field: "--" + FlagPluginArtifact,
			Err:   fmt.Errorf("expected groupId:artifactId:file, got %q", raw),
		}
	}
	return domain.ArtifactRef{GroupID: groupID, ArtifactID: artifactID, File: file}, nil
}

func mergePairs(dst *map[string]string, pairs []string, flag string) error {
	if *dst == nil {
		*dst = make(map[string]string, len(pairs))
	}
	for _, raw := range pairs {
		key, value, err := ParsePair(raw)
		if err != nil {
			return &config.ValidationError{Field: "--" + flag, Err: err}
		}
		(*dst)[key] = value
	}
	return nil
}
