package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"surefire/internal/domain"
	"surefire/internal/logging"
)

// Config holds all configuration for a test run
type Config struct {
	Skip              bool `yaml:"skip"`
	TestFailureIgnore bool `yaml:"testFailureIgnore"`

	// Project layout
	Basedir              string   `yaml:"basedir"`
	ClassesDirectory     string   `yaml:"classesDirectory"`
	TestClassesDirectory string   `yaml:"testClassesDirectory"`
	ClasspathElements    []string `yaml:"classpathElements"`
	ReportsDirectory     string   `yaml:"reportsDirectory"`
	TestSourceDirectory  string   `yaml:"testSourceDirectory"`
	LocalRepositoryPath  string   `yaml:"localRepositoryPath"`

	// Test selection. An empty Test means no name filter.
	Test          string   `yaml:"test"`
	Includes      []string `yaml:"includes"`
	Excludes      []string `yaml:"excludes"`
	SuiteXMLFiles []string `yaml:"suiteXmlFiles"`

	SystemProperties map[string]string    `yaml:"systemProperties"`
	PluginArtifacts  []domain.ArtifactRef `yaml:"pluginArtifacts"`

	// Reporting
	PrintSummary bool   `yaml:"printSummary"`
	ReportFormat string `yaml:"reportFormat"`
	UseFile      bool   `yaml:"useFile"`

	// Forking
	ForkMode             string            `yaml:"forkMode"`
	JVM                  string            `yaml:"jvm"`
	ArgLine              string            `yaml:"argLine"`
	EnvironmentVariables map[string]string `yaml:"environmentVariables"`
	EnvironmentFile      string            `yaml:"environmentFile"`
	WorkingDirectory     string            `yaml:"workingDirectory"`
	ChildDelegation      bool              `yaml:"childDelegation"`

	// Runner options
	Groups         string `yaml:"groups"`
	ExcludedGroups string `yaml:"excludedGroups"`
	ThreadCount    int    `yaml:"threadCount"`
	Parallel       bool   `yaml:"parallel"`

	ExportProperties bool   `yaml:"exportProperties"`
	LogLevel         string `yaml:"logLevel"`

	// Set by Validate
	Fork   domain.ForkMode     `yaml:"-"`
	Format domain.ReportFormat `yaml:"-"`
	Level  slog.Level          `yaml:"-"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds options that only exist on the command line
type Flags struct {
	ConfigFile string
	TestCases  bool
	Progress   bool
	NoTUI      bool
	Debug      bool
	Quiet      bool
}

// ValidationError reports an invalid configuration value
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if the error is or wraps a ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return err != nil && errors.As(err, &vErr)
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Basedir:         DefaultBasedir,
		PrintSummary:    true,
		ReportFormat:    DefaultReportFormat,
		UseFile:         true,
		ForkMode:        DefaultForkMode,
		JVM:             DefaultJVM,
		ChildDelegation: true,
		LogLevel:        DefaultLogLevel,
	}
}

// LoadFile merges a YAML file over the current values. Unknown keys are rejected.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return &ValidationError{Field: "config file " + path, Err: err}
	}
	return nil
}

// ConfigPath returns the config file to load and whether it must exist
func (c *Config) ConfigPath() (string, bool) {
	if c.Flags.ConfigFile != "" {
		return c.Flags.ConfigFile, true
	}
	return filepath.Join(c.Basedir, DefaultConfigFile), false
}

// ApplyDefaults fills unset directories from the base directory and makes relative paths absolute against it
func (c *Config) ApplyDefaults() {
	if c.Basedir == "" {
		c.Basedir = DefaultBasedir
	}
	if abs, err := filepath.Abs(c.Basedir); err == nil {
		c.Basedir = abs
	}

	buildDir := filepath.Join(c.Basedir, DefaultBuildDir)
	c.ClassesDirectory = c.orDefault(c.ClassesDirectory, filepath.Join(buildDir, DefaultClassesDir))
	c.TestClassesDirectory = c.orDefault(c.TestClassesDirectory, filepath.Join(buildDir, DefaultTestClassesDir))
	c.ReportsDirectory = c.orDefault(c.ReportsDirectory, filepath.Join(buildDir, DefaultReportsDirName))
	c.TestSourceDirectory = c.orDefault(c.TestSourceDirectory, filepath.Join(c.Basedir, filepath.FromSlash(DefaultTestSourceDir)))

	if c.LocalRepositoryPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.LocalRepositoryPath = filepath.Join(home, filepath.FromSlash(DefaultLocalRepository))
		}
	}
	if c.WorkingDirectory != "" {
		c.WorkingDirectory = c.resolve(c.WorkingDirectory)
	}
	for i, file := range c.SuiteXMLFiles {
		c.SuiteXMLFiles[i] = c.resolve(file)
	}
	if c.Flags.Debug {
		c.LogLevel = "debug"
	} else if c.Flags.Quiet {
		c.LogLevel = "error"
	}
}

// LoadEnvFile merges the dotenv file under the explicit environment variables, which win
func (c *Config) LoadEnvFile() error {
	if c.EnvironmentFile == "" {
		return nil
	}
	env, err := godotenv.Read(c.resolve(c.EnvironmentFile))
	if err != nil {
		return fmt.Errorf("read environment file: %w", err)
	}
	if c.EnvironmentVariables == nil {
		c.EnvironmentVariables = make(map[string]string, len(env))
	}
	for k, v := range env {
		if _, ok := c.EnvironmentVariables[k]; !ok {
			c.EnvironmentVariables[k] = v
		}
	}
	return nil
}

// Validate checks the values and parses the enumerated options
func (c *Config) Validate() error {
	if c.Basedir == "" {
		return &ValidationError{Field: "basedir", Err: errors.New("required")}
	}
	if c.ThreadCount < 0 {
		return &ValidationError{Field: "threadCount", Err: fmt.Errorf("must not be negative, got %d", c.ThreadCount)}
	}

	fork, err := domain.ParseForkMode(c.ForkMode)
	if err != nil {
		return &ValidationError{Field: "forkMode", Err: err}
	}
	format, err := domain.ParseReportFormat(c.ReportFormat)
	if err != nil {
		return &ValidationError{Field: "reportFormat", Err: err}
	}
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return &ValidationError{Field: "logLevel", Err: err}
	}
	for i, a := range c.PluginArtifacts {
		if a.File == "" || (a.GroupID == "" && a.ArtifactID == "") {
			return &ValidationError{Field: fmt.Sprintf("pluginArtifacts[%d]", i), Err: errors.New("needs a file and a groupId or artifactId")}
		}
	}

	c.Fork = fork
	c.Format = format
	c.Level = level
	return nil
}

// TestFilter returns the test-name filter, nil when none is set
func (c *Config) TestFilter() *string {
	if c.Test == "" {
		return nil
	}
	filter := c.Test
	return &filter
}

func (c *Config) orDefault(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return c.resolve(path)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Basedir, path)
}
