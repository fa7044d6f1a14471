package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surefire/internal/domain"
)

func TestNew(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultBasedir, cfg.Basedir)
	assert.True(t, cfg.PrintSummary)
	assert.True(t, cfg.UseFile)
	assert.True(t, cfg.ChildDelegation)
	assert.Equal(t, "brief", cfg.ReportFormat)
	assert.Equal(t, "none", cfg.ForkMode)
	assert.Equal(t, "java", cfg.JVM)
	assert.Zero(t, cfg.ThreadCount)
	assert.False(t, cfg.Parallel)
}

func TestConfig_ApplyDefaults(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected func(c *Config)
	}{
		{
			name:   "derived directories",
			config: &Config{Basedir: "/project"},
			expected: func(c *Config) {
				assert.Equal(t, "/project/target/classes", c.ClassesDirectory)
				assert.Equal(t, "/project/target/test-classes", c.TestClassesDirectory)
				assert.Equal(t, "/project/target/surefire-reports", c.ReportsDirectory)
				assert.Equal(t, "/project/src/test/java", c.TestSourceDirectory)
			},
		},
		{
			name:   "relative paths resolve against basedir",
			config: &Config{Basedir: "/project", ReportsDirectory: "out/reports", SuiteXMLFiles: []string{"testng.xml"}},
			expected: func(c *Config) {
				assert.Equal(t, "/project/out/reports", c.ReportsDirectory)
				assert.Equal(t, []string{"/project/testng.xml"}, c.SuiteXMLFiles)
			},
		},
		{
			name:   "absolute paths are kept",
			config: &Config{Basedir: "/project", TestClassesDirectory: "/elsewhere/test-classes"},
			expected: func(c *Config) {
				assert.Equal(t, "/elsewhere/test-classes", c.TestClassesDirectory)
			},
		},
		{
			name:   "debug flag",
			config: &Config{Basedir: "/project", LogLevel: "info", Flags: Flags{Debug: true}},
			expected: func(c *Config) {
				assert.Equal(t, "debug", c.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.ApplyDefaults()
			tt.expected(tt.config)
		})
	}
}

func TestConfig_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surefire.yaml")
	content := `
testFailureIgnore: true
test: FooTest,BarTest
includes:
  - "**/*IT.*"
systemProperties:
  env: ci
pluginArtifacts:
  - groupId: junit
    artifactId: junit
    file: /repo/junit.jar
forkMode: pertest
threadCount: 4
parallel: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := New()
	require.NoError(t, cfg.LoadFile(path))
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.TestFailureIgnore)
	assert.Equal(t, "FooTest,BarTest", *cfg.TestFilter())
	assert.Equal(t, []string{"**/*IT.*"}, cfg.Includes)
	assert.Equal(t, map[string]string{"env": "ci"}, cfg.SystemProperties)
	assert.Equal(t, []domain.ArtifactRef{{GroupID: "junit", ArtifactID: "junit", File: "/repo/junit.jar"}}, cfg.PluginArtifacts)
	assert.Equal(t, domain.ForkPerTest, cfg.Fork)
	assert.Equal(t, 4, cfg.ThreadCount)
	assert.True(t, cfg.PrintSummary, "defaults survive keys absent from the file")

	t.Run("unknown key", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("forkmode: once\n"), 0644))
		err := New().LoadFile(bad)
		assert.True(t, IsValidationError(err))
	})

	t.Run("empty file", func(t *testing.T) {
		empty := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(empty, nil, 0644))
		assert.NoError(t, New().LoadFile(empty))
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		field  string
	}{
		{"unknown fork mode", func(c *Config) { c.ForkMode = "always" }, "forkMode"},
		{"unknown report format", func(c *Config) { c.ReportFormat = "html" }, "reportFormat"},
		{"negative thread count", func(c *Config) { c.ThreadCount = -1 }, "threadCount"},
		{"empty basedir", func(c *Config) { c.Basedir = "" }, "basedir"},
		{"artifact without file", func(c *Config) { c.PluginArtifacts = []domain.ArtifactRef{{ArtifactID: "junit"}} }, "pluginArtifacts[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	cfg := New()
	cfg.ReportFormat = "plain"
	cfg.LogLevel = "debug"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.FormatPlain, cfg.Format)
	assert.Equal(t, slog.LevelDebug, cfg.Level)
}

func TestConfig_LoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.env"), []byte("TZ=Europe/Berlin\nDB_URL=jdbc:h2:mem\n"), 0644))

	cfg := &Config{Basedir: dir, EnvironmentFile: "test.env", EnvironmentVariables: map[string]string{"TZ": "UTC"}}
	require.NoError(t, cfg.LoadEnvFile())
	assert.Equal(t, map[string]string{"TZ": "UTC", "DB_URL": "jdbc:h2:mem"}, cfg.EnvironmentVariables)

	missing := &Config{Basedir: dir, EnvironmentFile: "missing.env"}
	assert.Error(t, missing.LoadEnvFile())
}

func TestConfig_TestFilter(t *testing.T) {
	assert.Nil(t, New().TestFilter())
}
