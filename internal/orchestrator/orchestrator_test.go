package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surefire/internal/booter"
	"surefire/internal/classpath"
	"surefire/internal/config"
	"surefire/internal/domain"
	"surefire/internal/exitcodes"
	"surefire/internal/logging"
	"surefire/internal/report"
)

type fakeEngine struct {
	result *domain.RunResult
	err    error
	calls  int
	booter *booter.Booter
}

func (f *fakeEngine) Run(_ context.Context, b *booter.Booter) (*domain.RunResult, error) {
	f.calls++
	f.booter = b
	return f.result, f.err
}

func setup(t *testing.T, engine *fakeEngine, modify func(c *config.Config)) (*Orchestrator, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	basedir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(basedir, "target", "test-classes"), 0755))

	cfg := config.New()
	cfg.Basedir = basedir
	if modify != nil {
		modify(cfg)
	}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	log := logging.New(&out, cfg.Level)
	return New(cfg, log, classpath.NewAssembler(log), booter.NewBuilder(log), engine), &out
}

func TestOrchestrator_Skip(t *testing.T) {
	engine := &fakeEngine{}
	o, out := setup(t, engine, func(c *config.Config) { c.Skip = true })

	require.NoError(t, o.Execute(context.Background()))
	assert.Equal(t, Skipped, o.State())
	assert.Equal(t, "[INFO] Tests are skipped.\n", out.String())
	assert.Zero(t, engine.calls)
}

func TestOrchestrator_NoTests(t *testing.T) {
	engine := &fakeEngine{}
	o, out := setup(t, engine, func(c *config.Config) { c.TestClassesDirectory = "missing" })

	require.NoError(t, o.Execute(context.Background()))
	assert.Equal(t, NoTests, o.State())
	assert.Equal(t, "[INFO] No tests to run.\n", out.String())
	assert.Zero(t, engine.calls)
	_, err := os.Stat(o.config.ReportsDirectory)
	assert.True(t, os.IsNotExist(err), "nothing is written without tests")
}

func TestOrchestrator_NoSuiteFiles(t *testing.T) {
	engine := &fakeEngine{}
	o, _ := setup(t, engine, func(c *config.Config) { c.SuiteXMLFiles = []string{"missing-testng.xml"} })

	require.NoError(t, o.Execute(context.Background()))
	assert.Equal(t, Succeeded, o.State())
	assert.Zero(t, engine.calls)
}

func TestOrchestrator_Succeeded(t *testing.T) {
	engine := &fakeEngine{result: &domain.RunResult{Success: true}}
	o, out := setup(t, engine, func(c *config.Config) {
		c.SystemProperties = map[string]string{"env": "ci"}
	})

	require.NoError(t, o.Execute(context.Background()))
	assert.Equal(t, Succeeded, o.State())
	assert.Equal(t, 1, engine.calls)
	assert.Contains(t, out.String(), "[INFO] Setting reports dir: "+o.config.ReportsDirectory)

	b := engine.booter
	require.NotNil(t, b)
	assert.Nil(t, b.Fork)
	assert.Equal(t, []report.Kind{report.ConsoleReporter, report.BriefFileReporter, report.XMLReporter}, b.Reporters)
	require.Len(t, b.Batteries, 1)
	assert.Equal(t, domain.DirectoryBattery, b.Batteries[0].Kind)
	assert.Equal(t, []string{o.config.TestClassesDirectory, o.config.ClassesDirectory}, b.Classpath)

	basedir, ok := b.SystemProperties.Get(booter.BasedirProperty)
	assert.True(t, ok)
	assert.Equal(t, o.config.Basedir, basedir)
	env, _ := b.SystemProperties.Get("env")
	assert.Equal(t, "ci", env)
}

func TestOrchestrator_FailureIgnored(t *testing.T) {
	engine := &fakeEngine{result: &domain.RunResult{Success: false}}
	o, out := setup(t, engine, func(c *config.Config) { c.TestFailureIgnore = true })

	require.NoError(t, o.Execute(context.Background()))
	assert.Equal(t, FailedTolerated, o.State())
	assert.Contains(t, out.String(), "[ERROR] There are test failures.\n")
}

func TestOrchestrator_FailureFatal(t *testing.T) {
	engine := &fakeEngine{result: &domain.RunResult{Success: false}}
	o, _ := setup(t, engine, nil)

	err := o.Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, FailedFatal, o.State())
	assert.EqualError(t, err, "There are test failures.")
	assert.True(t, IsTestFailure(err))

	var bErr *BuildError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, exitcodes.TestFailure, bErr.ExitCode())
}

func TestOrchestrator_EngineError(t *testing.T) {
	cause := errors.New("java: executable file not found")
	engine := &fakeEngine{err: cause}
	o, _ := setup(t, engine, nil)

	err := o.Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, FailedFatal, o.State())
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsTestFailure(err))

	var bErr *BuildError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, ExecutionMessage, bErr.Message)
	assert.Equal(t, exitcodes.RuntimeError, bErr.ExitCode())
}

func TestOrchestrator_Forking(t *testing.T) {
	engine := &fakeEngine{result: &domain.RunResult{Success: true}}
	o, _ := setup(t, engine, func(c *config.Config) {
		c.ForkMode = "once"
		c.ArgLine = "-Xmx512m"
	})

	require.NoError(t, o.Execute(context.Background()))
	require.NotNil(t, engine.booter.Fork)
	assert.Equal(t, "-Xmx512m", engine.booter.Fork.ArgLine)
	assert.True(t, engine.booter.Fork.ChildDelegation)
	assert.Equal(t, []report.Kind{report.ForkingConsoleReporter, report.BriefFileReporter, report.XMLReporter}, engine.booter.Reporters)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "failed-tolerated", FailedTolerated.String())
	assert.Equal(t, "unknown", State(42).String())
}
