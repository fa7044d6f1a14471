package report

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surefire/internal/domain"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name         string
		useFile      bool
		printSummary bool
		format       domain.ReportFormat
		forking      bool
		expected     []Kind
	}{
		{"file summary brief", true, true, domain.FormatBrief, false, []Kind{ConsoleReporter, BriefFileReporter, XMLReporter}},
		{"file summary brief forking", true, true, domain.FormatBrief, true, []Kind{ForkingConsoleReporter, BriefFileReporter, XMLReporter}},
		{"file plain no summary", true, false, domain.FormatPlain, false, []Kind{FileReporter, XMLReporter}},
		{"file xml only", true, false, domain.FormatXML, true, []Kind{XMLReporter}},
		{"console brief", false, true, domain.FormatBrief, true, []Kind{BriefConsoleReporter, XMLReporter}},
		{"console plain", false, false, domain.FormatPlain, false, []Kind{DetailedConsoleReporter, XMLReporter}},
		{"console xml", false, true, domain.FormatXML, false, []Kind{XMLReporter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Select(tt.useFile, tt.printSummary, tt.format, tt.forking))
		})
	}
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	assert.Len(t, registry.Kinds(), 7)

	_, err := registry.New([]Kind{"HTMLReporter"}, Options{})
	assert.Error(t, err)

	var consumed int
	registry.Register("CountingReporter", func(Options) Reporter { return &counting{n: &consumed} })
	reporters, err := registry.New([]Kind{"CountingReporter"}, Options{})
	require.NoError(t, err)
	require.NoError(t, Multi(reporters).Consume(&domain.TestSetResult{Name: "x"}))
	assert.Equal(t, 1, consumed)
}

type counting struct{ n *int }

func (c *counting) Consume(*domain.TestSetResult) error { *c.n++; return nil }
func (c *counting) Complete(*domain.RunResult) error    { return nil }

func sampleSets() []domain.TestSetResult {
	return []domain.TestSetResult{
		{Name: "com.acme.UserTest", Classes: []string{"com.acme.UserTest"}, Success: true, Tests: 3,
			Output: "OK (3 tests)\n", Duration: 1500 * time.Millisecond},
		{Name: "com.acme.OrderTest", Classes: []string{"com.acme.OrderTest"}, Success: false, Tests: 2, Failures: 1,
			Output: "There was 1 failure:\n1) placesOrder\n", Duration: 250 * time.Millisecond},
	}
}

func TestReporters_Files(t *testing.T) {
	dir := t.TempDir()
	reporters, err := NewRegistry().New(Select(true, false, domain.FormatBrief, false), Options{ReportsDir: dir})
	require.NoError(t, err)

	sets := sampleSets()
	for i := range sets {
		require.NoError(t, Multi(reporters).Consume(&sets[i]))
	}
	require.NoError(t, Multi(reporters).Complete(&domain.RunResult{Sets: sets}))

	passed, err := os.ReadFile(filepath.Join(dir, "com.acme.UserTest.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(passed), "Tests run: 3, Failures: 0")
	assert.NotContains(t, string(passed), "OK (3 tests)")

	failed, err := os.ReadFile(filepath.Join(dir, "com.acme.OrderTest.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(failed), "<<< FAILURE!")
	assert.Contains(t, string(failed), "1) placesOrder")

	data, err := os.ReadFile(filepath.Join(dir, "TEST-com.acme.OrderTest.xml"))
	require.NoError(t, err)
	var suite Suite
	require.NoError(t, xml.Unmarshal(data, &suite))
	assert.Equal(t, "com.acme.OrderTest", suite.Name)
	assert.Equal(t, 1, suite.Failures)
	assert.True(t, suite.Failed())
	require.Len(t, suite.TestCases, 1)
	assert.NotNil(t, suite.TestCases[0].Failure)
}

func TestReporters_Console(t *testing.T) {
	color.NoColor = true
	sets := sampleSets()

	t.Run("summary console", func(t *testing.T) {
		var out bytes.Buffer
		c := newConsole(&out, false)
		for i := range sets {
			require.NoError(t, c.Consume(&sets[i]))
		}
		require.NoError(t, c.Complete(&domain.RunResult{Sets: sets}))

		assert.Contains(t, out.String(), "Running com.acme.UserTest\n")
		assert.Contains(t, out.String(), "Results :")
		assert.Contains(t, out.String(), "Tests run: 5, Failures: 1, Errors: 0, Skipped: 0\n")
	})

	t.Run("forking console omits running lines", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, newConsole(&out, true).Consume(&sets[0]))
		assert.NotContains(t, out.String(), "Running")
	})

	t.Run("brief console prints failing output only", func(t *testing.T) {
		var out bytes.Buffer
		c := newStreamConsole(&out, false)
		for i := range sets {
			require.NoError(t, c.Consume(&sets[i]))
		}
		assert.NotContains(t, out.String(), "OK (3 tests)")
		assert.Contains(t, out.String(), "1) placesOrder")
	})

	t.Run("detailed console prints all output", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, newStreamConsole(&out, true).Consume(&sets[0]))
		assert.Contains(t, out.String(), "OK (3 tests)")
	})
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "suites_unit_tests", FileName("suites/unit tests"))
}
