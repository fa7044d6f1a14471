package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"surefire/internal/domain"
)

var failureMark = color.New(color.FgRed, color.Bold)

// summaryLine renders the per-set counts line
func summaryLine(set *domain.TestSetResult) string {
	line := fmt.Sprintf("Tests run: %d, Failures: %d, Errors: %d, Skipped: %d, Time elapsed: %.3f sec",
		set.Tests, set.Failures, set.Errors, set.Skipped, set.Duration.Seconds())
	if !set.Success {
		line += " <<< FAILURE!"
	}
	return line
}

// console prints a line per set and a summary table at the end
type console struct {
	out    io.Writer
	forked bool
}

func newConsole(out io.Writer, forked bool) *console {
	return &console{out: out, forked: forked}
}

func (c *console) Consume(set *domain.TestSetResult) error {
	// A forked child already streams its own progress
	if !c.forked {
		fmt.Fprintf(c.out, "Running %s\n", set.Name)
	}
	line := summaryLine(set)
	if !set.Success {
		line = failureMark.Sprint(line)
	}
	_, err := fmt.Fprintln(c.out, line)
	return err
}

func (c *console) Complete(result *domain.RunResult) error {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Results :")

	if len(result.Sets) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(c.out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Test set", "Tests", "Failures", "Errors", "Skipped", "Time"})
		for _, set := range result.Sets {
			t.AppendRow(table.Row{set.Name, set.Tests, set.Failures, set.Errors, set.Skipped,
				fmt.Sprintf("%.3fs", set.Duration.Seconds())})
		}
		t.Render()
	}

	totals := result.Totals()
	_, err := fmt.Fprintf(c.out, "Tests run: %d, Failures: %d, Errors: %d, Skipped: %d\n\n",
		totals.Tests, totals.Failures, totals.Errors, totals.Skipped)
	return err
}

// streamConsole prints a line per set plus runner output: always when detailed, only for failures otherwise
type streamConsole struct {
	out      io.Writer
	detailed bool
}

func newStreamConsole(out io.Writer, detailed bool) *streamConsole {
	return &streamConsole{out: out, detailed: detailed}
}

func (c *streamConsole) Consume(set *domain.TestSetResult) error {
	fmt.Fprintf(c.out, "Test set: %s\n", set.Name)
	fmt.Fprintln(c.out, summaryLine(set))
	if c.detailed || !set.Success {
		if out := strings.TrimRight(set.Output, "\n"); out != "" {
			fmt.Fprintln(c.out, out)
		}
	}
	return nil
}

func (c *streamConsole) Complete(*domain.RunResult) error {
	return nil
}
