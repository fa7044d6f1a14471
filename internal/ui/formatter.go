package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"surefire/internal/discovery"
	"surefire/internal/report"
)

// Formatter prints discovered tests and stored reports
type Formatter struct {
	out    io.Writer
	parser *discovery.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer, parser *discovery.Parser) *Formatter {
	return &Formatter{
		out:    out,
		parser: parser,
	}
}

// PrintTestList prints the discovered classes of one battery. With showTestCases the
// test methods found in each class's source file are listed under it.
func (f *Formatter) PrintTestList(classes []string, sourceDir string, showTestCases bool) {
	if len(classes) == 0 {
		fmt.Fprintln(f.out, color.YellowString("No test classes found"))
		return
	}

	fmt.Fprintln(f.out, color.GreenString("Found %d test class(es):", len(classes)))

	if !showTestCases {
		for i, class := range classes {
			fmt.Fprintln(f.out, color.CyanString("%s %s", branch(i == len(classes)-1), class))
		}
		return
	}

	for i, class := range classes {
		isLastClass := i == len(classes)-1
		fmt.Fprintln(f.out, color.CyanString("%s %s", branch(isLastClass), class))

		indent := "│   "
		if isLastClass {
			indent = "    "
		}

		cases, err := f.parser.FindTestCases(discovery.SourceFile(sourceDir, class))
		switch {
		case err != nil:
			fmt.Fprintf(f.out, "%s└── %s\n", indent, color.RedString("(source not found)"))
		case len(cases) == 0:
			fmt.Fprintf(f.out, "%s└── %s\n", indent, color.RedString("(no test cases found)"))
		default:
			for j, name := range cases {
				fmt.Fprintf(f.out, "%s%s %s\n", indent, branch(j == len(cases)-1), color.YellowString(name))
			}
		}

		if !isLastClass {
			fmt.Fprintln(f.out)
		}
	}
}

// PrintReports prints a table of stored report suites, failing ones marked
func (f *Formatter) PrintReports(suites []report.Suite) {
	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "Test set", "Tests", "Failures", "Errors", "Skipped", "Time"})

	var failed int
	for _, s := range suites {
		mark := color.GreenString("✓")
		if s.Failed() {
			mark = color.RedString("✗")
			failed++
		}
		t.AppendRow(table.Row{mark, s.Name, s.Tests, s.Failures, s.Errors, s.Skipped, fmt.Sprintf("%.3fs", s.Time)})
	}
	t.Render()

	fmt.Fprintln(f.out)
	if failed == 0 {
		fmt.Fprintln(f.out, color.GreenString("✓ All %d test set(s) passed", len(suites)))
	} else {
		fmt.Fprintln(f.out, color.RedString("✗ %d of %d test set(s) failed", failed, len(suites)))
	}
}

func branch(last bool) string {
	if last {
		return "└──"
	}
	return "├──"
}
