package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"surefire/internal/report"
)

// maxOutputLines bounds the captured output shown for one suite
const maxOutputLines = 200

// Viewer displays stored reports
type Viewer interface {
	View(suites []report.Suite) error
}

// ReportViewer displays report suites in an interactive TUI
type ReportViewer struct {
	out io.Writer
}

// NewReportViewer creates a new ReportViewer. out receives the message printed when
// there is nothing to show.
func NewReportViewer(out io.Writer) *ReportViewer {
	return &ReportViewer{out: out}
}

// View opens the viewer over suites. Failing suites are expected first.
func (rv *ReportViewer) View(suites []report.Suite) error {
	if len(suites) == 0 {
		fmt.Fprintln(rv.out, color.GreenString("✓ No reports found"))
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i := range suites {
		list.AddItem(listItemText(&suites[i], i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	var failed int
	for i := range suites {
		if suites[i].Failed() {
			failed++
		}
	}
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Test reports (%d sets, %d failed) | ↑↓ navigate, → view output, ← back, q or Ctrl+C to exit ", len(suites), failed))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(suites) {
			return
		}
		statsView.SetText(formatSuiteStats(&suites[index]))
		detailsView.SetText(formatSuiteDetails(&suites[index])).ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	updateDetails()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func listItemText(s *report.Suite, index int) string {
	if s.Failed() {
		return fmt.Sprintf("[red]✗ [yellow]%d.[white] %s", index+1, s.Name)
	}
	return fmt.Sprintf("[green]✓ [yellow]%d.[white] %s", index+1, s.Name)
}

// formatSuiteStats formats the header line for a suite using tview color tags
func formatSuiteStats(s *report.Suite) string {
	return fmt.Sprintf("[cyan]set:[white] [yellow]%s[white]  tests: %d  [red]failures: %d  errors: %d[white]  skipped: %d  time: %.3fs\n",
		tview.Escape(s.Name), s.Tests, s.Failures, s.Errors, s.Skipped, s.Time)
}

// formatSuiteDetails lists the suite's cases and the tail of its captured output
func formatSuiteDetails(s *report.Suite) string {
	var b strings.Builder

	b.WriteString("[yellow]Test cases:[white]\n")
	for _, tc := range s.TestCases {
		if tc.Failure != nil {
			fmt.Fprintf(&b, "  [red]✗ %s[white] (%s)\n", tview.Escape(tc.Name), tview.Escape(tc.Failure.Message))
		} else {
			fmt.Fprintf(&b, "  [green]✓[white] %s\n", tview.Escape(tc.Name))
		}
	}

	output := strings.TrimRight(s.SystemOut, "\n")
	if output == "" {
		return b.String()
	}

	lines := strings.Split(output, "\n")
	b.WriteString("\n[yellow]Output:[white]\n")
	if len(lines) > maxOutputLines {
		fmt.Fprintf(&b, "  [gray]... %d earlier lines[white]\n", len(lines)-maxOutputLines)
		lines = lines[len(lines)-maxOutputLines:]
	}
	for _, line := range lines {
		b.WriteString(tview.Escape(line))
		b.WriteString("\n")
	}
	return b.String()
}
