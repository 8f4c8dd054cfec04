package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

// Report limits.
const (
	reportMaxEntries     = 20
	reportMaxSuggestions = 10
)

// reportStyles colours the validation report. A disabled set renders plain text.
type reportStyles struct {
	enabled  bool
	title    lipgloss.Style
	critical lipgloss.Style
	warning  lipgloss.Style
	muted    lipgloss.Style
}

func newReportStyles(enabled bool) reportStyles {
	return reportStyles{
		enabled:  enabled,
		title:    lipgloss.NewStyle().Bold(true),
		critical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s reportStyles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printReport writes a validation report in the console format.
func printReport(w io.Writer, path string, report *domain.ValidationReport, styles reportStyles) {
	fmt.Fprintln(w, styles.render(styles.title, fmt.Sprintf("--- Validating %s ---", path)))
	fmt.Fprintf(w, "Total Questions: %d\n", report.Total)
	fmt.Fprintf(w, "Critical Errors: %s\n", countStyle(styles, styles.critical, report.CriticalCount))
	fmt.Fprintf(w, "Image Warnings:  %s\n", countStyle(styles, styles.warning, report.ImageWarningCount))
	fmt.Fprintf(w, "Content Warnings:%s\n", countStyle(styles, styles.warning, report.ContentWarningCount))

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.render(styles.title, fmt.Sprintf("--- Detailed Report (Top %d Issues) ---", reportMaxEntries)))

	entries := report.PerQuestionIssues
	if len(entries) > reportMaxEntries {
		entries = entries[:reportMaxEntries]
	}
	for _, entry := range entries {
		fmt.Fprintf(w, "ID: %s\n", entry.QuestionID)
		fmt.Fprintf(w, "  Question: %s\n", entry.Preview)
		for _, issue := range entry.Issues {
			fmt.Fprintf(w, "  - %s\n", formatIssue(styles, issue))
		}
		fmt.Fprintln(w, styles.render(styles.muted, strings.Repeat("-", 40)))
	}

	if len(report.HideSuggestions) > 0 {
		ids := report.HideSuggestions
		if len(ids) > reportMaxSuggestions {
			ids = ids[:reportMaxSuggestions]
		}
		fmt.Fprintf(w, "\nSuggest adding these IDs to hidden list: %s...\n", formatIDList(ids))
	}
}

func countStyle(styles reportStyles, style lipgloss.Style, n int) string {
	if n == 0 {
		return "0"
	}
	return styles.render(style, fmt.Sprint(n))
}

func formatIssue(styles reportStyles, issue domain.ValidationIssue) string {
	if issue.Severity == domain.SeverityCritical {
		return styles.render(styles.critical, "[CRITICAL]") + " " + issue.Message
	}
	return styles.render(styles.warning, "[WARN]") + " " + issue.Message
}

// formatIDList renders ids as ['1', '2'].
func formatIDList(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = "'" + id + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
