package reporting

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jesthelper/internal/style"
)

var (
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	detailStyle = lipgloss.NewStyle().Faint(true)
)

func consoleStatus(s style.Status) string {
	switch s {
	case style.StatusPass:
		return passStyle.Render("PASS")
	case style.StatusWarning:
		return warnStyle.Render("WARN")
	default:
		return failStyle.Render("FAIL")
	}
}

// ConsoleReport renders a validation report for terminal output.
func ConsoleReport(report style.Report) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(report.File) + "\n\n")

	for _, f := range report.Findings {
		fmt.Fprintf(&sb, "  %s  %s", consoleStatus(f.Status), f.Description)
		if f.Detail != "" {
			sb.WriteString("  " + detailStyle.Render(f.Detail))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\n  %s passed, %s failed, %s warnings\n",
		passStyle.Render(fmt.Sprintf("%d", report.Passed)),
		failStyle.Render(fmt.Sprintf("%d", report.Failed)),
		warnStyle.Render(fmt.Sprintf("%d", report.Warned)),
	)

	if report.Clean() {
		sb.WriteString("\n  " + passStyle.Render("Test file meets all style requirements.") + "\n")
	} else {
		sb.WriteString("\n  " + failStyle.Render("Fix the failed rules before committing.") + "\n")
	}

	return sb.String()
}
