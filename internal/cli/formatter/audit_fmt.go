package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lexiplay/internal/curriculum"
)

// FormatAudit renders an audit report: one row per check, then any issues.
func FormatAudit(report curriculum.AuditReport) string {
	var b strings.Builder

	headers := []string{"CHECK", "RESULT"}
	rows := make([][]string, 0, len(report.Checks))
	for _, name := range curriculum.CheckNames() {
		ok, present := report.Checks[name]
		if !present {
			continue
		}
		result := StyleGreen.Render("✔ ok")
		if !ok {
			result = StyleRed.Render("✘ failed")
		}
		rows = append(rows, []string{Humanize(name), result})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	if report.Valid {
		b.WriteString(StyleGreen.Render("Curriculum is structurally valid.") + "\n")
		return RenderBox("Audit", b.String())
	}

	b.WriteString(StyleRed.Render(fmt.Sprintf("%d issue(s) found", len(report.Issues))) + "\n")
	for _, issue := range report.Issues {
		b.WriteString(StyleYellow.Render("  • "+issue) + "\n")
	}
	return RenderBox("Audit", b.String())
}
