package cli

import (
	"fmt"
	"strings"

	"inventory/internal/domain/validation"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent  = lipgloss.Color("#D97706")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	fieldStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dim).
			Padding(0, 1)
)

func renderValidationReport(report *validationReport) string {
	var b strings.Builder

	summary := passStyle.Render(fmt.Sprintf("%d/%d valid", report.Total-report.Failed, report.Total))
	if report.Failed > 0 {
		summary = failStyle.Render(fmt.Sprintf("%d/%d valid", report.Total-report.Failed, report.Total))
	}
	b.WriteString(boxStyle.Render(titleStyle.Render("Product drafts") + "  " + summary))
	b.WriteString("\n")

	for _, r := range report.Results {
		label := r.Name
		if label == "" {
			label = "(unnamed)"
		}
		where := dimStyle.Render(fmt.Sprintf("%s #%d", r.File, r.Index))

		if r.Valid {
			line := fmt.Sprintf("  %s %s  %s", passStyle.Render("✓"), label, where)
			if margin := renderMargin(r.Preview); margin != "" {
				line += "  " + dimStyle.Render(margin)
			}
			b.WriteString(line + "\n")

			continue
		}

		b.WriteString(fmt.Sprintf("  %s %s  %s\n", failStyle.Render("✗"), label, where))
		for _, field := range r.Errors.Fields() {
			b.WriteString(fmt.Sprintf("      %s %s\n", fieldStyle.Render(field+":"), r.Errors[field]))
		}
	}

	return b.String()
}

func renderMargin(p validation.ProfitPreview) string {
	if !p.Computable {
		return ""
	}
	if !p.MarginDefined {
		return "profit Rp " + p.ProfitPerUnit
	}

	return fmt.Sprintf("margin %s%%, profit Rp %s", p.ProfitMargin, p.ProfitPerUnit)
}

func renderPreview(price, cost string, p validation.ProfitPreview) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Profit preview") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", fieldStyle.Render("Price:"), price))
	b.WriteString(fmt.Sprintf("  %s %s\n", fieldStyle.Render("Cost:"), cost))

	if !p.Computable {
		b.WriteString("  " + dimStyle.Render("Enter a price and a cost to see the profit") + "\n")

		return b.String()
	}

	margin := "-"
	if p.MarginDefined {
		margin = p.ProfitMargin + "%"
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", fieldStyle.Render("Profit margin:"), margin))
	b.WriteString(fmt.Sprintf("  %s Rp %s\n", fieldStyle.Render("Profit per unit:"), p.ProfitPerUnit))

	return b.String()
}

func renderWritten(path, size string) string {
	return fmt.Sprintf("  %s %s  %s", passStyle.Render("✓"), path, dimStyle.Render(size))
}

func renderSkipped(name, reason string) string {
	return fmt.Sprintf("  %s %s  %s", dimStyle.Render("-"), name, dimStyle.Render(reason))
}
