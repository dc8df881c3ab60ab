// Package report builds and renders the shareable estimate document
// from one derived metrics record.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skylens/drone-roi/internal/config"
	"github.com/skylens/drone-roi/pkg/format"
	"github.com/skylens/drone-roi/pkg/mathutil"
	"github.com/skylens/drone-roi/pkg/roi"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report is one rendered estimate: a metrics snapshot plus the branding
// strings and identity it was generated under.
type Report struct {
	ID          string
	GeneratedAt time.Time
	Project     config.ProjectConfig
	Metrics     roi.Metrics

	// HideZeroRows drops zero-valued breakdown rows from the pretty
	// rendering. The CSV and JSON projections always carry all rows.
	HideZeroRows bool
}

// Build creates a report for the given metrics with a fresh identity.
func Build(project config.ProjectConfig, metrics roi.Metrics) Report {
	return BuildAt(project, metrics, uuid.NewString(), time.Now())
}

// BuildAt creates a report with an explicit identity, for callers that
// need reproducible documents.
func BuildAt(project config.ProjectConfig, metrics roi.Metrics, id string, generatedAt time.Time) Report {
	if project.ReportTitle == "" {
		project.ReportTitle = config.DefaultProject().ReportTitle
	}
	return Report{
		ID:          id,
		GeneratedAt: generatedAt,
		Project:     project,
		Metrics:     metrics,
	}
}

// VisibleBreakdown returns the breakdown line items, optionally dropping
// zero-valued entries. Filtering lives here because the engine always
// returns all ten terms.
func VisibleBreakdown(metrics roi.Metrics, hideZero bool) []roi.LineItem {
	if !hideZero {
		return metrics.Breakdown
	}

	visible := make([]roi.LineItem, 0, len(metrics.Breakdown))
	for _, item := range metrics.Breakdown {
		if !mathutil.IsZero(item.Value) {
			visible = append(visible, item)
		}
	}
	return visible
}

// PrettyString renders the report as a human-readable table.
func PrettyString(r Report) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	fmt.Fprintf(&b, "--- %s ---\n", r.Project.ReportTitle)
	if r.Project.CompanyName != "" {
		fmt.Fprintf(&b, "Company:      %s\n", r.Project.CompanyName)
	}
	if r.Project.PreparedBy != "" {
		fmt.Fprintf(&b, "Prepared by:  %s\n", r.Project.PreparedBy)
	}
	if r.Project.PreparedFor != "" {
		fmt.Fprintf(&b, "Prepared for: %s\n", r.Project.PreparedFor)
	}
	fmt.Fprintf(&b, "Report:       %s (%s)\n", r.ID, r.GeneratedAt.Format("2006-01-02"))
	b.WriteString("\n")

	m := r.Metrics
	_, _ = p.Fprintf(&b, "Flights per year: %.0f | Hours saved annually: %.0f | Schedule days saved: %.1f\n\n",
		m.FlightsPerYear, m.HoursSavedAnnual, m.ScheduleDaysSaved)

	fmt.Fprintf(&b, "%-29s | %s\n", "Savings breakdown", "Annual value")
	fmt.Fprintf(&b, "%s | %s\n", strings.Repeat("_", 29), strings.Repeat("_", 12))
	for _, item := range VisibleBreakdown(m, r.HideZeroRows) {
		fmt.Fprintf(&b, "%-29s | %s\n", item.Label, format.Currency(item.Value))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Total savings:      %s\n", format.Currency(m.TotalSavings))
	fmt.Fprintf(&b, "Total costs:        %s\n", format.Currency(m.TotalCosts))
	fmt.Fprintf(&b, "Net annual benefit: %s\n", format.Currency(m.NetAnnual))
	fmt.Fprintf(&b, "ROI:                %s\n", format.Percent(m.ROIRatio))
	fmt.Fprintf(&b, "Payback period:     %s\n", format.Months(m.PaybackMonths))

	if r.Project.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", r.Project.Notes)
	}

	return b.String()
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(r Report) {
	fmt.Print(PrettyString(r))
}

// CsvString renders the report in comma-separated value format.
func CsvString(r Report) string {
	var b strings.Builder

	b.WriteString(`"item","annual_value"` + "\n")
	for _, item := range r.Metrics.Breakdown {
		fmt.Fprintf(&b, "%q,%q\n", item.Label, format.NumericCurrency(item.Value))
	}
	fmt.Fprintf(&b, "%q,%q\n", "Total savings", format.NumericCurrency(r.Metrics.TotalSavings))
	fmt.Fprintf(&b, "%q,%q\n", "Total costs", format.NumericCurrency(r.Metrics.TotalCosts))
	fmt.Fprintf(&b, "%q,%q\n", "Net annual benefit", format.NumericCurrency(r.Metrics.NetAnnual))
	fmt.Fprintf(&b, "%q,%q\n", "ROI", format.Percent(r.Metrics.ROIRatio))
	fmt.Fprintf(&b, "%q,%q\n", "Payback period", format.Months(r.Metrics.PaybackMonths))

	return b.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(r Report) {
	fmt.Print(CsvString(r))
}
