package report

import (
	"math"
	"time"

	"github.com/skylens/drone-roi/pkg/format"
	"github.com/skylens/drone-roi/pkg/roi"
)

// MetricsPayload is the JSON-safe projection of a metrics record. JSON
// cannot represent the engine's infinity sentinels, so ROI and payback
// are nullable numbers paired with preformatted display strings.
type MetricsPayload struct {
	FlightsPerYear         float64 `json:"flightsPerYear"`
	TimeSavedPerFlight     float64 `json:"timeSavedPerFlight"`
	HoursSavedAnnual       float64 `json:"hoursSavedAnnual"`
	EffectiveRevenuePerDay float64 `json:"effectiveRevenuePerDay"`
	ScheduleDaysSaved      float64 `json:"scheduleDaysSaved"`

	OpsSavings        float64 `json:"opsSavings"`
	EfficiencySavings float64 `json:"efficiencySavings"`
	RevenueGains      float64 `json:"revenueGains"`

	TotalSavings float64 `json:"totalSavings"`
	TotalCosts   float64 `json:"totalCosts"`
	NetAnnual    float64 `json:"netAnnual"`

	ROIRatio      *float64 `json:"roiRatio"`
	PaybackMonths *float64 `json:"paybackMonths"`

	TotalSavingsDisplay string `json:"totalSavingsDisplay"`
	TotalCostsDisplay   string `json:"totalCostsDisplay"`
	NetAnnualDisplay    string `json:"netAnnualDisplay"`
	ROIDisplay          string `json:"roiDisplay"`
	PaybackDisplay      string `json:"paybackDisplay"`

	Breakdown []BreakdownItem `json:"breakdown"`
}

// BreakdownItem is one savings line item with its display string.
type BreakdownItem struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// ReportPayload is the JSON projection of a full report document.
type ReportPayload struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Title       string         `json:"title"`
	CompanyName string         `json:"companyName,omitempty"`
	PreparedBy  string         `json:"preparedBy,omitempty"`
	PreparedFor string         `json:"preparedFor,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	Metrics     MetricsPayload `json:"metrics"`
	Pretty      string         `json:"pretty"`
	CSV         string         `json:"csv"`
}

// NewMetricsPayload converts a metrics record into its JSON-safe form.
func NewMetricsPayload(m roi.Metrics) MetricsPayload {
	payload := MetricsPayload{
		FlightsPerYear:         m.FlightsPerYear,
		TimeSavedPerFlight:     m.TimeSavedPerFlight,
		HoursSavedAnnual:       m.HoursSavedAnnual,
		EffectiveRevenuePerDay: m.EffectiveRevenuePerDay,
		ScheduleDaysSaved:      m.ScheduleDaysSaved,

		OpsSavings:        m.OpsSavings,
		EfficiencySavings: m.EfficiencySavings,
		RevenueGains:      m.RevenueGains,

		TotalSavings: m.TotalSavings,
		TotalCosts:   m.TotalCosts,
		NetAnnual:    m.NetAnnual,

		TotalSavingsDisplay: format.Currency(m.TotalSavings),
		TotalCostsDisplay:   format.Currency(m.TotalCosts),
		NetAnnualDisplay:    format.Currency(m.NetAnnual),
		ROIDisplay:          format.Percent(m.ROIRatio),
		PaybackDisplay:      format.Months(m.PaybackMonths),
	}

	if !math.IsInf(m.ROIRatio, 0) {
		v := m.ROIRatio
		payload.ROIRatio = &v
	}
	if !math.IsInf(m.PaybackMonths, 0) {
		v := m.PaybackMonths
		payload.PaybackMonths = &v
	}

	payload.Breakdown = make([]BreakdownItem, 0, len(m.Breakdown))
	for _, item := range m.Breakdown {
		payload.Breakdown = append(payload.Breakdown, BreakdownItem{
			Label:   item.Label,
			Value:   item.Value,
			Display: format.Currency(item.Value),
		})
	}

	return payload
}

// NewReportPayload converts a report into its JSON-safe form, including
// the pretty and CSV renderings for clients that export directly.
func NewReportPayload(r Report) ReportPayload {
	return ReportPayload{
		ID:          r.ID,
		GeneratedAt: r.GeneratedAt,
		Title:       r.Project.ReportTitle,
		CompanyName: r.Project.CompanyName,
		PreparedBy:  r.Project.PreparedBy,
		PreparedFor: r.Project.PreparedFor,
		Notes:       r.Project.Notes,
		Metrics:     NewMetricsPayload(r.Metrics),
		Pretty:      PrettyString(r),
		CSV:         CsvString(r),
	}
}
