// Package sharelink serializes the input record to URL query parameters
// and back, so an estimate can be shared as a plain link. The query
// schema is exactly the input record schema; decoding always yields a
// complete record because missing keys fall back to defaults.
package sharelink

import (
	"math"
	"net/url"
	"strconv"

	"github.com/skylens/drone-roi/internal/config"
)

type numericParam struct {
	key   string
	field func(*config.InputRecord) *float64
}

// numericParams enumerates every numeric key of the input schema. Encode
// and Decode both walk this table, which keeps the two directions in
// lockstep.
var numericParams = []numericParam{
	{"flightsPerWeek", func(r *config.InputRecord) *float64 { return &r.FlightsPerWeek }},
	{"weeksPerYear", func(r *config.InputRecord) *float64 { return &r.WeeksPerYear }},
	{"teamMembers", func(r *config.InputRecord) *float64 { return &r.TeamMembers }},
	{"manualHoursPerFlight", func(r *config.InputRecord) *float64 { return &r.ManualHoursPerFlight }},
	{"droneHoursPerFlight", func(r *config.InputRecord) *float64 { return &r.DroneHoursPerFlight }},
	{"hourlyRate", func(r *config.InputRecord) *float64 { return &r.HourlyRate }},
	{"travelHoursSavedPerFlight", func(r *config.InputRecord) *float64 { return &r.TravelHoursSavedPerFlight }},
	{"reworkRateBeforePct", func(r *config.InputRecord) *float64 { return &r.ReworkRateBeforePct }},
	{"reworkRateAfterPct", func(r *config.InputRecord) *float64 { return &r.ReworkRateAfterPct }},
	{"avgReworkCost", func(r *config.InputRecord) *float64 { return &r.AvgReworkCost }},
	{"incidentsPerYearBefore", func(r *config.InputRecord) *float64 { return &r.IncidentsPerYearBefore }},
	{"incidentsPerYearAfter", func(r *config.InputRecord) *float64 { return &r.IncidentsPerYearAfter }},
	{"costPerIncident", func(r *config.InputRecord) *float64 { return &r.CostPerIncident }},
	{"travelProgramCost", func(r *config.InputRecord) *float64 { return &r.TravelProgramCost }},
	{"travelReductionPct", func(r *config.InputRecord) *float64 { return &r.TravelReductionPct }},
	{"destructiveInvestigationCost", func(r *config.InputRecord) *float64 { return &r.DestructiveInvestigationCost }},
	{"destructiveReductionPct", func(r *config.InputRecord) *float64 { return &r.DestructiveReductionPct }},
	{"documentationCost", func(r *config.InputRecord) *float64 { return &r.DocumentationCost }},
	{"documentationReductionPct", func(r *config.InputRecord) *float64 { return &r.DocumentationReductionPct }},
	{"insurancePremium", func(r *config.InputRecord) *float64 { return &r.InsurancePremium }},
	{"insuranceReductionPct", func(r *config.InputRecord) *float64 { return &r.InsuranceReductionPct }},
	{"workingHoursPerDay", func(r *config.InputRecord) *float64 { return &r.WorkingHoursPerDay }},
	{"scheduleAccelerationPct", func(r *config.InputRecord) *float64 { return &r.ScheduleAccelerationPct }},
	{"revenuePerDay", func(r *config.InputRecord) *float64 { return &r.RevenuePerDay }},
	{"avgConstructionCost", func(r *config.InputRecord) *float64 { return &r.AvgConstructionCost }},
	{"projectsPerYear", func(r *config.InputRecord) *float64 { return &r.ProjectsPerYear }},
	{"projectsSubmittedForBid", func(r *config.InputRecord) *float64 { return &r.ProjectsSubmittedForBid }},
	{"winRateUpliftPct", func(r *config.InputRecord) *float64 { return &r.WinRateUpliftPct }},
	{"softwareCost", func(r *config.InputRecord) *float64 { return &r.SoftwareCost }},
	{"hardwareCost", func(r *config.InputRecord) *float64 { return &r.HardwareCost }},
	{"otherCosts", func(r *config.InputRecord) *float64 { return &r.OtherCosts }},
}

type stringParam struct {
	key   string
	field func(*config.ProjectConfig) *string
}

var stringParams = []stringParam{
	{"companyName", func(p *config.ProjectConfig) *string { return &p.CompanyName }},
	{"preparedBy", func(p *config.ProjectConfig) *string { return &p.PreparedBy }},
	{"preparedFor", func(p *config.ProjectConfig) *string { return &p.PreparedFor }},
	{"reportTitle", func(p *config.ProjectConfig) *string { return &p.ReportTitle }},
	{"notes", func(p *config.ProjectConfig) *string { return &p.Notes }},
}

// Encode serializes the record as query parameters, emitting only keys
// that differ from their defaults to keep links short.
func Encode(project config.ProjectConfig, inputs config.InputRecord) url.Values {
	values := url.Values{}

	defaultInputs := config.DefaultInputs()
	for _, param := range numericParams {
		value := *param.field(&inputs)
		if value != *param.field(&defaultInputs) {
			values.Set(param.key, strconv.FormatFloat(value, 'f', -1, 64))
		}
	}

	defaultProject := config.DefaultProject()
	for _, param := range stringParams {
		value := *param.field(&project)
		if value != *param.field(&defaultProject) {
			values.Set(param.key, value)
		}
	}

	return values
}

// Decode rebuilds a complete record from query parameters. Missing keys
// take their defaults; unknown keys and unparseable numbers are ignored
// rather than rejected, since downstream clamping makes any record safe.
func Decode(values url.Values) (config.ProjectConfig, config.InputRecord) {
	inputs := config.DefaultInputs()
	for _, param := range numericParams {
		raw := values.Get(param.key)
		if raw == "" {
			continue
		}
		// ParseFloat accepts "Inf" and "NaN", which no clamping downstream
		// can absorb; treat them as absent like any other bad value.
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil &&
			!math.IsInf(parsed, 0) && !math.IsNaN(parsed) {
			*param.field(&inputs) = parsed
		}
	}

	project := config.DefaultProject()
	for _, param := range stringParams {
		if raw := values.Get(param.key); raw != "" {
			*param.field(&project) = raw
		}
	}

	return project, inputs
}
