package roi

import (
	"math"

	"github.com/skylens/drone-roi/pkg/constants"
	"github.com/skylens/drone-roi/pkg/mathutil"
)

// Breakdown labels, in the order the line items always appear.
const (
	LabelLabor         = "Labor hours on site"
	LabelFieldTravel   = "Field travel"
	LabelRework        = "Rework avoided"
	LabelSafety        = "Safety incidents avoided"
	LabelTravelProgram = "Travel program"
	LabelDestructive   = "Destructive investigation"
	LabelDocumentation = "Documentation and QA"
	LabelInsurance     = "Insurance premium"
	LabelSchedule      = "Schedule acceleration revenue"
	LabelWinRate       = "Bid win-rate revenue"
)

// Calculate derives the full metrics record from one snapshot of inputs.
//
// Clamping policy: every rate, cost, and count is floored at zero before
// use; team size and working hours per day are floored at one. The
// revenue-per-day figure falls back to annual construction volume spread
// over 365 days when not supplied directly. Degenerate inputs are
// absorbed, never signaled: the contract is to always produce a number.
func Calculate(in Inputs) Metrics {
	var m Metrics

	// Group 1: operational savings from the per-flight model.
	m.FlightsPerYear = mathutil.NonNegative(in.FlightsPerWeek) * mathutil.NonNegative(in.WeeksPerYear)
	team := mathutil.AtLeast(1, in.TeamMembers)
	hourlyRate := mathutil.NonNegative(in.HourlyRate)

	hoursDelta := mathutil.NonNegative(in.ManualHoursPerFlight) - mathutil.NonNegative(in.DroneHoursPerFlight)
	m.TimeSavedPerFlight = mathutil.NonNegative(hoursDelta) * team
	m.HoursSavedAnnual = m.FlightsPerYear * m.TimeSavedPerFlight

	m.LaborSavings = m.HoursSavedAnnual * hourlyRate
	m.TravelSavings = m.FlightsPerYear * mathutil.NonNegative(in.TravelHoursSavedPerFlight) * hourlyRate * team
	m.ReworkSavings = m.FlightsPerYear *
		mathutil.NonNegative(in.ReworkRateBefore-in.ReworkRateAfter) *
		mathutil.NonNegative(in.AvgReworkCost)
	m.SafetySavings = mathutil.NonNegative(in.IncidentsPerYearBefore-in.IncidentsPerYearAfter) *
		mathutil.NonNegative(in.CostPerIncident)

	m.OpsSavings = m.LaborSavings + m.TravelSavings + m.ReworkSavings + m.SafetySavings

	// Group 2: category-level efficiency savings against separately
	// entered baseline annual spend figures.
	m.TravelProgramSavings = mathutil.NonNegative(in.TravelProgramCost) * mathutil.NonNegative(in.TravelReduction)
	m.DestructiveSavings = mathutil.NonNegative(in.DestructiveInvestigationCost) * mathutil.NonNegative(in.DestructiveReduction)
	m.DocumentationSavings = mathutil.NonNegative(in.DocumentationCost) * mathutil.NonNegative(in.DocumentationReduction)
	m.InsuranceSavings = mathutil.NonNegative(in.InsurancePremium) * mathutil.NonNegative(in.InsuranceReduction)

	m.EfficiencySavings = m.TravelProgramSavings + m.DestructiveSavings + m.DocumentationSavings + m.InsuranceSavings

	// Group 3: revenue gains. The revenue-per-day fallback is lazy: it is
	// only derived when the direct figure clamps to zero.
	m.EffectiveRevenuePerDay = mathutil.NonNegative(in.RevenuePerDay)
	if m.EffectiveRevenuePerDay == 0 {
		m.EffectiveRevenuePerDay = mathutil.NonNegative(in.AvgConstructionCost) *
			mathutil.NonNegative(in.ProjectsPerYear) / constants.DaysPerYear
	}

	m.ScheduleDaysSaved = m.HoursSavedAnnual / mathutil.AtLeast(1, in.WorkingHoursPerDay) *
		mathutil.NonNegative(in.ScheduleAcceleration)
	m.ScheduleRevenueGain = m.EffectiveRevenuePerDay * m.ScheduleDaysSaved

	m.WinRateRevenueGain = mathutil.NonNegative(mathutil.NonNegative(in.AvgConstructionCost) *
		mathutil.NonNegative(in.ProjectsSubmittedForBid) *
		mathutil.NonNegative(in.WinRateUplift))

	m.RevenueGains = m.ScheduleRevenueGain + m.WinRateRevenueGain

	// Aggregation.
	m.TotalSavings = m.OpsSavings + m.EfficiencySavings + m.RevenueGains
	m.TotalCosts = mathutil.NonNegative(in.SoftwareCost) +
		mathutil.NonNegative(in.HardwareCost) +
		mathutil.NonNegative(in.OtherCosts)
	m.NetAnnual = m.TotalSavings - m.TotalCosts

	// Zero cost with savings is an unbounded-ROI case, not an error; zero
	// savings means payback never occurs. Both sentinels are intentional.
	if m.TotalCosts > 0 {
		m.ROIRatio = m.NetAnnual / m.TotalCosts
	} else {
		m.ROIRatio = math.Inf(1)
	}
	if m.TotalSavings > 0 {
		m.PaybackMonths = m.TotalCosts / m.TotalSavings * constants.MonthsPerYear
	} else {
		m.PaybackMonths = math.Inf(1)
	}

	m.Breakdown = []LineItem{
		{Label: LabelLabor, Value: m.LaborSavings},
		{Label: LabelFieldTravel, Value: m.TravelSavings},
		{Label: LabelRework, Value: m.ReworkSavings},
		{Label: LabelSafety, Value: m.SafetySavings},
		{Label: LabelTravelProgram, Value: m.TravelProgramSavings},
		{Label: LabelDestructive, Value: m.DestructiveSavings},
		{Label: LabelDocumentation, Value: m.DocumentationSavings},
		{Label: LabelInsurance, Value: m.InsuranceSavings},
		{Label: LabelSchedule, Value: m.ScheduleRevenueGain},
		{Label: LabelWinRate, Value: m.WinRateRevenueGain},
	}

	return m
}
