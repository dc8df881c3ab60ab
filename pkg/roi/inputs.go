// Package roi computes the annual return estimate for adopting a drone
// reality-capture workflow. Calculate is a pure function over a complete
// set of operational inputs; it never errors and never mutates its input.
package roi

// Inputs holds the operational and cost parameters driving the estimate.
// All rate fields are fractional (0.35 means 35%); converting user-facing
// percentages is the caller's responsibility. Values are used as-is except
// for the clamping documented on Calculate, so a partially nonsensical
// record still produces a defined result.
type Inputs struct {
	// Per-flight operational model
	FlightsPerWeek            float64
	WeeksPerYear              float64
	TeamMembers               float64
	ManualHoursPerFlight      float64
	DroneHoursPerFlight       float64
	HourlyRate                float64
	TravelHoursSavedPerFlight float64
	ReworkRateBefore          float64
	ReworkRateAfter           float64
	AvgReworkCost             float64
	IncidentsPerYearBefore    float64
	IncidentsPerYearAfter     float64
	CostPerIncident           float64

	// Category-level efficiency model: baseline annual spend figures and
	// the fraction of each eliminated by the aerial workflow.
	TravelProgramCost            float64
	TravelReduction              float64
	DestructiveInvestigationCost float64
	DestructiveReduction         float64
	DocumentationCost            float64
	DocumentationReduction       float64
	InsurancePremium             float64
	InsuranceReduction           float64

	// Revenue-gain model
	WorkingHoursPerDay      float64
	ScheduleAcceleration    float64
	RevenuePerDay           float64
	AvgConstructionCost     float64
	ProjectsPerYear         float64
	ProjectsSubmittedForBid float64
	WinRateUplift           float64

	// Annual program costs
	SoftwareCost float64
	HardwareCost float64
	OtherCosts   float64
}

// LineItem is one entry of the savings breakdown.
type LineItem struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Metrics is the full set of derived financial figures. Every field is
// finite except ROIRatio (which is +Inf when total costs are zero) and
// PaybackMonths (which is +Inf when total savings are zero).
type Metrics struct {
	// Intermediate quantities
	FlightsPerYear         float64
	TimeSavedPerFlight     float64
	HoursSavedAnnual       float64
	EffectiveRevenuePerDay float64
	ScheduleDaysSaved      float64

	// Operational savings (per-flight model)
	LaborSavings  float64
	TravelSavings float64
	ReworkSavings float64
	SafetySavings float64
	OpsSavings    float64

	// Category-level efficiency savings
	TravelProgramSavings float64
	DestructiveSavings   float64
	DocumentationSavings float64
	InsuranceSavings     float64
	EfficiencySavings    float64

	// Revenue gains
	ScheduleRevenueGain float64
	WinRateRevenueGain  float64
	RevenueGains        float64

	// Aggregates
	TotalSavings  float64
	TotalCosts    float64
	NetAnnual     float64
	ROIRatio      float64
	PaybackMonths float64

	// Breakdown lists all ten individual savings terms in declared order,
	// including zero entries. Filtering is a presentation concern.
	Breakdown []LineItem
}
