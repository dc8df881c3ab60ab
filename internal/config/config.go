// Package config defines the input record driving the estimate and
// includes functions for loading, defaulting, and validating it.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for drone-roi.
type Configuration struct {
	Project ProjectConfig
	Inputs  InputRecord
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format       string `yaml:"format,omitempty"`       // pretty, csv, json
	HideZeroRows bool   `yaml:"hideZeroRows,omitempty"` // drop zero-valued rows from the pretty table
}

// ProjectConfig holds branding strings consumed only by the report
// renderer; they never influence the calculation.
type ProjectConfig struct {
	CompanyName string `json:"companyName" yaml:"companyName"`
	PreparedBy  string `json:"preparedBy" yaml:"preparedBy"`
	PreparedFor string `json:"preparedFor" yaml:"preparedFor"`
	ReportTitle string `json:"reportTitle" yaml:"reportTitle"`
	Notes       string `json:"notes" yaml:"notes"`
}

// InputRecord is the raw, user-facing input schema. Percentage fields
// (the Pct suffix) are entered on a 0-100 scale and converted to
// fractional rates at the engine boundary; see EngineInputs. The record
// is always complete: unset keys are filled from defaults at load time.
type InputRecord struct {
	FlightsPerWeek            float64 `json:"flightsPerWeek" yaml:"flightsPerWeek"`
	WeeksPerYear              float64 `json:"weeksPerYear" yaml:"weeksPerYear"`
	TeamMembers               float64 `json:"teamMembers" yaml:"teamMembers"`
	ManualHoursPerFlight      float64 `json:"manualHoursPerFlight" yaml:"manualHoursPerFlight"`
	DroneHoursPerFlight       float64 `json:"droneHoursPerFlight" yaml:"droneHoursPerFlight"`
	HourlyRate                float64 `json:"hourlyRate" yaml:"hourlyRate"`
	TravelHoursSavedPerFlight float64 `json:"travelHoursSavedPerFlight" yaml:"travelHoursSavedPerFlight"`
	ReworkRateBeforePct       float64 `json:"reworkRateBeforePct" yaml:"reworkRateBeforePct"`
	ReworkRateAfterPct        float64 `json:"reworkRateAfterPct" yaml:"reworkRateAfterPct"`
	AvgReworkCost             float64 `json:"avgReworkCost" yaml:"avgReworkCost"`
	IncidentsPerYearBefore    float64 `json:"incidentsPerYearBefore" yaml:"incidentsPerYearBefore"`
	IncidentsPerYearAfter     float64 `json:"incidentsPerYearAfter" yaml:"incidentsPerYearAfter"`
	CostPerIncident           float64 `json:"costPerIncident" yaml:"costPerIncident"`

	TravelProgramCost            float64 `json:"travelProgramCost" yaml:"travelProgramCost"`
	TravelReductionPct           float64 `json:"travelReductionPct" yaml:"travelReductionPct"`
	DestructiveInvestigationCost float64 `json:"destructiveInvestigationCost" yaml:"destructiveInvestigationCost"`
	DestructiveReductionPct      float64 `json:"destructiveReductionPct" yaml:"destructiveReductionPct"`
	DocumentationCost            float64 `json:"documentationCost" yaml:"documentationCost"`
	DocumentationReductionPct    float64 `json:"documentationReductionPct" yaml:"documentationReductionPct"`
	InsurancePremium             float64 `json:"insurancePremium" yaml:"insurancePremium"`
	InsuranceReductionPct        float64 `json:"insuranceReductionPct" yaml:"insuranceReductionPct"`

	WorkingHoursPerDay      float64 `json:"workingHoursPerDay" yaml:"workingHoursPerDay"`
	ScheduleAccelerationPct float64 `json:"scheduleAccelerationPct" yaml:"scheduleAccelerationPct"`
	RevenuePerDay           float64 `json:"revenuePerDay" yaml:"revenuePerDay"`
	AvgConstructionCost     float64 `json:"avgConstructionCost" yaml:"avgConstructionCost"`
	ProjectsPerYear         float64 `json:"projectsPerYear" yaml:"projectsPerYear"`
	ProjectsSubmittedForBid float64 `json:"projectsSubmittedForBid" yaml:"projectsSubmittedForBid"`
	WinRateUpliftPct        float64 `json:"winRateUpliftPct" yaml:"winRateUpliftPct"`

	SoftwareCost float64 `json:"softwareCost" yaml:"softwareCost"`
	HardwareCost float64 `json:"hardwareCost" yaml:"hardwareCost"`
	OtherCosts   float64 `json:"otherCosts" yaml:"otherCosts"`
}

// DefaultInputs returns the complete default input record. Every key of
// the schema has a well-defined default so a freshly loaded record never
// has partial or missing state.
func DefaultInputs() InputRecord {
	return InputRecord{
		FlightsPerWeek:            5,
		WeeksPerYear:              48,
		TeamMembers:               2,
		ManualHoursPerFlight:      3,
		DroneHoursPerFlight:       1,
		HourlyRate:                75,
		TravelHoursSavedPerFlight: 1.5,
		ReworkRateBeforePct:       8,
		ReworkRateAfterPct:        3,
		AvgReworkCost:             2500,
		IncidentsPerYearBefore:    2,
		IncidentsPerYearAfter:     0.5,
		CostPerIncident:           15000,

		TravelProgramCost:            45000,
		TravelReductionPct:           30,
		DestructiveInvestigationCost: 25000,
		DestructiveReductionPct:      50,
		DocumentationCost:            30000,
		DocumentationReductionPct:    25,
		InsurancePremium:             60000,
		InsuranceReductionPct:        10,

		WorkingHoursPerDay:      8,
		ScheduleAccelerationPct: 15,
		RevenuePerDay:           0, // derived from construction volume when zero
		AvgConstructionCost:     2000000,
		ProjectsPerYear:         12,
		ProjectsSubmittedForBid: 30,
		WinRateUpliftPct:        2,

		SoftwareCost: 12000,
		HardwareCost: 20000,
		OtherCosts:   5000,
	}
}

// DefaultProject returns the default branding strings.
func DefaultProject() ProjectConfig {
	return ProjectConfig{
		ReportTitle: "Aerial Workflow ROI Estimate",
	}
}

// DefaultConfiguration returns a complete configuration with every input
// key at its default.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Project: DefaultProject(),
		Inputs:  DefaultInputs(),
	}
}

// LoadConfiguration takes a file path as input and loads the
// YAML-formatted configuration there. Keys absent from the file keep
// their defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from
// an in-memory source, e.g. an uploaded document.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	configuration := DefaultConfiguration()
	if err := v.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return configuration, nil
}

// ValidateConfiguration performs general validation of the input record
// and returns warnings. Problems reported here never block computation;
// the engine clamps every offending value, so warnings only explain why
// a figure will not contribute what the user might expect.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	in := c.Inputs
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"flightsPerWeek", in.FlightsPerWeek},
		{"weeksPerYear", in.WeeksPerYear},
		{"manualHoursPerFlight", in.ManualHoursPerFlight},
		{"droneHoursPerFlight", in.DroneHoursPerFlight},
		{"hourlyRate", in.HourlyRate},
		{"travelHoursSavedPerFlight", in.TravelHoursSavedPerFlight},
		{"reworkRateBeforePct", in.ReworkRateBeforePct},
		{"reworkRateAfterPct", in.ReworkRateAfterPct},
		{"avgReworkCost", in.AvgReworkCost},
		{"incidentsPerYearBefore", in.IncidentsPerYearBefore},
		{"incidentsPerYearAfter", in.IncidentsPerYearAfter},
		{"costPerIncident", in.CostPerIncident},
		{"travelProgramCost", in.TravelProgramCost},
		{"travelReductionPct", in.TravelReductionPct},
		{"destructiveInvestigationCost", in.DestructiveInvestigationCost},
		{"destructiveReductionPct", in.DestructiveReductionPct},
		{"documentationCost", in.DocumentationCost},
		{"documentationReductionPct", in.DocumentationReductionPct},
		{"insurancePremium", in.InsurancePremium},
		{"insuranceReductionPct", in.InsuranceReductionPct},
		{"scheduleAccelerationPct", in.ScheduleAccelerationPct},
		{"revenuePerDay", in.RevenuePerDay},
		{"avgConstructionCost", in.AvgConstructionCost},
		{"projectsPerYear", in.ProjectsPerYear},
		{"projectsSubmittedForBid", in.ProjectsSubmittedForBid},
		{"winRateUpliftPct", in.WinRateUpliftPct},
		{"softwareCost", in.SoftwareCost},
		{"hardwareCost", in.HardwareCost},
		{"otherCosts", in.OtherCosts},
	} {
		if field.value < 0 {
			warnings = append(warnings, fmt.Sprintf("Input '%s' is negative (%.2f) and will be floored at zero", field.name, field.value))
		}
	}

	for _, field := range []struct {
		name  string
		value float64
	}{
		{"reworkRateBeforePct", in.ReworkRateBeforePct},
		{"reworkRateAfterPct", in.ReworkRateAfterPct},
		{"travelReductionPct", in.TravelReductionPct},
		{"destructiveReductionPct", in.DestructiveReductionPct},
		{"documentationReductionPct", in.DocumentationReductionPct},
		{"insuranceReductionPct", in.InsuranceReductionPct},
		{"scheduleAccelerationPct", in.ScheduleAccelerationPct},
		{"winRateUpliftPct", in.WinRateUpliftPct},
	} {
		if field.value > 100 {
			warnings = append(warnings, fmt.Sprintf("Input '%s' exceeds 100%% (%.2f)", field.name, field.value))
		}
	}

	if in.TeamMembers < 1 {
		warnings = append(warnings, fmt.Sprintf("Input 'teamMembers' is below 1 (%.2f) and will be raised to 1", in.TeamMembers))
	}
	if in.WorkingHoursPerDay < 1 {
		warnings = append(warnings, fmt.Sprintf("Input 'workingHoursPerDay' is below 1 (%.2f) and will be raised to 1", in.WorkingHoursPerDay))
	}
	if in.DroneHoursPerFlight > in.ManualHoursPerFlight {
		warnings = append(warnings, "Input 'droneHoursPerFlight' exceeds 'manualHoursPerFlight' - labor savings will be zero")
	}
	if in.HourlyRate == 0 {
		warnings = append(warnings, "Input 'hourlyRate' is zero - labor and field travel savings will be zero")
	}
	if in.SoftwareCost <= 0 && in.HardwareCost <= 0 && in.OtherCosts <= 0 {
		warnings = append(warnings, "No program costs configured - ROI will be unbounded")
	}

	return warnings
}
