package config

import (
	"strings"
	"testing"
)

func TestLoadConfigurationFromReader(t *testing.T) {
	yaml := `
project:
  companyName: Ridgeline Construction
  preparedBy: Operations
inputs:
  flightsPerWeek: 10
  hourlyRate: 95
  softwareCost: 18000
logging:
  level: debug
output:
  format: csv
`

	conf, err := LoadConfigurationFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if conf.Project.CompanyName != "Ridgeline Construction" {
		t.Errorf("CompanyName = %q, expected %q", conf.Project.CompanyName, "Ridgeline Construction")
	}
	if conf.Inputs.FlightsPerWeek != 10 {
		t.Errorf("FlightsPerWeek = %v, expected 10", conf.Inputs.FlightsPerWeek)
	}
	if conf.Inputs.HourlyRate != 95 {
		t.Errorf("HourlyRate = %v, expected 95", conf.Inputs.HourlyRate)
	}
	if conf.Inputs.SoftwareCost != 18000 {
		t.Errorf("SoftwareCost = %v, expected 18000", conf.Inputs.SoftwareCost)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected %q", conf.Logging.Level, "debug")
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected %q", conf.Output.Format, "csv")
	}

	// Keys absent from the document keep their defaults.
	defaults := DefaultInputs()
	if conf.Inputs.WeeksPerYear != defaults.WeeksPerYear {
		t.Errorf("WeeksPerYear = %v, expected default %v", conf.Inputs.WeeksPerYear, defaults.WeeksPerYear)
	}
	if conf.Inputs.AvgConstructionCost != defaults.AvgConstructionCost {
		t.Errorf("AvgConstructionCost = %v, expected default %v", conf.Inputs.AvgConstructionCost, defaults.AvgConstructionCost)
	}
}

func TestLoadConfigurationFromReaderEmpty(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if conf.Inputs != DefaultInputs() {
		t.Error("empty document should yield the default input record")
	}
	if conf.Project.ReportTitle != DefaultProject().ReportTitle {
		t.Errorf("ReportTitle = %q, expected default", conf.Project.ReportTitle)
	}
}

func TestLoadConfigurationFromReaderInvalid(t *testing.T) {
	_, err := LoadConfigurationFromReader(strings.NewReader("inputs: [not, a, map"))
	if err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEngineInputsPercentConversion(t *testing.T) {
	conf := DefaultConfiguration()
	conf.Inputs.TravelReductionPct = 30
	conf.Inputs.WinRateUpliftPct = 2
	conf.Inputs.ReworkRateBeforePct = 8

	engine := conf.EngineInputs()
	if engine.TravelReduction != 0.30 {
		t.Errorf("TravelReduction = %v, expected 0.30", engine.TravelReduction)
	}
	if engine.WinRateUplift != 0.02 {
		t.Errorf("WinRateUplift = %v, expected 0.02", engine.WinRateUplift)
	}
	if engine.ReworkRateBefore != 0.08 {
		t.Errorf("ReworkRateBefore = %v, expected 0.08", engine.ReworkRateBefore)
	}

	// Non-percentage fields pass through unscaled.
	if engine.HourlyRate != conf.Inputs.HourlyRate {
		t.Errorf("HourlyRate = %v, expected %v", engine.HourlyRate, conf.Inputs.HourlyRate)
	}
	if engine.TravelProgramCost != conf.Inputs.TravelProgramCost {
		t.Errorf("TravelProgramCost = %v, expected %v", engine.TravelProgramCost, conf.Inputs.TravelProgramCost)
	}
}

func TestValidateConfigurationCleanRecord(t *testing.T) {
	conf := DefaultConfiguration()
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("default configuration produced warnings: %v", warnings)
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Configuration)
		fragment string
	}{
		{
			name:     "negative cost",
			mutate:   func(c *Configuration) { c.Inputs.SoftwareCost = -100 },
			fragment: "softwareCost",
		},
		{
			name:     "percentage above 100",
			mutate:   func(c *Configuration) { c.Inputs.TravelReductionPct = 150 },
			fragment: "travelReductionPct",
		},
		{
			name:     "team below one",
			mutate:   func(c *Configuration) { c.Inputs.TeamMembers = 0 },
			fragment: "teamMembers",
		},
		{
			name: "drone hours exceed manual hours",
			mutate: func(c *Configuration) {
				c.Inputs.ManualHoursPerFlight = 1
				c.Inputs.DroneHoursPerFlight = 2
			},
			fragment: "droneHoursPerFlight",
		},
		{
			name:     "zero hourly rate",
			mutate:   func(c *Configuration) { c.Inputs.HourlyRate = 0 },
			fragment: "hourlyRate",
		},
		{
			name: "no program costs",
			mutate: func(c *Configuration) {
				c.Inputs.SoftwareCost = 0
				c.Inputs.HardwareCost = 0
				c.Inputs.OtherCosts = 0
			},
			fragment: "unbounded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := DefaultConfiguration()
			tt.mutate(conf)

			warnings := conf.ValidateConfiguration()
			found := false
			for _, warning := range warnings {
				if strings.Contains(warning, tt.fragment) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected a warning mentioning %q, got %v", tt.fragment, warnings)
			}
		})
	}
}
