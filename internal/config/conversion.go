// Package config defines conversion utilities for configuration objects.
package config

import (
	"github.com/skylens/drone-roi/pkg/mathutil"
	"github.com/skylens/drone-roi/pkg/roi"
)

// EngineInputs converts the user-facing input record into the strongly
// typed engine inputs. Percentage fields become fractional rates here;
// the engine never sees the 0-100 scale. This is the only place the two
// schemas meet.
func (c *Configuration) EngineInputs() roi.Inputs {
	return c.Inputs.EngineInputs()
}

// EngineInputs converts one input record into engine inputs.
func (in InputRecord) EngineInputs() roi.Inputs {
	return roi.Inputs{
		FlightsPerWeek:            in.FlightsPerWeek,
		WeeksPerYear:              in.WeeksPerYear,
		TeamMembers:               in.TeamMembers,
		ManualHoursPerFlight:      in.ManualHoursPerFlight,
		DroneHoursPerFlight:       in.DroneHoursPerFlight,
		HourlyRate:                in.HourlyRate,
		TravelHoursSavedPerFlight: in.TravelHoursSavedPerFlight,
		ReworkRateBefore:          mathutil.FromPercent(in.ReworkRateBeforePct),
		ReworkRateAfter:           mathutil.FromPercent(in.ReworkRateAfterPct),
		AvgReworkCost:             in.AvgReworkCost,
		IncidentsPerYearBefore:    in.IncidentsPerYearBefore,
		IncidentsPerYearAfter:     in.IncidentsPerYearAfter,
		CostPerIncident:           in.CostPerIncident,

		TravelProgramCost:            in.TravelProgramCost,
		TravelReduction:              mathutil.FromPercent(in.TravelReductionPct),
		DestructiveInvestigationCost: in.DestructiveInvestigationCost,
		DestructiveReduction:         mathutil.FromPercent(in.DestructiveReductionPct),
		DocumentationCost:            in.DocumentationCost,
		DocumentationReduction:       mathutil.FromPercent(in.DocumentationReductionPct),
		InsurancePremium:             in.InsurancePremium,
		InsuranceReduction:           mathutil.FromPercent(in.InsuranceReductionPct),

		WorkingHoursPerDay:      in.WorkingHoursPerDay,
		ScheduleAcceleration:    mathutil.FromPercent(in.ScheduleAccelerationPct),
		RevenuePerDay:           in.RevenuePerDay,
		AvgConstructionCost:     in.AvgConstructionCost,
		ProjectsPerYear:         in.ProjectsPerYear,
		ProjectsSubmittedForBid: in.ProjectsSubmittedForBid,
		WinRateUplift:           mathutil.FromPercent(in.WinRateUpliftPct),

		SoftwareCost: in.SoftwareCost,
		HardwareCost: in.HardwareCost,
		OtherCosts:   in.OtherCosts,
	}
}
