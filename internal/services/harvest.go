package services

import "github.com/terraincognita07/furrow/internal/models"

// HarvestWindow is the inclusive predicted harvest date range.
type HarvestWindow struct {
	Start string
	End   string
}

// PredictHarvestWindow computes the predicted harvest window for a planting,
// using "today" only to drop windows that already ended. Absence of enough
// data is not an error: the second return is false and the caller omits the
// event.
//
// Base-date precedence: transplanted, then nursery_seeded, then
// direct_seeded, then the planting's fallback date columns. Nursery sowing
// deliberately uses the direct-seed maturity pairing; that mirrors the
// recorded data model and stays until product intent says otherwise.
func PredictHarvestWindow(planting models.Planting, timeline PlantingTimeline, today string) (HarvestWindow, bool) {
	if planting.Status == models.PlantingStatusHarvested || timeline.Harvested != "" {
		return HarvestWindow{}, false
	}

	maturity := PlantingMaturityRange(planting)
	base, minDays, maxDays := harvestBase(planting, timeline, maturity)
	if base == "" || minDays <= 0 {
		return HarvestWindow{}, false
	}
	if maxDays < minDays {
		maxDays = minDays
	}

	window := HarvestWindow{
		Start: AddDays(base, minDays),
		End:   AddDays(base, maxDays),
	}
	if window.End < today {
		return HarvestWindow{}, false
	}
	return window, true
}

func harvestBase(planting models.Planting, timeline PlantingTimeline, maturity MaturityRange) (string, int, int) {
	switch {
	case timeline.Transplanted != "":
		return timeline.Transplanted, maturity.TransplantMin, maturity.TransplantMax
	case timeline.NurserySeeded != "":
		return timeline.NurserySeeded, maturity.DirectSeedMin, maturity.DirectSeedMax
	case timeline.DirectSeeded != "":
		return timeline.DirectSeeded, maturity.DirectSeedMin, maturity.DirectSeedMax
	case planting.PlantedDate != nil && !planting.PlantedDate.IsZero():
		return CivilDate(*planting.PlantedDate), maturity.TransplantMin, maturity.TransplantMax
	case planting.NurseryStartedDate != nil && !planting.NurseryStartedDate.IsZero():
		return CivilDate(*planting.NurseryStartedDate), maturity.DirectSeedMin, maturity.DirectSeedMax
	default:
		return "", 0, 0
	}
}
