package services

import "github.com/terraincognita07/furrow/internal/models"

// MaturityRange holds normalized days-to-maturity bounds. A pair of zeroes
// means no usable data for that pairing; after normalization min <= max holds
// for every non-empty pair.
type MaturityRange struct {
	DirectSeedMin int
	DirectSeedMax int
	TransplantMin int
	TransplantMax int
}

func NormalizeMaturityRange(directSeedMin, directSeedMax, transplantMin, transplantMax int) MaturityRange {
	normalized := MaturityRange{}
	normalized.DirectSeedMin, normalized.DirectSeedMax = normalizeMaturityPair(directSeedMin, directSeedMax)
	normalized.TransplantMin, normalized.TransplantMax = normalizeMaturityPair(transplantMin, transplantMax)
	return normalized
}

func PlantingMaturityRange(planting models.Planting) MaturityRange {
	return NormalizeMaturityRange(
		planting.DTMDirectSeedMin,
		planting.DTMDirectSeedMax,
		planting.DTMTransplantMin,
		planting.DTMTransplantMax,
	)
}

func normalizeMaturityPair(min, max int) (int, int) {
	if min < 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	if min == 0 {
		min = max
	}
	if max == 0 {
		max = min
	}
	if min > max {
		return max, min
	}
	return min, max
}
