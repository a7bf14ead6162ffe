package scatter

import (
	"math"
)

const (
	padLow  = 0.9
	padHigh = 1.1

	// lowest value shown on the vertical axis
	healthcareFloor = 4.2
)

// XScale builds the horizontal scale for field: the extent of the values
// found in records, padded by 10% on both ends, is mapped onto [0, width].
//
// Missing values are ignored. When no value is left or when the padded
// extent collapses to a single point, the domain falls back to one unit on
// each side of that point and the returned scaler reports Degenerate.
func XScale(records []Record, field Field, width float64) Scaler {
	rg := NewRange(0, width)
	lo, hi, ok := extent(records, field)
	if !ok {
		return fallbackScaler(NumberDomain(0, 1), rg)
	}
	lo, hi = lo*padLow, hi*padHigh
	if lo >= hi {
		return fallbackScaler(NumberDomain(math.Min(lo, hi)-1, math.Max(lo, hi)+1), rg)
	}
	return NumberScaler(NumberDomain(lo, hi), rg)
}

// YScale builds the vertical scale. Its domain starts at a fixed floor
// and ends 10% above the largest healthcare value; it is mapped onto
// [height, 0] so that larger values are drawn higher.
func YScale(records []Record, height float64) Scaler {
	rg := NewRange(height, 0)
	_, hi, ok := extent(records, Vertical)
	if !ok || hi*padHigh <= healthcareFloor {
		return fallbackScaler(NumberDomain(healthcareFloor, healthcareFloor+1), rg)
	}
	return NumberScaler(NumberDomain(healthcareFloor, hi*padHigh), rg)
}

func extent(records []Record, field Field) (float64, float64, bool) {
	var (
		lo    = math.Inf(1)
		hi    = math.Inf(-1)
		found bool
	)
	for _, r := range records {
		v := r.Value(field)
		if IsMissing(v) {
			continue
		}
		found = true
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, found
}
