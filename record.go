package scatter

import (
	"math"
)

// Record holds the statistics of one state. Records are created by the
// dataset loader and never modified afterwards.
type Record struct {
	ID    string
	State string
	Abbr  string

	Poverty    float64
	Age        float64
	Income     float64
	Obesity    float64
	Smokes     float64
	Healthcare float64
}

// Value returns the value of the given field. Unknown fields give NaN.
func (r Record) Value(f Field) float64 {
	switch f {
	case Poverty:
		return r.Poverty
	case Age:
		return r.Age
	case Income:
		return r.Income
	case Obesity:
		return r.Obesity
	case Smokes:
		return r.Smokes
	case Healthcare:
		return r.Healthcare
	default:
		return math.NaN()
	}
}

// Key identifies the record in a scene.
func (r Record) Key() string {
	if r.Abbr != "" {
		return r.Abbr
	}
	if r.ID != "" {
		return r.ID
	}
	return r.State
}

// IsMissing reports whether v can not be placed on a scale.
func IsMissing(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
