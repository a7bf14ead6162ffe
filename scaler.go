package scatter

import (
	"math"
)

type Domain interface {
	Diff(float64) float64
	Extend() float64
	Bounds() (float64, float64)
	Ticks(int) []float64
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Bounds() (float64, float64) {
	return n.fst, n.lst
}

// Ticks returns round values (1, 2 or 5 times a power of ten apart) lying
// inside the domain. The number of values returned is close to c but not
// guaranteed to be equal.
func (n numberDomain) Ticks(c int) []float64 {
	lo, hi := n.fst, n.lst
	if lo > hi {
		lo, hi = hi, lo
	}
	if c <= 0 || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	var (
		step  = tickStep(lo, hi, c)
		start = math.Ceil(lo / step)
		end   = math.Floor(hi / step)
		all   = make([]float64, 0, int(end-start)+1)
	)
	for i := start; i <= end; i++ {
		all = append(all, roundTick(i*step, step))
	}
	return all
}

func tickStep(lo, hi float64, c int) float64 {
	var (
		raw   = (hi - lo) / float64(c)
		power = math.Floor(math.Log10(raw))
		step  = math.Pow(10, power)
		ratio = raw / step
	)
	switch {
	case ratio >= math.Sqrt(50):
		step *= 10
	case ratio >= math.Sqrt(10):
		step *= 5
	case ratio >= math.Sqrt(2):
		step *= 2
	}
	return step
}

func roundTick(v, step float64) float64 {
	if step >= 1 {
		return math.Round(v)
	}
	prec := math.Pow(10, math.Ceil(-math.Log10(step)))
	return math.Round(v*prec) / prec
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

// Scaler maps values of a numeric domain linearly onto a pixel range.
type Scaler interface {
	Scale(float64) float64
	Space() float64
	Ticks(int) []float64
	Domain() (float64, float64)
	Range() Range
	Degenerate() bool
}

type numberScaler struct {
	rg         Range
	dom        Domain
	degenerate bool
}

func NumberScaler(dom Domain, rg Range) Scaler {
	return numberScaler{
		rg:  rg,
		dom: dom,
	}
}

func fallbackScaler(dom Domain, rg Range) Scaler {
	return numberScaler{
		rg:         rg,
		dom:        dom,
		degenerate: true,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return n.rg.F + n.dom.Diff(v)*n.Space()
}

func (n numberScaler) Space() float64 {
	return n.rg.Len() / n.dom.Extend()
}

func (n numberScaler) Ticks(c int) []float64 {
	return n.dom.Ticks(c)
}

func (n numberScaler) Domain() (float64, float64) {
	return n.dom.Bounds()
}

func (n numberScaler) Range() Range {
	return n.rg
}

func (n numberScaler) Degenerate() bool {
	return n.degenerate
}
