package scatter

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func sampleRecords() []Record {
	return []Record{
		{State: "Alabama", Abbr: "AL", Poverty: 18.2, Age: 38.6, Income: 42830, Healthcare: 13.6},
		{State: "Alaska", Abbr: "AK", Poverty: 11.2, Age: 33.3, Income: 70761, Healthcare: 15},
		{State: "Arizona", Abbr: "AZ", Poverty: 18.2, Age: 36.9, Income: 50068, Healthcare: 14.4},
		{State: "Arkansas", Abbr: "AR", Poverty: 18.9, Age: 37.8, Income: 41262, Healthcare: 16.3},
		{State: "California", Abbr: "CA", Poverty: 16.4, Age: 36.2, Income: 61933, Healthcare: 14.8},
	}
}

func TestXScale(t *testing.T) {
	records := sampleRecords()
	for _, f := range HorizontalFields() {
		t.Run(f.String(), func(t *testing.T) {
			lo, hi, _ := extent(records, f)
			s := XScale(records, f, 620)
			fst, lst := s.Domain()
			if !approx(fst, lo*0.9) || !approx(lst, hi*1.1) {
				t.Errorf("domain mismatch: want [%f, %f], got [%f, %f]", lo*0.9, hi*1.1, fst, lst)
			}
			if rg := s.Range(); rg.F != 0 || rg.T != 620 {
				t.Errorf("range mismatch: want [0, 620], got [%f, %f]", rg.F, rg.T)
			}
			if s.Degenerate() {
				t.Errorf("scale should not be degenerate")
			}
			if got := s.Scale(fst); !approx(got, 0) {
				t.Errorf("lower bound should be mapped to 0, got %f", got)
			}
			if got := s.Scale(lst); !approx(got, 620) {
				t.Errorf("upper bound should be mapped to 620, got %f", got)
			}
		})
	}
}

func TestXScaleTwoRecords(t *testing.T) {
	records := []Record{
		{State: "A", Abbr: "A", Poverty: 10},
		{State: "B", Abbr: "B", Poverty: 20},
	}
	fst, lst := XScale(records, Poverty, 620).Domain()
	if !approx(fst, 9) || !approx(lst, 22) {
		t.Fatalf("domain mismatch: want [9, 22], got [%f, %f]", fst, lst)
	}
}

func TestXScaleIgnoreMissing(t *testing.T) {
	records := []Record{
		{State: "A", Abbr: "A", Poverty: 10},
		{State: "B", Abbr: "B", Poverty: math.NaN()},
		{State: "C", Abbr: "C", Poverty: 20},
	}
	fst, lst := XScale(records, Poverty, 620).Domain()
	if !approx(fst, 9) || !approx(lst, 22) {
		t.Fatalf("domain mismatch: want [9, 22], got [%f, %f]", fst, lst)
	}
}

func TestXScaleDegenerate(t *testing.T) {
	tests := []struct {
		Name    string
		Records []Record
		Domain  [2]float64
	}{
		{
			Name:   "empty",
			Domain: [2]float64{0, 1},
		},
		{
			Name: "all-missing",
			Records: []Record{
				{Abbr: "A", Poverty: math.NaN()},
			},
			Domain: [2]float64{0, 1},
		},
		{
			Name: "zero",
			Records: []Record{
				{Abbr: "A"},
				{Abbr: "B"},
			},
			Domain: [2]float64{-1, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			s := XScale(tt.Records, Poverty, 620)
			if !s.Degenerate() {
				t.Errorf("scale should be degenerate")
			}
			fst, lst := s.Domain()
			if !approx(fst, tt.Domain[0]) || !approx(lst, tt.Domain[1]) {
				t.Errorf("domain mismatch: want %v, got [%f, %f]", tt.Domain, fst, lst)
			}
			if v := s.Scale(fst); math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("degenerate scale should map to finite values, got %f", v)
			}
		})
	}
}

func TestYScale(t *testing.T) {
	records := sampleRecords()
	s := YScale(records, 400)
	fst, lst := s.Domain()
	if !approx(fst, 4.2) || !approx(lst, 16.3*1.1) {
		t.Fatalf("domain mismatch: want [4.2, %f], got [%f, %f]", 16.3*1.1, fst, lst)
	}
	if rg := s.Range(); rg.F != 400 || rg.T != 0 {
		t.Fatalf("range mismatch: want [400, 0], got [%f, %f]", rg.F, rg.T)
	}
	if got := s.Scale(4.2); !approx(got, 400) {
		t.Errorf("floor should be drawn at the bottom, got %f", got)
	}
	if got := s.Scale(lst); !approx(got, 0) {
		t.Errorf("maximum should be drawn at the top, got %f", got)
	}
}

func TestYScaleDegenerate(t *testing.T) {
	tests := []struct {
		Name    string
		Records []Record
	}{
		{
			Name: "empty",
		},
		{
			Name: "all-missing",
			Records: []Record{
				{Abbr: "A", Healthcare: math.NaN()},
			},
		},
		{
			Name: "below-floor",
			Records: []Record{
				{Abbr: "A", Healthcare: 2},
				{Abbr: "B", Healthcare: 3.5},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			s := YScale(tt.Records, 400)
			if !s.Degenerate() {
				t.Errorf("scale should be degenerate")
			}
			fst, lst := s.Domain()
			if !approx(fst, 4.2) || !approx(lst, 5.2) {
				t.Errorf("domain mismatch: want [4.2, 5.2], got [%f, %f]", fst, lst)
			}
			if rg := s.Range(); rg.F != 400 || rg.T != 0 {
				t.Errorf("range mismatch: want [400, 0], got [%f, %f]", rg.F, rg.T)
			}
		})
	}
	if s := YScale(sampleRecords(), 400); s.Degenerate() {
		t.Errorf("scale built from valid records should not be degenerate")
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		Fst   float64
		Lst   float64
		Want  []float64
		Count int
	}{
		{
			Fst:   9,
			Lst:   22,
			Count: 10,
			Want:  []float64{9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22},
		},
		{
			Fst:   0,
			Lst:   1,
			Count: 5,
			Want:  []float64{0, 0.2, 0.4, 0.6, 0.8, 1},
		},
		{
			Fst:   4.2,
			Lst:   17.93,
			Count: 10,
			Want:  []float64{5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
		},
		{
			Fst:   5,
			Lst:   5,
			Count: 10,
			Want:  []float64{5},
		},
	}
	for _, tt := range tests {
		got := NumberDomain(tt.Fst, tt.Lst).Ticks(tt.Count)
		if len(got) != len(tt.Want) {
			t.Errorf("[%f, %f]: ticks count mismatch: want %v, got %v", tt.Fst, tt.Lst, tt.Want, got)
			continue
		}
		for i := range got {
			if !approx(got[i], tt.Want[i]) {
				t.Errorf("[%f, %f]: tick mismatch at %d: want %f, got %f", tt.Fst, tt.Lst, i, tt.Want[i], got[i])
			}
		}
	}
}
