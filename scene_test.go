package scatter

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

func newScene(t *testing.T, field Field) *Scene {
	t.Helper()
	s, err := NewScene(sampleRecords(), DefaultLayout(), field)
	if err != nil {
		t.Fatalf("fail to create scene: %s", err)
	}
	return s
}

func samePositions(t *testing.T, want, got map[string]Point) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("markers count mismatch: want %d, got %d", len(want), len(got))
	}
	for k, p := range want {
		g, ok := got[k]
		if !ok {
			t.Errorf("%s: marker not found", k)
			continue
		}
		if !approx(p.X, g.X) || !approx(p.Y, g.Y) {
			t.Errorf("%s: position mismatch: want %v, got %v", k, p, g)
		}
	}
}

func TestDefaultLayout(t *testing.T) {
	c := DefaultLayout()
	if c.DrawingWidth() != 620 || c.DrawingHeight() != 400 {
		t.Fatalf("plot area mismatch: want 620x400, got %fx%f", c.DrawingWidth(), c.DrawingHeight())
	}
	c.Width = 100
	if err := c.Validate(); err == nil {
		t.Fatalf("layout without plot area should be rejected")
	}
}

func TestNewScene(t *testing.T) {
	s := newScene(t, Poverty)
	if s.Field() != Poverty {
		t.Fatalf("field mismatch: want %s, got %s", Poverty, s.Field())
	}
	if n := s.Markers().Len(); n != len(sampleRecords()) {
		t.Fatalf("markers count mismatch: want %d, got %d", len(sampleRecords()), n)
	}
	if ts := s.Transitions(); len(ts) != 0 {
		t.Fatalf("initial scene should not have transitions, got %d", len(ts))
	}
	if _, err := NewScene(nil, DefaultLayout(), Poverty); !errors.Is(err, ErrEmpty) {
		t.Fatalf("empty dataset should be rejected, got %v", err)
	}
	if _, err := NewScene(sampleRecords(), DefaultLayout(), Healthcare); !errors.Is(err, ErrField) {
		t.Fatalf("vertical field should be rejected, got %v", err)
	}
}

func TestSelectIdempotent(t *testing.T) {
	s := newScene(t, Poverty)
	before := s.Markers().Positions()

	c := NewController(s)
	if _, err := c.Select(Poverty); err != nil {
		t.Fatal(err)
	}
	samePositions(t, before, s.Markers().Positions())
	if ts := s.Markers().Transitions(); len(ts) != 0 {
		t.Errorf("markers should not move, got %d transitions", len(ts))
	}
	for _, tr := range s.Transitions() {
		if tr.Moving() {
			t.Errorf("%s: unexpected move from %v to %v", tr.Name, tr.From, tr.To)
		}
	}
}

func TestSelectRoundTrip(t *testing.T) {
	s := newScene(t, Poverty)
	before := s.Markers().Positions()

	c := NewController(s)
	if _, err := c.Select(Age); err != nil {
		t.Fatal(err)
	}
	if c.State() != Age {
		t.Fatalf("state mismatch: want %s, got %s", Age, c.State())
	}
	if ts := s.Markers().Transitions(); len(ts) == 0 {
		t.Fatalf("markers should move when the field changes")
	}
	if _, err := c.Select(Poverty); err != nil {
		t.Fatal(err)
	}
	samePositions(t, before, s.Markers().Positions())
}

func TestSelectKeepVertical(t *testing.T) {
	s := newScene(t, Poverty)
	var (
		fst, lst = s.Y().Domain()
		before   = s.Markers().Positions()
		c        = NewController(s)
	)
	for _, f := range []Field{Age, Income, Poverty} {
		if _, err := c.Select(f); err != nil {
			t.Fatal(err)
		}
		f1, l1 := s.Y().Domain()
		if f1 != fst || l1 != lst {
			t.Errorf("%s: vertical domain changed: [%f, %f] -> [%f, %f]", f, fst, lst, f1, l1)
		}
		for k, p := range s.Markers().Positions() {
			if p.Y != before[k].Y {
				t.Errorf("%s: %s moved vertically", f, k)
			}
		}
	}
	if !approx(fst, 4.2) || !approx(lst, 16.3*1.1) {
		t.Errorf("vertical domain mismatch: got [%f, %f]", fst, lst)
	}
}

func TestSelectMarkerPosition(t *testing.T) {
	s := newScene(t, Poverty)
	if _, err := NewController(s).Select(Income); err != nil {
		t.Fatal(err)
	}
	m, ok := s.Markers().Get("AL")
	if !ok {
		t.Fatalf("AL: marker not found")
	}
	if want := s.X().Scale(42830); !approx(m.Pos.X, want) {
		t.Errorf("horizontal position mismatch: want %f, got %f", want, m.Pos.X)
	}
	if want := s.Y().Scale(13.6); !approx(m.Pos.Y, want) {
		t.Errorf("vertical position mismatch: want %f, got %f", want, m.Pos.Y)
	}
}

func TestSelectInvalid(t *testing.T) {
	c := NewController(newScene(t, Poverty))
	for _, f := range []Field{Healthcare, Obesity, Field("unknown")} {
		if _, err := c.Select(f); !errors.Is(err, ErrField) {
			t.Errorf("%s: expected ErrField, got %v", f, err)
		}
	}
	if c.State() != Poverty {
		t.Errorf("state should not change on invalid click, got %s", c.State())
	}
	if _, err := c.Dispatch(Event{Kind: EventKind(42), Field: Age}); err == nil {
		t.Errorf("unsupported event should be rejected")
	}
}

func TestTooltipsRebind(t *testing.T) {
	var (
		s = newScene(t, Poverty)
		c = NewController(s)
		n = s.Markers().Len()
	)
	for _, f := range []Field{Age, Age, Income} {
		if _, err := c.Select(f); err != nil {
			t.Fatal(err)
		}
	}
	ts := s.Tooltips()
	if ts.Attached() != 4*n || ts.Detached() != 3*n || ts.Live() != n {
		t.Fatalf("bindings mismatch: attached=%d detached=%d live=%d", ts.Attached(), ts.Detached(), ts.Live())
	}
	for _, m := range s.Markers().All() {
		tip, ok := m.Tooltip()
		if !ok {
			t.Errorf("%s: no tooltip bound", m.Key())
			continue
		}
		if tip.Field != Income {
			t.Errorf("%s: tooltip bound to %s", m.Key(), tip.Field)
		}
	}
}

func TestMarkersMissingValue(t *testing.T) {
	records := append(sampleRecords(), Record{State: "Nowhere", Abbr: "NW", Poverty: 12, Age: math.NaN(), Healthcare: 10})
	s, err := NewScene(records, DefaultLayout(), Poverty)
	if err != nil {
		t.Fatal(err)
	}
	m, _ := s.Markers().Get("NW")
	if m.Hidden {
		t.Fatalf("marker should be visible")
	}
	pos := m.Pos
	if _, err := NewController(s).Select(Age); err != nil {
		t.Fatal(err)
	}
	if !m.Hidden {
		t.Errorf("marker without value should be hidden")
	}
	if m.Pos != pos {
		t.Errorf("marker without value should not move")
	}
}

func TestMarkersShownAgain(t *testing.T) {
	records := append(sampleRecords(), Record{State: "Nowhere", Abbr: "NW", Poverty: 12, Age: math.NaN(), Income: 50000, Healthcare: 10})
	s, err := NewScene(records, DefaultLayout(), Poverty)
	if err != nil {
		t.Fatal(err)
	}
	c := NewController(s)
	for _, f := range []Field{Age, Income} {
		if _, err := c.Select(f); err != nil {
			t.Fatal(err)
		}
	}
	m, _ := s.Markers().Get("NW")
	if m.Hidden {
		t.Fatalf("marker should be visible again")
	}
	if m.Prev != m.Pos {
		t.Errorf("marker should not move from a stale position: %v -> %v", m.Prev, m.Pos)
	}
	var found bool
	for _, tr := range s.Markers().Transitions() {
		if tr.Name != m.ID() {
			continue
		}
		found = true
		if tr.Opacity != [2]float64{0, 1} {
			t.Errorf("marker should fade in, got opacity %v", tr.Opacity)
		}
	}
	if !found {
		t.Errorf("marker shown again should have a transition")
	}
	if _, err := c.Select(Poverty); err != nil {
		t.Fatal(err)
	}
	for _, tr := range s.Markers().Transitions() {
		if tr.Name == m.ID() && tr.Opacity != [2]float64{1, 1} {
			t.Errorf("visible marker should not fade again, got opacity %v", tr.Opacity)
		}
	}
}

func TestMarkersDuplicateKey(t *testing.T) {
	records := []Record{
		{State: "A", Abbr: "XX", Poverty: 1, Healthcare: 5},
		{State: "B", Abbr: "XX", Poverty: 2, Healthcare: 6},
	}
	s, err := NewScene(records, DefaultLayout(), Poverty)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Markers().Positions()) != 2 {
		t.Fatalf("records with the same abbreviation should have their own marker")
	}
}

func TestReplay(t *testing.T) {
	base := newScene(t, Poverty).Markers().Positions()
	s, err := Replay(sampleRecords(), DefaultLayout(), Poverty, Age)
	if err != nil {
		t.Fatal(err)
	}
	if s.Field() != Age {
		t.Fatalf("field mismatch: want %s, got %s", Age, s.Field())
	}
	for _, m := range s.Markers().All() {
		if !approx(m.Prev.X, base[m.Key()].X) {
			t.Errorf("%s: transition should start from the previous position", m.Key())
		}
	}
	css := s.Stylesheet()
	if !strings.Contains(css, "@keyframes marker-AL") {
		t.Errorf("stylesheet should animate markers")
	}
	if !strings.Contains(css, "1000ms") {
		t.Errorf("stylesheet should use the default duration")
	}
}

func TestSnapshot(t *testing.T) {
	s := newScene(t, Age)
	snap := s.Snapshot()
	if snap.Field != Age || snap.Label != "Age (Median)" {
		t.Fatalf("field mismatch: got %s (%s)", snap.Field, snap.Label)
	}
	if len(snap.Markers) != len(sampleRecords()) {
		t.Fatalf("markers count mismatch: got %d", len(snap.Markers))
	}
	if snap.Markers[0].Tooltip != "Alabama<br>age: 38.6%<br>Lacks healthcare: 13.6%" {
		t.Errorf("tooltip mismatch: got %q", snap.Markers[0].Tooltip)
	}
	if m := snap.Markers[0]; m.ID != "marker-AL" || m.Heading != "Age (Median)" {
		t.Errorf("marker mismatch: got id=%s heading=%s", m.ID, m.Heading)
	}
}

func TestRender(t *testing.T) {
	var (
		s   = newScene(t, Poverty)
		buf bytes.Buffer
	)
	if err := s.Render(&buf); err != nil {
		t.Fatal(err)
	}
	str := buf.String()
	if !strings.Contains(str, "svg") {
		t.Fatalf("output should be a svg document")
	}
	for _, r := range sampleRecords() {
		if !strings.Contains(str, "marker-"+r.Abbr) {
			t.Errorf("%s: marker not rendered", r.Abbr)
		}
	}
}
