package scatter

import (
	"strconv"
	"time"

	"github.com/midbel/svg"
)

const (
	classMarker = "marker"
	classCircle = "stateCircle"
	classText   = "stateText"
)

// Marker is the visual element of one record. Its vertical position is
// set once when the marker is created.
type Marker struct {
	Record Record
	Pos    Point
	Prev   Point
	Hidden bool

	// set when the marker is shown again after being hidden
	entering bool

	key string
	tip *Tooltip
}

func (m *Marker) Key() string {
	return m.key
}

// ID returns the identifier of the svg element drawn for the marker.
func (m *Marker) ID() string {
	return elementID("marker-", m.key)
}

// Tooltip returns the overlay currently bound to the marker, if any.
func (m *Marker) Tooltip() (Tooltip, bool) {
	if m.tip == nil {
		return Tooltip{}, false
	}
	return *m.tip, true
}

func (m *Marker) attach(t Tooltip) {
	m.tip = &t
}

func (m *Marker) detach() bool {
	ok := m.tip != nil
	m.tip = nil
	return ok
}

func (m *Marker) transition(d time.Duration) Transition {
	t := moveTo(m.ID(), m.Prev, m.Pos, d)
	if m.entering {
		t.Opacity = [2]float64{0, 1}
	}
	return t
}

func (m *Marker) element(style Style) svg.Element {
	grp := svg.NewGroup(svg.WithID(m.ID()))
	grp.Class = append(grp.Class, classMarker, classCircle)
	grp.Transform = svg.Translate(m.Pos.X, m.Pos.Y)

	var title string
	if t, ok := m.Tooltip(); ok {
		title = t.Text()
	}
	ci := getCircle(style, title)
	tx := getMarkerText(style, m.Record.Abbr)
	grp.Append(ci.AsElement())
	grp.Append(tx.AsElement())
	return grp.AsElement()
}

// Markers keeps one Marker per record, in the order of the records they
// were created from. Markers are updated in place, never recreated.
type Markers struct {
	Style    Style
	Duration time.Duration

	list  []*Marker
	index map[string]*Marker
}

func NewMarkers(records []Record, x, y Scaler, field Field) *Markers {
	ms := Markers{
		Style:    DefaultStyle(),
		Duration: DefaultDuration,
		index:    make(map[string]*Marker),
	}
	for i, r := range records {
		m := Marker{
			Record: r,
			key:    r.Key(),
		}
		if _, ok := ms.index[m.key]; ok || m.key == "" {
			m.key = m.key + "-" + strconv.Itoa(i)
		}
		var (
			vx = r.Value(field)
			vy = r.Value(Vertical)
		)
		m.Hidden = IsMissing(vx) || IsMissing(vy)
		if !IsMissing(vx) {
			m.Pos.X = x.Scale(vx)
		}
		if !IsMissing(vy) {
			m.Pos.Y = y.Scale(vy)
		}
		m.Prev = m.Pos

		ms.list = append(ms.list, &m)
		ms.index[m.key] = &m
	}
	return &ms
}

// Update moves every marker horizontally to the position given by x for
// the value of field. The vertical position is left untouched. Markers
// without a value for field keep their position and are hidden. Markers
// shown again fade in at their new position.
func (ms *Markers) Update(x Scaler, field Field) *Markers {
	for _, m := range ms.list {
		m.Prev = m.Pos
		v := m.Record.Value(field)
		if IsMissing(v) {
			m.Hidden = true
			m.entering = false
			continue
		}
		hidden := m.Hidden
		m.Hidden = IsMissing(m.Record.Value(Vertical))
		m.Pos.X = x.Scale(v)
		m.entering = hidden && !m.Hidden
		if m.entering {
			m.Prev = m.Pos
		}
	}
	return ms
}

func (ms *Markers) Get(key string) (*Marker, bool) {
	m, ok := ms.index[key]
	return m, ok
}

func (ms *Markers) All() []*Marker {
	return ms.list
}

func (ms *Markers) Len() int {
	return len(ms.list)
}

// Positions returns the current position of every marker by key.
func (ms *Markers) Positions() map[string]Point {
	all := make(map[string]Point, len(ms.list))
	for _, m := range ms.list {
		all[m.key] = m.Pos
	}
	return all
}

func (ms *Markers) Transitions() []Transition {
	var list []Transition
	for _, m := range ms.list {
		if m.Hidden {
			continue
		}
		t := m.transition(ms.Duration)
		if !t.Moving() {
			continue
		}
		list = append(list, t)
	}
	return list
}

func (ms *Markers) Element() svg.Element {
	grp := svg.NewGroup(svg.WithID("markers"))
	for _, m := range ms.list {
		if m.Hidden {
			continue
		}
		grp.Append(m.element(ms.Style))
	}
	return grp.AsElement()
}
