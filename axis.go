package scatter

import (
	"time"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const (
	FontSize     = 12.0
	DefaultTicks = 10
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// Axis draws the ticks of a Scaler. Each call to Update keeps the scaler
// it replaces so that the ticks can be moved from their previous position
// to the new one.
type Axis struct {
	Ident string
	Orientation
	Ticks          int
	Format         func(float64) string
	Duration       time.Duration
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool

	prev Scaler
	curr Scaler
}

func NewAxis(ident string, orient Orientation, scale Scaler) *Axis {
	return &Axis{
		Ident:          ident,
		Orientation:    orient,
		Ticks:          DefaultTicks,
		Duration:       DefaultDuration,
		WithInnerTicks: true,
		WithLabelTicks: true,
		curr:           scale,
	}
}

// Update replaces the scaler of the axis and returns the axis itself.
func (a *Axis) Update(scale Scaler) *Axis {
	a.prev, a.curr = a.curr, scale
	return a
}

func (a *Axis) Scaler() Scaler {
	return a.curr
}

type tick struct {
	value float64
	label string
	exit  bool
	Transition
}

func (a *Axis) ticks() []tick {
	var (
		list   []tick
		values = a.curr.Ticks(a.Ticks)
		seen   = make(map[string]struct{})
		format = a.format()
	)
	for _, v := range values {
		str := format(v)
		seen[str] = struct{}{}
		list = append(list, a.makeTick(v, str, false))
	}
	if a.prev == nil {
		return list
	}
	for _, v := range a.prev.Ticks(a.Ticks) {
		str := format(v)
		if _, ok := seen[str]; ok {
			continue
		}
		list = append(list, a.makeTick(v, str, true))
	}
	return list
}

func (a *Axis) makeTick(v float64, str string, exit bool) tick {
	var (
		pos = a.position(a.curr, v)
		old = pos
	)
	if a.prev != nil {
		old = a.position(a.prev, v)
	}
	t := tick{
		value:      v,
		label:      str,
		exit:       exit,
		Transition: moveTo(elementID(a.Ident+"-tick-", str), old, pos, a.Duration),
	}
	if exit {
		t.Name += "-exit"
		t.Opacity = [2]float64{1, 0}
		t.Hold = true
	} else if a.prev != nil && !a.hadTick(str) {
		t.Opacity = [2]float64{0, 1}
	}
	return t
}

func (a *Axis) hadTick(str string) bool {
	format := a.format()
	for _, v := range a.prev.Ticks(a.Ticks) {
		if format(v) == str {
			return true
		}
	}
	return false
}

func (a *Axis) position(scale Scaler, v float64) Point {
	if a.Vertical() {
		return NewPoint(0, scale.Scale(v))
	}
	return NewPoint(scale.Scale(v), 0)
}

func (a *Axis) format() func(float64) string {
	if a.Format != nil {
		return a.Format
	}
	return FormatValue
}

// Transitions returns the moves of the ticks since the last Update.
func (a *Axis) Transitions() []Transition {
	var list []Transition
	for _, t := range a.ticks() {
		if t.Moving() {
			list = append(list, t.Transition)
		}
	}
	return list
}

// Render draws the axis at left/top. length is the size of the axis along
// its direction, size the size of the plot area across it.
func (a *Axis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithID(a.Ident), svg.WithTranslate(left, top))
	g.Class = append(g.Class, "axis")
	d := domainLine(a.Orientation, length, svg.NewStroke("black", 1))
	g.Append(d.AsElement())

	font := svg.NewFont(FontSize)
	for _, t := range a.ticks() {
		grp := svg.NewGroup(svg.WithID(t.Name))
		grp.Class = append(grp.Class, "tick")
		grp.Transform = svg.Translate(t.To.X, t.To.Y)

		stroke := d.Stroke
		if t.exit {
			grp.Class = append(grp.Class, "exit")
			grp.Fill = svg.NewFill("black")
			grp.Fill.Opacity = 0
			stroke.Opacity = 0
		}
		if a.WithInnerTicks {
			line := lineTick(a.Orientation, 0, FontSize*0.5, stroke)
			grp.Append(line.AsElement())
		}
		if a.WithLabelTicks && !t.exit {
			text := tickText(a.Orientation, t.label, 0, font)
			grp.Append(text.AsElement())
		}
		if a.WithOuterTicks && !t.exit {
			sk := stroke
			sk.Opacity = 0.05
			line := lineTick(a.Orientation, 0, -size, sk)
			grp.Append(line.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

// Extent returns the first and last tick values of the axis.
func (a *Axis) Extent() (float64, float64) {
	values := a.curr.Ticks(a.Ticks)
	if len(values) == 0 {
		return a.curr.Domain()
	}
	return slices.Fst(values), slices.Lst(values)
}

func domainLine(orient Orientation, length float64, stroke svg.Stroke) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = stroke
	return d
}

func lineTick(orient Orientation, offset, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = offset, FontSize * 0.8
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
