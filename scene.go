package scatter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/midbel/svg"
)

var ErrEmpty = errors.New("no records")

// Scene is the retained model of the chart: the scales, the axes and one
// marker per record. It is not safe for concurrent use.
type Scene struct {
	Layout
	Duration time.Duration

	field   Field
	records []Record
	x       Scaler
	y       Scaler
	xaxis   *Axis
	yaxis   *Axis
	markers *Markers
	tips    *Tooltips
}

// NewScene draws the initial chart for field. The vertical scale is
// computed once and kept for the lifetime of the scene.
func NewScene(records []Record, layout Layout, field Field) (*Scene, error) {
	if !field.Horizontal() {
		return nil, fmt.Errorf("%w: %s can not be used on the horizontal axis", ErrField, field)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	s := Scene{
		Layout:   layout,
		Duration: DefaultDuration,
		field:    field,
		records:  records,
		tips:     &Tooltips{},
	}
	s.x = XScale(records, field, layout.DrawingWidth())
	s.y = YScale(records, layout.DrawingHeight())

	s.xaxis = NewAxis("x-axis", OrientBottom, s.x)
	s.yaxis = NewAxis("y-axis", OrientLeft, s.y)
	s.markers = NewMarkers(records, s.x, s.y, field)
	s.tips.Bind(s.markers, field)
	return &s, nil
}

func (s *Scene) Field() Field {
	return s.field
}

func (s *Scene) X() Scaler {
	return s.x
}

func (s *Scene) Y() Scaler {
	return s.y
}

func (s *Scene) Markers() *Markers {
	return s.markers
}

func (s *Scene) Tooltips() *Tooltips {
	return s.tips
}

func (s *Scene) Records() []Record {
	return s.records
}

func (s *Scene) rescale(field Field) Scaler {
	s.field = field
	s.x = XScale(s.records, field, s.DrawingWidth())
	return s.x
}

func (s *Scene) renderAxis(scale Scaler) *Axis {
	s.xaxis.Duration = s.Duration
	return s.xaxis.Update(scale)
}

func (s *Scene) renderMarkers(scale Scaler, field Field) *Markers {
	s.markers.Duration = s.Duration
	return s.markers.Update(scale, field)
}

func (s *Scene) bindTooltips(field Field) *Tooltips {
	return s.tips.Bind(s.markers, field)
}

// Transitions lists the transitions started by the last change of the
// selected field: the ticks of the horizontal axis first, then the
// markers.
func (s *Scene) Transitions() []Transition {
	list := s.xaxis.Transitions()
	return append(list, s.markers.Transitions()...)
}

// Stylesheet returns the css animations replaying the last transitions.
func (s *Scene) Stylesheet() string {
	var str strings.Builder
	for _, t := range s.Transitions() {
		t.WriteCSS(&str)
	}
	return str.String()
}

// Render writes the chart as a standalone svg document in its final
// state.
func (s *Scene) Render(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(s.Width, s.Height))
	el.OmitProlog = true
	el.Append(s.drawArea())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (s *Scene) drawArea() svg.Element {
	var (
		width  = s.DrawingWidth()
		height = s.DrawingHeight()
		area   = svg.NewGroup(svg.WithID("chart"), svg.WithTranslate(s.Padding.Left, s.Padding.Top))
	)
	area.Class = append(area.Class, "area")
	area.Append(s.xaxis.Render(width, height, 0, height))
	area.Append(s.yaxis.Render(height, width, 0, 0))
	area.Append(s.markers.Element())
	area.Append(s.drawLabels(width, height))
	return area.AsElement()
}

func (s *Scene) drawLabels(width, height float64) svg.Element {
	grp := svg.NewGroup(svg.WithID("labels"))

	xs := svg.NewGroup(svg.WithTranslate(width/2, height+20))
	for i, f := range HorizontalFields() {
		g := axisLabel(f, s.field == f)
		g.Transform = svg.Translate(0, float64(i+1)*20)
		xs.Append(g.AsElement())
	}
	grp.Append(xs.AsElement())

	ys := axisLabel(Vertical, true)
	ys.Transform = svg.Translate(40-s.Padding.Left, height/2)
	ys.Transform.RA = -90
	grp.Append(ys.AsElement())

	return grp.AsElement()
}

func axisLabel(f Field, active bool) svg.Group {
	grp := svg.NewGroup(svg.WithID("label-" + f.String()))
	if active {
		grp.Class = append(grp.Class, "active")
	} else {
		grp.Class = append(grp.Class, "inactive")
	}
	text := svg.NewText(f.Label())
	text.Font = svg.NewFont(FontSize)
	text.Anchor = "middle"
	grp.Append(text.AsElement())
	return grp
}
