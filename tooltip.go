package scatter

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

const (
	TooltipClass = "d3-tip"
	lineBreak    = "<br>"
)

// Tooltip is the hover overlay bound to a marker.
type Tooltip struct {
	Record Record
	Field  Field
}

// Heading returns the human readable label of the field the tooltip was
// bound with.
func (t Tooltip) Heading() string {
	return t.Field.Label()
}

// HTML returns the overlay content. The state name is escaped.
func (t Tooltip) HTML() string {
	return tooltipContent(html.EscapeString(t.Record.State), t.Record, t.Field)
}

// Text returns the overlay content as plain text, one line per entry.
func (t Tooltip) Text() string {
	str := tooltipContent(t.Record.State, t.Record, t.Field)
	return strings.ReplaceAll(str, lineBreak, "\n")
}

func (t Tooltip) String() string {
	return t.HTML()
}

func tooltipContent(state string, r Record, f Field) string {
	return fmt.Sprintf("%s%s%s: %s%%%sLacks healthcare: %s%%",
		state,
		lineBreak,
		f,
		FormatValue(r.Value(f)),
		lineBreak,
		FormatValue(r.Healthcare),
	)
}

func FormatValue(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Tooltips binds overlays to markers. Every call to Bind detaches the
// overlays bound by the previous call before attaching new ones, so a
// marker never holds more than one.
type Tooltips struct {
	field    Field
	attached int
	detached int
}

func (ts *Tooltips) Bind(ms *Markers, field Field) *Tooltips {
	for _, m := range ms.All() {
		if m.detach() {
			ts.detached++
		}
		m.attach(Tooltip{
			Record: m.Record,
			Field:  field,
		})
		ts.attached++
	}
	ts.field = field
	return ts
}

// Field returns the field used by the last call to Bind.
func (ts *Tooltips) Field() Field {
	return ts.field
}

// Attached counts the overlays attached since creation.
func (ts *Tooltips) Attached() int {
	return ts.attached
}

// Detached counts the overlays removed since creation.
func (ts *Tooltips) Detached() int {
	return ts.detached
}

// Live counts the overlays currently bound.
func (ts *Tooltips) Live() int {
	return ts.attached - ts.detached
}
