package scatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// DefaultDuration is the duration shared by the axis and the marker
// transitions.
const DefaultDuration = 1000 * time.Millisecond

// css equivalent of the cubic in-out easing used by At
const easing = "cubic-bezier(0.645, 0.045, 0.355, 1)"

// Transition describes the interpolation of an element from one position
// and opacity to another. Transitions are handed to the browser as css
// animations: the element is drawn at its final state and the animation
// replays the way from the previous one.
type Transition struct {
	Name     string
	From     Point
	To       Point
	Opacity  [2]float64
	Duration time.Duration
	// Hold keeps the final frame once the animation is over. It is set for
	// elements that exit the scene.
	Hold bool
}

func moveTo(name string, from, to Point, duration time.Duration) Transition {
	return Transition{
		Name:     name,
		From:     from,
		To:       to,
		Opacity:  [2]float64{1, 1},
		Duration: duration,
	}
}

func (t Transition) Moving() bool {
	return t.From != t.To || t.Opacity[0] != t.Opacity[1]
}

// At returns the position reached after elapsed time.
func (t Transition) At(elapsed time.Duration) Point {
	if t.Duration <= 0 || elapsed >= t.Duration {
		return t.To
	}
	if elapsed <= 0 {
		return t.From
	}
	x := float64(elapsed) / float64(t.Duration)
	return t.From.Lerp(t.To, cubicInOut(x))
}

func (t Transition) WriteCSS(w io.Writer) error {
	mode := "backwards"
	if t.Hold {
		mode = "both"
	}
	_, err := fmt.Fprintf(w, "@keyframes %[1]s { from { %[2]s } to { %[3]s } }\n#%[1]s { animation: %[1]s %[4]dms %[5]s %[6]s; }\n",
		t.Name,
		frame(t.From, t.Opacity[0]),
		frame(t.To, t.Opacity[1]),
		t.Duration.Milliseconds(),
		easing,
		mode,
	)
	return err
}

func frame(p Point, opacity float64) string {
	return fmt.Sprintf("transform: translate(%spx, %spx); opacity: %s;", formatCSS(p.X), formatCSS(p.Y), formatCSS(opacity))
}

func formatCSS(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func cubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	t = -2*t + 2
	return 1 - t*t*t/2
}

// elementID turns str into a valid css identifier. Runes other than ascii
// letters, digits and '-' are written as their hexadecimal code between
// underscores so that distinct strings give distinct identifiers.
func elementID(prefix, str string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, r := range str {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
			b.WriteString(strconv.FormatInt(int64(r), 16))
			b.WriteByte('_')
		}
	}
	return b.String()
}
