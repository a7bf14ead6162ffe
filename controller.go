package scatter

import (
	"fmt"
)

type EventKind int

const (
	EventClick EventKind = iota
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	default:
		return "unknown"
	}
}

// Event is a user interaction targeting one of the axis labels.
type Event struct {
	Kind  EventKind
	Field Field
}

func Click(f Field) Event {
	return Event{
		Kind:  EventClick,
		Field: f,
	}
}

// Controller owns the selected field of a scene. Its states are the
// horizontal fields; a click on a label moves to the state of that label.
type Controller struct {
	scene *Scene
}

func NewController(scene *Scene) *Controller {
	return &Controller{
		scene: scene,
	}
}

func (c *Controller) State() Field {
	return c.scene.Field()
}

func (c *Controller) Scene() *Scene {
	return c.scene
}

// Dispatch handles one event to completion. On a click, the horizontal
// scale is rebuilt, then the axis, the markers and the tooltips are
// updated, in this order. Clicking the label already selected replays the
// same sequence and leaves the markers in place.
func (c *Controller) Dispatch(e Event) (*Scene, error) {
	switch e.Kind {
	case EventClick:
	default:
		return c.scene, fmt.Errorf("%s: unsupported event", e.Kind)
	}
	if !e.Field.Horizontal() {
		return c.scene, fmt.Errorf("%w: %q can not be selected", ErrField, e.Field)
	}
	scale := c.scene.rescale(e.Field)
	c.scene.renderAxis(scale)
	c.scene.renderMarkers(scale, e.Field)
	c.scene.bindTooltips(e.Field)
	return c.scene, nil
}

func (c *Controller) Select(f Field) (*Scene, error) {
	return c.Dispatch(Click(f))
}

// Replay builds a scene with from selected, then selects to. The returned
// scene carries the transitions between both states.
func Replay(records []Record, layout Layout, from, to Field) (*Scene, error) {
	scene, err := NewScene(records, layout, from)
	if err != nil {
		return nil, err
	}
	return NewController(scene).Select(to)
}
