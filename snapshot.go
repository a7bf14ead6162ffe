package scatter

// Snapshot is a serialisable view of a scene.
type Snapshot struct {
	Field   Field            `json:"field"`
	Label   string           `json:"label"`
	XDomain [2]float64       `json:"x_domain"`
	YDomain [2]float64       `json:"y_domain"`
	XTicks  []float64        `json:"x_ticks"`
	Markers []MarkerSnapshot `json:"markers"`
}

type MarkerSnapshot struct {
	Key     string  `json:"key"`
	ID      string  `json:"id"`
	State   string  `json:"state"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	PrevX   float64 `json:"prev_x"`
	Heading string  `json:"heading,omitempty"`
	Tooltip string  `json:"tooltip,omitempty"`
}

func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		Field:  s.field,
		Label:  s.field.Label(),
		XTicks: s.x.Ticks(s.xaxis.Ticks),
	}
	snap.XDomain[0], snap.XDomain[1] = s.x.Domain()
	snap.YDomain[0], snap.YDomain[1] = s.y.Domain()
	for _, m := range s.markers.All() {
		if m.Hidden {
			continue
		}
		ms := MarkerSnapshot{
			Key:   m.Key(),
			ID:    m.ID(),
			State: m.Record.State,
			X:     m.Pos.X,
			Y:     m.Pos.Y,
			PrevX: m.Prev.X,
		}
		if t, ok := m.Tooltip(); ok {
			ms.Heading = t.Heading()
			ms.Tooltip = t.HTML()
		}
		snap.Markers = append(snap.Markers, ms)
	}
	return snap
}
