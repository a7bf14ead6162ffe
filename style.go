package scatter

// MarkerFill is the colour of the state circles.
const MarkerFill = "#89bdd3"

// Style controls how markers are drawn.
type Style struct {
	Marker struct {
		Radius  float64
		Fill    string
		Opacity float64
	}
	Text struct {
		Size  float64
		Color string
	}
}

func DefaultStyle() Style {
	var s Style
	s.Marker.Radius = 8
	s.Marker.Fill = MarkerFill
	s.Marker.Opacity = 1
	s.Text.Size = 8
	s.Text.Color = "white"
	return s
}
