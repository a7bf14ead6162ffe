package scatter

// Point is a position in the coordinate space of the plot area.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Lerp(to Point, t float64) Point {
	return Point{
		X: p.X + (to.X-p.X)*t,
		Y: p.Y + (to.Y-p.Y)*t,
	}
}
