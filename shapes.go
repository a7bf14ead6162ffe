package scatter

import (
	"github.com/midbel/svg"
)

func getCircle(style Style, title string) svg.Circle {
	ci := svg.NewCircle(svg.WithRadius(style.Marker.Radius))
	ci.Pos = svg.NewPos(0, 0)
	ci.Fill = svg.NewFill(style.Marker.Fill)
	ci.Fill.Opacity = style.Marker.Opacity
	ci.Title = title
	return ci
}

func getMarkerText(style Style, str string) svg.Group {
	grp := svg.NewGroup()
	grp.Class = append(grp.Class, classText)
	grp.Fill = svg.NewFill(style.Text.Color)

	text := svg.NewText(str)
	text.Pos = svg.NewPos(0, 0)
	text.Font = svg.NewFont(style.Text.Size)
	text.Anchor = "middle"
	text.Baseline = "central"
	grp.Append(text.AsElement())
	return grp
}
