package server

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/midbel/scatter"
)

const pageStyle = `
body { font-family: sans-serif; }
.chart { width: 80%; margin: 0 auto; }
.stateText { pointer-events: none; }
.active { font-weight: bold; fill: black; }
.inactive { fill: #999; }
.inactive:hover { fill: black; cursor: pointer; }
.labels a { margin-right: 1em; }
.d3-tip { display: none; position: absolute; pointer-events: none; padding: 6px; font-size: 12px; line-height: 1.4; color: white; background: rgba(0, 0, 0, 0.8); border-radius: 4px; text-align: center; transform: translate(-50%, -110%); }
`

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Label}} vs Lacks Healthcare</title>
<style>{{.Base}}</style>
<style>{{.Anim}}</style>
<style>{{.Hover}}</style>
</head>
<body>
<div class="chart" style="position: relative">
{{.SVG}}
{{- range .Tips}}
<div class="{{$.TipClass}}" id="{{.ID}}"><strong>{{.Heading}}</strong><br>{{.Content}}</div>
{{- end}}
<p class="labels">
{{- range .Labels}}
<a href="{{.Href}}" class="{{if .Active}}active{{else}}inactive{{end}}">{{.Label}}</a>
{{- end}}
</p>
</div>
</body>
</html>
`))

type pageLabel struct {
	Href   string
	Label  string
	Active bool
}

type pageTip struct {
	ID      string
	Heading string
	Content template.HTML
}

type pageData struct {
	Label    string
	Base     template.CSS
	Anim     template.CSS
	Hover    template.CSS
	SVG      template.HTML
	TipClass string
	Tips     []pageTip
	Labels   []pageLabel
}

func executePage(w io.Writer, res *rendered, layout scatter.Layout) error {
	data := pageData{
		Label:    res.Field.Label(),
		Base:     template.CSS(pageStyle),
		Anim:     template.CSS(res.CSS),
		SVG:      template.HTML(res.SVG),
		TipClass: scatter.TooltipClass,
	}
	var hover strings.Builder
	for _, m := range res.Snap.Markers {
		if m.Tooltip == "" {
			continue
		}
		tip := pageTip{
			ID:      "tip-" + m.ID,
			Heading: m.Heading,
			Content: template.HTML(m.Tooltip),
		}
		data.Tips = append(data.Tips, tip)
		writeHover(&hover, m, tip.ID, layout)
	}
	data.Hover = template.CSS(hover.String())
	for _, f := range scatter.HorizontalFields() {
		query := url.Values{}
		query.Set("x", f.String())
		query.Set("from", res.Field.String())
		data.Labels = append(data.Labels, pageLabel{
			Href:   "?" + query.Encode(),
			Label:  f.Label(),
			Active: f == res.Field,
		})
	}
	return pageTemplate.Execute(w, data)
}

// writeHover writes the rules showing the overlay of a marker above it
// while the pointer is over the marker.
func writeHover(w io.Writer, m scatter.MarkerSnapshot, id string, layout scatter.Layout) {
	var (
		left = scatter.FormatValue(layout.Left + m.X)
		top  = scatter.FormatValue(layout.Top + m.Y)
	)
	fmt.Fprintf(w, "#%s { left: %spx; top: %spx; }\n", id, left, top)
	fmt.Fprintf(w, ".chart:has(#%s:hover) #%s { display: block; }\n", m.ID, id)
}
