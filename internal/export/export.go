// Package export renders static snapshots of the chart as png images, one
// per horizontal field.
package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/scatter"
)

const (
	dotWidth  = 8
	fontColor = "333333"
)

// Render draws the scatter plot of records for field as a png image.
func Render(w io.Writer, records []scatter.Record, field scatter.Field, layout scatter.Layout) error {
	if !field.Horizontal() {
		return fmt.Errorf("%w: %s can not be used on the horizontal axis", scatter.ErrField, field)
	}
	if err := layout.Validate(); err != nil {
		return err
	}
	var (
		xs, ys []float64
		notes  []chart.Value2
	)
	for _, r := range records {
		x, y := r.Value(field), r.Value(scatter.Vertical)
		if scatter.IsMissing(x) || scatter.IsMissing(y) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
		notes = append(notes, chart.Value2{
			XValue: x,
			YValue: y,
			Label:  r.Abbr,
		})
	}
	if len(xs) == 0 {
		return scatter.ErrEmpty
	}
	var (
		xscale = scatter.XScale(records, field, layout.DrawingWidth())
		yscale = scatter.YScale(records, layout.DrawingHeight())
	)
	ch := chart.Chart{
		Width:  int(layout.Width),
		Height: int(layout.Height),
		Background: chart.Style{
			Padding: chart.Box{
				Top:    int(layout.Top),
				Right:  int(layout.Right),
				Bottom: int(layout.Bottom),
				Left:   int(layout.Left),
			},
		},
		XAxis: chart.XAxis{
			Name:  field.Label(),
			Range: continuousRange(xscale),
			Ticks: ticks(xscale),
		},
		YAxis: chart.YAxis{
			Name:  scatter.Vertical.Label(),
			Range: continuousRange(yscale),
			Ticks: ticks(yscale),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: field.Label(),
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    dotWidth,
					DotColor:    drawing.ColorFromHex(strings.TrimPrefix(scatter.MarkerFill, "#")),
				},
				XValues: xs,
				YValues: ys,
			},
			chart.AnnotationSeries{
				Style: chart.Style{
					FontColor: drawing.ColorFromHex(fontColor),
				},
				Annotations: notes,
			},
		},
	}
	return ch.Render(chart.PNG, w)
}

// All writes one png per horizontal field in dir, named after the field.
// Images are rendered concurrently; the first failure cancels the others.
func All(ctx context.Context, dir string, records []scatter.Record, layout scatter.Layout) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var (
		fields = scatter.HorizontalFields()
		files  = make([]string, len(fields))
	)
	grp, ctx := errgroup.WithContext(ctx)
	for i, f := range fields {
		i, f := i, f
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file := filepath.Join(dir, f.String()+".png")
			if err := writeFile(file, records, f, layout); err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			files[i] = file
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func writeFile(file string, records []scatter.Record, field scatter.Field, layout scatter.Layout) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer w.Close()

	bw := bufio.NewWriter(w)
	if err := Render(bw, records, field, layout); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return w.Close()
}

func continuousRange(scale scatter.Scaler) *chart.ContinuousRange {
	lo, hi := scale.Domain()
	return &chart.ContinuousRange{
		Min: lo,
		Max: hi,
	}
}

func ticks(scale scatter.Scaler) []chart.Tick {
	var list []chart.Tick
	for _, v := range scale.Ticks(scatter.DefaultTicks) {
		list = append(list, chart.Tick{
			Value: v,
			Label: scatter.FormatValue(v),
		})
	}
	return list
}
