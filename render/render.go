// Package render draws file size histogram as a bar chart image.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/vearutop/filesizehist"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default chart dimensions in pixels.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

const (
	// separator decorates staggered tick labels.
	separator = "¦"

	labelFontSize = 8.0
	labelPadding  = 90
)

var transparent = drawing.Color{R: 255, G: 255, B: 255, A: 0}

type options struct {
	width  int
	height int
	title  string
}

// Option configures chart.
type Option func(o *options)

// WithSize sets image size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithTitle sets chart title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// Chart renders histogram bars with mean and median markers and summary annotations.
func Chart(h *filesizehist.Histogram, opts ...Option) (image.Image, error) {
	o := options{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}

	c, err := build(h, o)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}

	return img, nil
}

func build(h *filesizehist.Histogram, o options) (*chart.Chart, error) {
	n := len(h.Counts)
	if n == 0 || h.Files == 0 {
		return nil, filesizehist.ErrEmptyInput
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	maxCount := 1

	for i, cnt := range h.Counts {
		xs[i] = float64(i)
		ys[i] = float64(cnt)

		if cnt > maxCount {
			maxCount = cnt
		}
	}

	xMin, xMax := -0.5, float64(n)-0.5
	yMax := float64(maxCount) * 1.1
	top := yMax * 0.9

	bars := chart.HistogramSeries{
		Name: "Files",
		Style: chart.Style{
			StrokeColor: chart.ColorWhite,
			StrokeWidth: 2,
			FillColor:   chart.ColorBlue,
		},
		InnerSeries: chart.ContinuousSeries{XValues: xs, YValues: ys},
	}

	meanMarker := marker(h.MeanBucket, yMax, chart.ColorBlack, 1)
	medianMarker := marker(h.MedianBucket, yMax, chart.ColorRed, 2)

	counts := chart.AnnotationSeries{
		Style: chart.Style{
			FillColor:   transparent,
			StrokeColor: transparent,
			FontColor:   chart.ColorBlack,
			FontSize:    labelFontSize,
		},
	}

	for i, cnt := range h.Counts {
		counts.Annotations = append(counts.Annotations, chart.Value2{
			XValue: float64(i) - 0.3,
			YValue: float64(cnt) + float64(h.Files)/400,
			Label:  fmt.Sprintf("%5d", cnt),
		})
	}

	summary := chart.AnnotationSeries{
		Annotations: []chart.Value2{
			{XValue: float64(h.MeanBucket) + 0.5, YValue: top, Label: h.MeanText()},
			{XValue: xMax * 0.8, YValue: top, Label: h.FilesText()},
			{XValue: xMax * 0.9, YValue: top, Label: h.TotalText()},
		},
	}

	median := chart.AnnotationSeries{
		Style: chart.Style{FontColor: chart.ColorRed, StrokeColor: chart.ColorRed},
		Annotations: []chart.Value2{
			{XValue: float64(h.MedianBucket) + 0.5, YValue: top, Label: h.MedianText()},
		},
	}

	c := &chart.Chart{
		Title:  o.title,
		Width:  o.width,
		Height: o.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: labelPadding},
		},
		XAxis: chart.XAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  "files",
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Series: []chart.Series{bars, meanMarker, medianMarker, counts, summary, median},
	}

	c.Elements = []chart.Renderable{tickLabels(h.Labels(), xMin, xMax)}

	return c, nil
}

// marker is a dashed vertical line through the middle of a bucket.
func marker(bucket int, yMax float64, color drawing.Color, width float64) chart.ContinuousSeries {
	x := float64(bucket)

	return chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor:     color,
			StrokeWidth:     width,
			StrokeDashArray: []float64{6, 4},
		},
		XValues: []float64{x, x},
		YValues: []float64{0, yMax},
	}
}

// staggerRows returns decoration rows above label i.
func staggerRows(i int) int {
	return i % 3
}

// tickLabel prefixes bucket label with separator rows, one line per row.
func tickLabel(i int, label string) []string {
	rows := staggerRows(i)
	lines := make([]string, 0, rows+1)

	for j := 0; j < rows; j++ {
		lines = append(lines, separator)
	}

	return append(lines, label)
}

// tickLabels draws bucket labels under the canvas, staggered so that dense labels do not overlap.
func tickLabels(labels []string, xMin, xMax float64) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		style := chart.Style{
			FontColor: chart.ColorBlack,
			FontSize:  labelFontSize,
		}.InheritFrom(defaults)

		xr := chart.ContinuousRange{Min: xMin, Max: xMax, Domain: canvasBox.Width()}

		for i, label := range labels {
			x := canvasBox.Left + xr.Translate(float64(i))
			y := canvasBox.Bottom

			for _, line := range tickLabel(i, label) {
				style.WriteTextOptionsToRenderer(r)

				tb := r.MeasureText(line)
				y += tb.Height() + 4

				r.Text(line, x-tb.Width()/2, y)
			}
		}
	}
}

// Caption returns a short description of the chart for the window or a log line.
func Caption(h *filesizehist.Histogram) string {
	return strings.Join([]string{h.FilesText(), h.TotalText(), h.MeanText(), h.MedianText()}, ", ")
}
