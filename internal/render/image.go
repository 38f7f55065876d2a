package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/san-kum/cubelife/internal/plot"
)

var ErrUnknownFormat = errors.New("render: unknown image format")

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

const (
	DefaultImageWidth  = 1000
	DefaultImageHeight = 600
)

// ParseFormat maps a format name or a file name's extension to a Format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(s)
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimPrefix(ext, ".")
	}
	switch Format(name) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// markerStyle renders points only (no connecting line)
func markerStyle() chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    chart.ColorRed,
	}
}

// Image renders c with go-chart. The epoch curve sits on the primary y axis;
// a day series on the secondary axis carries the forced day range and ticks.
func Image(w io.Writer, c *plot.Chart, f Format, width, height int) error {
	var provider chart.RendererProvider
	switch f {
	case FormatPNG:
		provider = chart.PNG
	case FormatSVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	ch := Chart(c)
	ch.Width = width
	ch.Height = height
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("render %s: %w", f, err)
	}
	return nil
}

// Chart converts a laid out chart to a go-chart definition.
func Chart(c *plot.Chart) chart.Chart {
	days := make([]float64, len(c.CurveY))
	for i, y := range c.CurveY {
		days[i] = c.PrimaryToSecondary(y)
	}

	px := make([]float64, len(c.Points))
	py := make([]float64, len(c.Points))
	notes := make([]chart.Value2, len(c.Points))
	for i, p := range c.Points {
		px[i], py[i] = p.X, p.Y
		notes[i] = chart.Value2{XValue: p.X, YValue: p.Y, Label: p.Label}
	}

	ch := chart.Chart{
		Title:      c.Labels.Title,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  c.Labels.XAxis,
			Range: &chart.ContinuousRange{Min: c.XRange.Min, Max: c.XRange.Max},
			Ticks: ticks(c.XTicks),
		},
		YAxis: chart.YAxis{
			Name:  c.Labels.Primary,
			Range: &chart.ContinuousRange{Min: c.PrimaryRange.Min, Max: c.PrimaryRange.Max},
			Ticks: ticks(c.PrimaryTicks),
		},
		YAxisSecondary: chart.YAxis{
			Name:  c.Labels.Secondary,
			Range: &chart.ContinuousRange{Min: c.SecondaryRange.Min, Max: c.SecondaryRange.Max},
			Ticks: ticks(c.SecondaryTicks),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    c.Labels.Legend,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
				XValues: c.CurveX,
				YValues: c.CurveY,
			},
			chart.ContinuousSeries{
				Name:    c.Labels.Secondary,
				Style:   chart.Style{Hidden: true, StrokeColor: chart.ColorBlue},
				YAxis:   chart.YAxisSecondary,
				XValues: c.CurveX,
				YValues: days,
			},
		},
	}
	// go-chart rejects empty series.
	if len(c.Points) > 0 {
		ch.Series = append(ch.Series,
			chart.ContinuousSeries{
				Style:   markerStyle(),
				XValues: px,
				YValues: py,
			},
			chart.AnnotationSeries{Annotations: notes},
		)
	}
	ch.Elements = []chart.Renderable{chart.LegendLeft(&chart.Chart{Series: legendSeries(ch.Series)})}
	return ch
}

// legendSeries keeps the named, visible line series. Markers, annotations and
// the hidden day series stay out of the legend.
func legendSeries(series []chart.Series) []chart.Series {
	var out []chart.Series
	for _, s := range series {
		if _, ok := s.(chart.AnnotationSeries); ok {
			continue
		}
		if s.GetName() == "" || s.GetStyle().Hidden {
			continue
		}
		out = append(out, s)
	}
	return out
}

func ticks(ts []plot.Tick) []chart.Tick {
	out := make([]chart.Tick, len(ts))
	for i, t := range ts {
		out[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}
