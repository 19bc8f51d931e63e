// Package plotly serializes domain charts as Plotly.js figure documents
// ({"data": [...], "layout": {...}}) ready for Plotly.newPlot.
package plotly

import (
	"fmt"
	"math"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/goccy/go-json"
)

// Trace is one Plotly trace. Plotly's trace schema is wide and differs per
// type, so traces are plain maps.
type Trace map[string]any

// Figure is a complete Plotly figure.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Layout is the subset of Plotly layout attributes the dashboard sets.
type Layout struct {
	Title       *Text        `json:"title,omitempty"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	ShowLegend  *bool        `json:"showlegend,omitempty"`
}

// Text is a Plotly title object.
type Text struct {
	Text string `json:"text"`
}

// Axis configures one cartesian axis.
type Axis struct {
	Title   *Text `json:"title,omitempty"`
	Visible *bool `json:"visible,omitempty"`
}

// Annotation is a free-floating text label.
type Annotation struct {
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Font      Font    `json:"font"`
}

// Font sets annotation text size.
type Font struct {
	Size int `json:"size"`
}

const placeholderFontSize = 20

// NewFigure converts a domain chart into a Plotly figure.
func NewFigure(c domain.Chart) (Figure, error) {
	switch c := c.(type) {
	case *domain.Placeholder:
		return placeholderFigure(c), nil
	case *domain.BarChart:
		return barFigure(c), nil
	case *domain.BoxChart:
		return boxFigure(c), nil
	case *domain.LineChart:
		return lineFigure(c), nil
	case *domain.HeatmapChart:
		return heatmapFigure(c), nil
	case *domain.PieChart:
		return pieFigure(c), nil
	case *domain.TableChart:
		return tableFigure(c), nil
	default:
		return Figure{}, fmt.Errorf("unsupported chart type %T", c)
	}
}

// Encode serializes a chart as Plotly figure JSON.
func Encode(c domain.Chart) ([]byte, error) {
	fig, err := NewFigure(c)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(fig)
	if err != nil {
		return nil, fmt.Errorf("encode %s figure: %w", c.ChartKind(), err)
	}
	return data, nil
}

// EncodeViews serializes every view, keyed by view name.
func EncodeViews(views domain.Views) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(views))
	for name, c := range views {
		data, err := Encode(c)
		if err != nil {
			return nil, fmt.Errorf("view %s: %w", name, err)
		}
		out[name] = data
	}
	return out, nil
}

func placeholderFigure(p *domain.Placeholder) Figure {
	hidden := false
	return Figure{
		Data: []Trace{},
		Layout: Layout{
			XAxis: &Axis{Visible: &hidden},
			YAxis: &Axis{Visible: &hidden},
			Annotations: []Annotation{{
				Text:      p.Message,
				ShowArrow: false,
				XRef:      "paper",
				YRef:      "paper",
				X:         0.5,
				Y:         0.5,
				Font:      Font{Size: placeholderFontSize},
			}},
		},
	}
}

func barFigure(c *domain.BarChart) Figure {
	values := numbers(c.Values)
	return Figure{
		Data: []Trace{{
			"type": "bar",
			"x":    c.Labels,
			"y":    values,
			"marker": map[string]any{
				"color":      values,
				"colorscale": colorScale(c.ColorScale),
				"showscale":  true,
				"colorbar":   map[string]any{"title": Text{Text: c.YTitle}},
			},
		}},
		Layout: cartesianLayout(c.Title, c.XTitle, c.YTitle),
	}
}

func boxFigure(c *domain.BoxChart) Figure {
	traces := make([]Trace, 0, 2*len(c.Groups))
	for _, g := range c.Groups {
		b := g.Box
		traces = append(traces, Trace{
			"type":       "box",
			"name":       g.Name,
			"x":          []string{g.Name},
			"q1":         []any{number(b.Q1)},
			"median":     []any{number(b.Median)},
			"q3":         []any{number(b.Q3)},
			"lowerfence": []any{number(b.LowerFence)},
			"upperfence": []any{number(b.UpperFence)},
			"boxpoints":  false,
			"marker":     map[string]any{"color": g.Color},
		})
		if len(b.Outliers) == 0 {
			continue
		}
		xs := make([]string, len(b.Outliers))
		for i := range xs {
			xs[i] = g.Name
		}
		traces = append(traces, Trace{
			"type":       "scatter",
			"mode":       "markers",
			"name":       g.Name,
			"x":          xs,
			"y":          numbers(b.Outliers),
			"marker":     map[string]any{"color": g.Color},
			"showlegend": false,
		})
	}
	return Figure{Data: traces, Layout: cartesianLayout(c.Title, c.XTitle, c.YTitle)}
}

func lineFigure(c *domain.LineChart) Figure {
	mode := "lines"
	if c.Markers {
		mode = "lines+markers"
	}
	return Figure{
		Data: []Trace{{
			"type": "scatter",
			"mode": mode,
			"name": c.Name,
			"x":    c.Labels,
			"y":    numbers(c.Values),
		}},
		Layout: cartesianLayout(c.Title, c.XTitle, c.YTitle),
	}
}

func heatmapFigure(c *domain.HeatmapChart) Figure {
	z := make([][]any, len(c.Matrix))
	for i, row := range c.Matrix {
		z[i] = numbers(row)
	}
	return Figure{
		Data: []Trace{{
			"type":       "heatmap",
			"x":          c.Labels,
			"y":          c.Labels,
			"z":          z,
			"colorscale": colorScale(c.ColorScale),
			"zmin":       c.ZMin,
			"zmax":       c.ZMax,
			"zmid":       c.ZMid,
		}},
		Layout: cartesianLayout(c.Title, c.XTitle, c.YTitle),
	}
}

func pieFigure(c *domain.PieChart) Figure {
	labels := make([]string, len(c.Slices))
	values := make([]int, len(c.Slices))
	colors := make([]string, len(c.Slices))
	for i, s := range c.Slices {
		labels[i] = s.Label
		values[i] = s.Value
		colors[i] = s.Color
	}
	return Figure{
		Data: []Trace{{
			"type":      "pie",
			"labels":    labels,
			"values":    values,
			"marker":    map[string]any{"colors": colors},
			"sort":      false,
			"direction": "clockwise",
		}},
		Layout: Layout{Title: &Text{Text: c.Title}},
	}
}

func tableFigure(c *domain.TableChart) Figure {
	cols := make([][]any, len(c.Columns))
	for i, col := range c.Columns {
		cols[i] = make([]any, len(col))
		for j, v := range col {
			if f, ok := v.(float64); ok {
				cols[i][j] = number(f)
				continue
			}
			cols[i][j] = v
		}
	}
	return Figure{
		Data: []Trace{{
			"type": "table",
			"header": map[string]any{
				"values": c.Header,
				"fill":   map[string]any{"color": c.HeaderFill},
				"align":  c.Align,
			},
			"cells": map[string]any{
				"values": cols,
				"fill":   map[string]any{"color": c.CellFill},
				"align":  c.Align,
			},
		}},
		Layout: Layout{Title: &Text{Text: c.Title}},
	}
}

func cartesianLayout(title, xTitle, yTitle string) Layout {
	return Layout{
		Title: &Text{Text: title},
		XAxis: &Axis{Title: &Text{Text: xTitle}},
		YAxis: &Axis{Title: &Text{Text: yTitle}},
	}
}

func colorScale(stops []domain.ColorStop) [][2]any {
	out := make([][2]any, len(stops))
	for i, s := range stops {
		out[i] = [2]any{s.Pos, s.Color}
	}
	return out
}

// number maps NaN and infinities to nil, which JSON cannot represent.
func number(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func numbers(vs []float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = number(v)
	}
	return out
}
