package plotly

import (
	"math"
	"testing"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodedFigure struct {
	Data   []map[string]any `json:"data"`
	Layout map[string]any   `json:"layout"`
}

func decode(t *testing.T, c domain.Chart) decodedFigure {
	t.Helper()
	data, err := Encode(c)
	require.NoError(t, err)

	var fig decodedFigure
	require.NoError(t, json.Unmarshal(data, &fig))
	return fig
}

func TestEncode_Placeholder(t *testing.T) {
	fig := decode(t, &domain.Placeholder{Message: domain.MsgNotEnoughMeasures})

	assert.Empty(t, fig.Data)
	annotations, ok := fig.Layout["annotations"].([]any)
	require.True(t, ok)
	require.Len(t, annotations, 1)
	ann := annotations[0].(map[string]any)
	assert.Equal(t, domain.MsgNotEnoughMeasures, ann["text"])
	assert.Equal(t, false, ann["showarrow"])
	assert.Equal(t, float64(20), ann["font"].(map[string]any)["size"])
}

func TestEncode_Bar(t *testing.T) {
	fig := decode(t, &domain.BarChart{
		Title:      "Average Air Quality by City",
		XTitle:     "City",
		YTitle:     "Average AQI Value",
		Labels:     []string{"B", "A"},
		Values:     []float64{200, 50},
		ColorScale: domain.RedsScale,
	})

	require.Len(t, fig.Data, 1)
	trace := fig.Data[0]
	assert.Equal(t, "bar", trace["type"])
	assert.Equal(t, []any{"B", "A"}, trace["x"])
	assert.Equal(t, []any{200.0, 50.0}, trace["y"])
	marker := trace["marker"].(map[string]any)
	assert.Equal(t, []any{200.0, 50.0}, marker["color"])
	scale := marker["colorscale"].([]any)
	assert.Len(t, scale, len(domain.RedsScale))
	assert.Equal(t, "Average Air Quality by City", fig.Layout["title"].(map[string]any)["text"])
}

func TestEncode_BoxWithOutliers(t *testing.T) {
	fig := decode(t, &domain.BoxChart{
		Title: "Pollutant Levels Distribution and Outliers",
		Groups: []domain.BoxGroup{
			{Name: "NO2", Color: "#636efa", Box: domain.Summarize([]float64{1, 2, 3, 4, 5, 6, 7, 8, 100})},
			{Name: "O3", Color: "#EF553B", Box: domain.Summarize([]float64{1, 2})},
		},
	})

	require.Len(t, fig.Data, 3)
	assert.Equal(t, "box", fig.Data[0]["type"])
	assert.Equal(t, []any{3.0}, fig.Data[0]["q1"])
	assert.Equal(t, []any{8.0}, fig.Data[0]["upperfence"])
	assert.Equal(t, "scatter", fig.Data[1]["type"])
	assert.Equal(t, []any{100.0}, fig.Data[1]["y"])
	assert.Equal(t, "O3", fig.Data[2]["name"])
}

func TestEncode_Line(t *testing.T) {
	fig := decode(t, &domain.LineChart{
		Title:   "PM2.5 Monthly Trend",
		Name:    "PM2.5",
		Labels:  []string{"2021-01", "2021-02"},
		Values:  []float64{120, 60},
		Markers: true,
	})

	require.Len(t, fig.Data, 1)
	assert.Equal(t, "lines+markers", fig.Data[0]["mode"])
	assert.Equal(t, []any{"2021-01", "2021-02"}, fig.Data[0]["x"])
}

func TestEncode_HeatmapNaNBecomesNull(t *testing.T) {
	fig := decode(t, &domain.HeatmapChart{
		Labels:     []string{"a", "b"},
		Matrix:     [][]float64{{1, math.NaN()}, {math.NaN(), 1}},
		ColorScale: domain.RdBuReversed,
		ZMin:       -1,
		ZMax:       1,
	})

	trace := fig.Data[0]
	assert.Equal(t, "heatmap", trace["type"])
	assert.Equal(t, []any{[]any{1.0, nil}, []any{nil, 1.0}}, trace["z"])
	assert.Equal(t, -1.0, trace["zmin"])
	assert.Equal(t, 1.0, trace["zmax"])
	assert.Equal(t, 0.0, trace["zmid"])
}

func TestEncode_PieKeepsOrder(t *testing.T) {
	fig := decode(t, &domain.PieChart{
		Slices: []domain.PieSlice{
			{Label: "Good", Value: 5, Color: "green"},
			{Label: "Hazardous", Value: 1, Color: "maroon"},
		},
	})

	trace := fig.Data[0]
	assert.Equal(t, []any{"Good", "Hazardous"}, trace["labels"])
	assert.Equal(t, []any{5.0, 1.0}, trace["values"])
	assert.Equal(t, []any{"green", "maroon"}, trace["marker"].(map[string]any)["colors"])
	assert.Equal(t, false, trace["sort"])
}

func TestEncode_Table(t *testing.T) {
	fig := decode(t, &domain.TableChart{
		Header:     []string{"Measure", "Count", "Average", "Min", "Max"},
		Columns:    [][]any{{"NO2"}, {0}, {math.NaN()}, {math.NaN()}, {math.NaN()}},
		HeaderFill: "paleturquoise",
		CellFill:   "lavender",
		Align:      "left",
	})

	trace := fig.Data[0]
	cells := trace["cells"].(map[string]any)
	assert.Equal(t, []any{[]any{"NO2"}, []any{0.0}, []any{nil}, []any{nil}, []any{nil}}, cells["values"])
	assert.Equal(t, "lavender", cells["fill"].(map[string]any)["color"])
}

type unknownChart struct{}

func (unknownChart) ChartKind() string { return "mystery" }

func TestEncode_UnknownChart(t *testing.T) {
	_, err := Encode(unknownChart{})
	assert.Error(t, err)
}

func TestEncodeViews(t *testing.T) {
	views := domain.Views{
		domain.ViewHeatmap: &domain.Placeholder{Message: domain.MsgNotEnoughMeasures},
		domain.ViewCategories: &domain.PieChart{
			Slices: []domain.PieSlice{{Label: "Good", Value: 1, Color: "green"}},
		},
	}

	encoded, err := EncodeViews(views)
	require.NoError(t, err)
	assert.Len(t, encoded, 2)
	assert.Contains(t, string(encoded[domain.ViewHeatmap]), domain.MsgNotEnoughMeasures)
	assert.True(t, json.Valid(encoded[domain.ViewCategories]))
}
