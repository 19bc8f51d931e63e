package domain

// Chart is a view result: one of *BarChart, *BoxChart, *LineChart,
// *HeatmapChart, *PieChart, *TableChart or *Placeholder.
type Chart interface {
	// ChartKind names the chart type, "placeholder" for placeholders.
	ChartKind() string
}

// Placeholder stands in for a chart that could not be computed.
type Placeholder struct {
	Message string
}

// ColorStop is one point of a continuous color scale, Pos in [0, 1].
type ColorStop struct {
	Pos   float64
	Color string
}

// BarChart is a vertical bar chart with a continuous color axis bound to Values.
type BarChart struct {
	Title      string
	XTitle     string
	YTitle     string
	Labels     []string
	Values     []float64
	ColorScale []ColorStop
}

// BoxChart holds one precomputed distribution per group.
type BoxChart struct {
	Title  string
	XTitle string
	YTitle string
	Groups []BoxGroup
}

// BoxGroup is a distribution summary for one group, drawn in Color.
type BoxGroup struct {
	Name  string
	Color string
	Box   BoxStats
}

// BoxStats summarizes a sample using the 1.5×IQR whisker rule. LowerFence and
// UpperFence are the most extreme observations inside the whisker limits.
type BoxStats struct {
	Count      int
	Min        float64
	Q1         float64
	Median     float64
	Q3         float64
	Max        float64
	LowerFence float64
	UpperFence float64
	Outliers   []float64
}

// LineChart is a single series plotted against categorical X labels.
type LineChart struct {
	Title   string
	XTitle  string
	YTitle  string
	Name    string
	Labels  []string
	Values  []float64
	Markers bool
}

// HeatmapChart is a square matrix with shared row and column labels.
type HeatmapChart struct {
	Title      string
	XTitle     string
	YTitle     string
	Labels     []string
	Matrix     [][]float64
	ColorScale []ColorStop
	ZMin       float64
	ZMax       float64
	ZMid       float64
}

// PieChart slices are drawn in the given order.
type PieChart struct {
	Title  string
	Slices []PieSlice
}

// PieSlice is one labeled wedge.
type PieSlice struct {
	Label string
	Value int
	Color string
}

// TableChart stores cells column-major, matching Header.
type TableChart struct {
	Title      string
	Header     []string
	Columns    [][]any
	HeaderFill string
	CellFill   string
	Align      string
}

func (*Placeholder) ChartKind() string  { return "placeholder" }
func (*BarChart) ChartKind() string     { return "bar" }
func (*BoxChart) ChartKind() string     { return "box" }
func (*LineChart) ChartKind() string    { return "line" }
func (*HeatmapChart) ChartKind() string { return "heatmap" }
func (*PieChart) ChartKind() string     { return "pie" }
func (*TableChart) ChartKind() string   { return "table" }

// IsPlaceholder reports whether c is a placeholder, returning its message.
func IsPlaceholder(c Chart) (string, bool) {
	p, ok := c.(*Placeholder)
	if !ok {
		return "", false
	}
	return p.Message, true
}

// RedsScale is a sequential red scale, darkest at the high end.
var RedsScale = []ColorStop{
	{0.0, "#fff5f0"},
	{0.125, "#fee0d2"},
	{0.25, "#fcbba1"},
	{0.375, "#fc9272"},
	{0.5, "#fb6a4a"},
	{0.625, "#ef3b2c"},
	{0.75, "#cb181d"},
	{0.875, "#a50f15"},
	{1.0, "#67000d"},
}

// RdBuReversed is a diverging scale running blue (negative) to red (positive).
var RdBuReversed = []ColorStop{
	{0.0, "#053061"},
	{0.1, "#2166ac"},
	{0.2, "#4393c3"},
	{0.3, "#92c5de"},
	{0.4, "#d1e5f0"},
	{0.5, "#f7f7f7"},
	{0.6, "#fddbc7"},
	{0.7, "#f4a582"},
	{0.8, "#d6604d"},
	{0.9, "#b2182b"},
	{1.0, "#67001f"},
}

// QualitativePalette colors per-group traces, cycling when exhausted.
var QualitativePalette = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

func paletteColor(i int) string {
	return QualitativePalette[i%len(QualitativePalette)]
}
