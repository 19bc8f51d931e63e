package domain

// View keys, as used by the dashboard template and the chart API.
const (
	ViewCities     = "cities"
	ViewOutliers   = "outliers"
	ViewTrend      = "pm25"
	ViewHeatmap    = "heatmap"
	ViewCategories = "categories"
	ViewStats      = "stats"
)

// DefaultTopCities is how many places the city ranking keeps.
const DefaultTopCities = 10

// ViewNames lists the view keys in dashboard order.
var ViewNames = []string{ViewCities, ViewOutliers, ViewTrend, ViewHeatmap, ViewCategories, ViewStats}

// Views maps view keys to computed charts.
type Views map[string]Chart

// Options tunes view computation.
type Options struct {
	TopCities int
}

// ComputeViews derives all six views from the dataset. The views are
// independent; a placeholder in one never affects another.
func ComputeViews(ds Dataset, opts Options) Views {
	if opts.TopCities <= 0 {
		opts.TopCities = DefaultTopCities
	}
	return Views{
		ViewCities:     CityView(ds, opts.TopCities),
		ViewOutliers:   DistributionView(ds),
		ViewTrend:      TrendView(ds),
		ViewHeatmap:    CorrelationView(ds),
		ViewCategories: CategoryView(ds),
		ViewStats:      SummaryView(ds),
	}
}
