package domain

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// PlaceMean is the average value recorded for one place.
type PlaceMean struct {
	Place string
	Mean  float64
}

// RankPlaces averages valid values per place and returns the top limit places
// by descending mean. Equal means keep alphabetical place order.
func RankPlaces(ds Dataset, limit int) []PlaceMean {
	values := make(map[string][]float64)
	for _, r := range ds.Records {
		if r.Place == "" || !r.HasValue {
			continue
		}
		values[r.Place] = append(values[r.Place], r.Value)
	}

	places := make([]string, 0, len(values))
	for p := range values {
		places = append(places, p)
	}
	sort.Strings(places)

	ranked := make([]PlaceMean, len(places))
	for i, p := range places {
		ranked[i] = PlaceMean{Place: p, Mean: stat.Mean(values[p], nil)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Mean > ranked[j].Mean
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// CityView renders RankPlaces as a bar chart colored by mean.
func CityView(ds Dataset, limit int) Chart {
	if p := Guard(ds.Schema, FieldPlace, FieldValue); p != nil {
		return p
	}

	ranked := RankPlaces(ds, limit)
	chart := &BarChart{
		Title:      "Average Air Quality by City",
		XTitle:     "City",
		YTitle:     "Average AQI Value",
		Labels:     make([]string, len(ranked)),
		Values:     make([]float64, len(ranked)),
		ColorScale: RedsScale,
	}
	for i, pm := range ranked {
		chart.Labels[i] = pm.Place
		chart.Values[i] = pm.Mean
	}
	return chart
}
