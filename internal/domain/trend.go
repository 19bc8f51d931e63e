package domain

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// PreferredTrendMeasure is plotted when present in the dataset.
const PreferredTrendMeasure = "PM2.5"

// MonthMean is the average value for one calendar month.
type MonthMean struct {
	Month time.Time // first day of the month, UTC
	Mean  float64
}

// Label formats the month as YYYY-MM.
func (m MonthMean) Label() string { return m.Month.Format("2006-01") }

// TrendMeasure picks the measure to plot: PM2.5 if present, otherwise the
// first measure in the dataset. Returns false when there are no measures.
func TrendMeasure(ds Dataset) (string, bool) {
	measures := ds.Measures()
	if len(measures) == 0 {
		return "", false
	}
	for _, m := range measures {
		if m == PreferredTrendMeasure {
			return m, true
		}
	}
	return measures[0], true
}

// MonthlyMeans averages the measure's valid values per calendar month, in
// chronological order. Months without a valid value are omitted.
func MonthlyMeans(ds Dataset, measure string) []MonthMean {
	values := make(map[time.Time][]float64)
	for _, r := range ds.Records {
		if r.Measure != measure || !r.HasValue || !r.HasDate {
			continue
		}
		month := truncateToMonth(r.StartDate)
		values[month] = append(values[month], r.Value)
	}

	out := make([]MonthMean, 0, len(values))
	for month, vs := range values {
		out = append(out, MonthMean{Month: month, Mean: stat.Mean(vs, nil)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.Before(out[j].Month)
	})
	return out
}

// TrendView plots the monthly mean of the trend measure.
func TrendView(ds Dataset) Chart {
	if p := Guard(ds.Schema, FieldMeasure, FieldValue, FieldStartDate); p != nil {
		return p
	}

	measure, ok := TrendMeasure(ds)
	if !ok {
		return &Placeholder{Message: MsgNotEnoughTrendData}
	}

	months := MonthlyMeans(ds, measure)
	chart := &LineChart{
		Title:   measure + " Monthly Trend",
		XTitle:  "Month-Year",
		YTitle:  measure + " Value",
		Name:    measure,
		Labels:  make([]string, len(months)),
		Values:  make([]float64, len(months)),
		Markers: true,
	}
	for i, m := range months {
		chart.Labels[i] = m.Label()
		chart.Values[i] = m.Mean
	}
	return chart
}

func truncateToMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
