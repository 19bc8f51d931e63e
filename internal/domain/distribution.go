package domain

import (
	"math"
	"sort"
)

// whiskerFactor scales the IQR to get the whisker limits.
const whiskerFactor = 1.5

// DistributionView draws one box per measure, in order of first appearance.
func DistributionView(ds Dataset) Chart {
	if p := Guard(ds.Schema, FieldMeasure, FieldValue); p != nil {
		return p
	}

	byMeasure := make(map[string][]float64)
	for _, r := range ds.Records {
		if r.Measure == "" || !r.HasValue {
			continue
		}
		byMeasure[r.Measure] = append(byMeasure[r.Measure], r.Value)
	}

	chart := &BoxChart{
		Title:  "Pollutant Levels Distribution and Outliers",
		XTitle: "Measure",
		YTitle: "Data Value",
	}
	for i, m := range ds.Measures() {
		values, ok := byMeasure[m]
		if !ok {
			continue
		}
		chart.Groups = append(chart.Groups, BoxGroup{
			Name:  m,
			Color: paletteColor(i),
			Box:   Summarize(values),
		})
	}
	return chart
}

// Summarize computes box-plot statistics for values. The input is not
// modified. An empty input yields a zero BoxStats.
func Summarize(values []float64) BoxStats {
	if len(values) == 0 {
		return BoxStats{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1
	lowLimit := q1 - whiskerFactor*iqr
	highLimit := q3 + whiskerFactor*iqr

	stats := BoxStats{
		Count:      len(sorted),
		Min:        sorted[0],
		Q1:         q1,
		Median:     quantile(sorted, 0.5),
		Q3:         q3,
		Max:        sorted[len(sorted)-1],
		LowerFence: math.Inf(1),
		UpperFence: math.Inf(-1),
	}
	for _, v := range sorted {
		if v < lowLimit || v > highLimit {
			stats.Outliers = append(stats.Outliers, v)
			continue
		}
		stats.LowerFence = math.Min(stats.LowerFence, v)
		stats.UpperFence = math.Max(stats.UpperFence, v)
	}
	return stats
}

// quantile interpolates linearly between the closest ranks of an ascending
// sample, the same rule numpy and Plotly use by default.
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
