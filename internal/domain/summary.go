package domain

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MeasureSummary holds descriptive statistics for one measure. Mean, Min and
// Max are NaN when Count is zero.
type MeasureSummary struct {
	Measure string
	Count   int
	Mean    float64 // rounded to 2 decimals, halves to even
	Min     float64
	Max     float64
}

// Summaries computes a MeasureSummary per measure in order of first
// appearance.
func Summaries(ds Dataset) []MeasureSummary {
	values := make(map[string][]float64)
	for _, r := range ds.Records {
		if r.Measure == "" || !r.HasValue {
			continue
		}
		values[r.Measure] = append(values[r.Measure], r.Value)
	}

	measures := ds.Measures()
	out := make([]MeasureSummary, len(measures))
	for i, m := range measures {
		vs := values[m]
		s := MeasureSummary{
			Measure: m,
			Count:   len(vs),
			Mean:    math.NaN(),
			Min:     math.NaN(),
			Max:     math.NaN(),
		}
		if len(vs) > 0 {
			s.Mean = round2(stat.Mean(vs, nil))
			s.Min, s.Max = vs[0], vs[0]
			for _, v := range vs[1:] {
				s.Min = math.Min(s.Min, v)
				s.Max = math.Max(s.Max, v)
			}
		}
		out[i] = s
	}
	return out
}

// SummaryView renders Summaries as a five-column table.
func SummaryView(ds Dataset) Chart {
	if p := Guard(ds.Schema, FieldMeasure, FieldValue); p != nil {
		return p
	}

	summaries := Summaries(ds)
	cols := make([][]any, 5)
	for i := range cols {
		cols[i] = make([]any, len(summaries))
	}
	for i, s := range summaries {
		cols[0][i] = s.Measure
		cols[1][i] = s.Count
		cols[2][i] = s.Mean
		cols[3][i] = s.Min
		cols[4][i] = s.Max
	}

	return &TableChart{
		Title:      "Air Quality Measures Summary",
		Header:     []string{"Measure", "Count", "Average", "Min", "Max"},
		Columns:    cols,
		HeaderFill: "paleturquoise",
		CellFill:   "lavender",
		Align:      "left",
	}
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
