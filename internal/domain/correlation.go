package domain

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// minCorrelationMeasures is the fewest measures a correlation matrix needs.
const minCorrelationMeasures = 2

// Correlation is a Pearson correlation matrix over Measures. Cells are NaN
// where a series has zero variance.
type Correlation struct {
	Measures []string
	Matrix   [][]float64
}

// PivotByDate builds one mean-per-date series for each measure, aligned on
// the dates that have at least one valid value. Measures missing any of those
// dates are dropped. Measures are returned alphabetically.
func PivotByDate(ds Dataset) (measures []string, series [][]float64) {
	cells := make(map[string]map[time.Time][]float64)
	dates := make(map[time.Time]struct{})
	for _, r := range ds.Records {
		if r.Measure == "" || !r.HasValue || !r.HasDate {
			continue
		}
		day := wallClock(r.StartDate)
		if cells[r.Measure] == nil {
			cells[r.Measure] = make(map[time.Time][]float64)
		}
		cells[r.Measure][day] = append(cells[r.Measure][day], r.Value)
		dates[day] = struct{}{}
	}
	if len(dates) == 0 {
		return nil, nil
	}

	index := make([]time.Time, 0, len(dates))
	for d := range dates {
		index = append(index, d)
	}
	sort.Slice(index, func(i, j int) bool { return index[i].Before(index[j]) })

	names := make([]string, 0, len(cells))
	for m := range cells {
		names = append(names, m)
	}
	sort.Strings(names)

	for _, m := range names {
		if len(cells[m]) != len(index) {
			continue
		}
		col := make([]float64, len(index))
		for i, d := range index {
			col[i] = stat.Mean(cells[m][d], nil)
		}
		measures = append(measures, m)
		series = append(series, col)
	}
	return measures, series
}

// Correlate computes the pairwise Pearson correlation of the given series.
// The result is symmetric with an exact unit diagonal.
func Correlate(measures []string, series [][]float64) Correlation {
	n := len(series)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pearson(series[i], series[j])
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}
	return Correlation{Measures: measures, Matrix: matrix}
}

func pearson(x, y []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return math.NaN()
	}
	r := stat.Correlation(x, y, nil)
	return math.Max(-1, math.Min(1, r))
}

// CorrelationView renders the measure correlation matrix as a heatmap.
func CorrelationView(ds Dataset) Chart {
	if p := Guard(ds.Schema, FieldMeasure, FieldValue, FieldStartDate); p != nil {
		return p
	}
	if len(ds.Measures()) < minCorrelationMeasures {
		return &Placeholder{Message: MsgNotEnoughMeasures}
	}

	measures, series := PivotByDate(ds)
	if len(measures) < minCorrelationMeasures {
		return &Placeholder{Message: MsgNotEnoughMeasures}
	}

	corr := Correlate(measures, series)
	return &HeatmapChart{
		Title:      "Pollutant Correlation Heatmap",
		XTitle:     "Pollutant",
		YTitle:     "Pollutant",
		Labels:     corr.Measures,
		Matrix:     corr.Matrix,
		ColorScale: RdBuReversed,
		ZMin:       -1,
		ZMax:       1,
		ZMid:       0,
	}
}

// wallClock re-expresses t's local date and time in UTC so readings that
// share a wall-clock time share a pivot key, whatever their offset.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
