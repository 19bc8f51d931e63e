// Command genmock writes the deterministic air quality fixture used by the
// loader and dashboard tests. Five boroughs report NO2, O3 and PM2.5 on the
// first of every month of 2021, with values spread across the AQI categories.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/air_quality_sample.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var header = []string{
	"Unique ID", "Indicator ID", "Name", domain.ColumnMeasure, "Measure Info",
	"Geo Type Name", "Geo Join ID", domain.ColumnPlace, "Time Period",
	domain.ColumnStartDate, domain.ColumnValue, "Message",
}

type borough struct {
	name  string
	scale float64
}

var boroughs = []borough{
	{"Bronx", 1.6},
	{"Brooklyn", 1.1},
	{"Manhattan", 2.4},
	{"Queens", 0.8},
	{"Staten Island", 0.45},
}

type indicator struct {
	id        int
	name      string
	measure   string
	unit      string
	base      float64
	amplitude float64 // seasonal swing; negative peaks in summer
}

var indicators = []indicator{
	{365, "Nitrogen dioxide (NO2)", "NO2", "ppb", 40, 12},
	{386, "Ozone (O3)", "O3", "ppb", 30, -10},
	{365, "Fine particles (PM 2.5)", "PM2.5", "mcg/m3", 25, 8},
}

const (
	year     = 2021
	firstUID = 100001
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data/mock/air_quality_sample.csv", "output path for the CSV fixture")
	flag.Parse()

	records := generate()
	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return fmt.Errorf("build dataframe: %w", df.Err)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()

	if err := df.WriteCSV(f); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	log.Printf("wrote %d rows to %s", df.Nrow(), *out)
	return nil
}

// generate returns the header plus one row per borough, indicator and month.
func generate() [][]string {
	records := [][]string{header}
	uid := firstUID
	for bi, b := range boroughs {
		for _, ind := range indicators {
			for m := range 12 {
				start := time.Date(year, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
				records = append(records, []string{
					strconv.Itoa(uid),
					strconv.Itoa(ind.id),
					ind.name,
					ind.measure,
					ind.unit,
					"Borough",
					strconv.Itoa(bi + 1),
					b.name,
					start.Format("Jan 2006"),
					start.Format("01/02/2006"),
					strconv.FormatFloat(value(bi, b, ind, m), 'f', 2, 64),
					"",
				})
				uid++
			}
		}
	}
	return records
}

func value(bi int, b borough, ind indicator, month int) float64 {
	seasonal := ind.amplitude * math.Cos(2*math.Pi*float64(month)/12)
	jitter := 3 * float64((bi*7+month*5)%4)
	v := (ind.base + seasonal + jitter) * b.scale
	// A summer smoke episode pushes Manhattan into the unhealthy bands.
	if ind.measure == "PM2.5" && b.name == "Manhattan" && (month == 6 || month == 7) {
		v += 180
	}
	return v
}
