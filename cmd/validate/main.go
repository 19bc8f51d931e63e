// Command validate checks an air quality CSV against what the dashboard
// needs: required columns, parseable values and dates, and whether every
// view renders a chart rather than a placeholder message. It can also write
// the computed Plotly figures to a JSON file for inspection.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -data data/mock/air_quality_sample.csv \
//	  -out figures.json
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/air-quality-dashboard/internal/adapter/csvfile"
	"github.com/couchcryptid/air-quality-dashboard/internal/adapter/plotly"
	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/goccy/go-json"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataPath := flag.String("data", "Air_Quality.csv", "path to the air quality CSV")
	outPath := flag.String("out", "", "optional output path for the Plotly figures JSON")
	topCities := flag.Int("top", domain.DefaultTopCities, "number of cities in the ranking view")
	flag.Parse()

	os.Exit(run(*dataPath, *outPath, *topCities))
}

func run(dataPath, outPath string, topCities int) int {
	fmt.Println("=== Air Quality Dataset Validation ===")
	fmt.Println()

	loader := csvfile.NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ds, err := loader.Load(context.Background(), dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	views := domain.ComputeViews(ds, domain.Options{TopCities: topCities})

	phases := []*phase{
		validateSchema(ds),
		validateValues(ds),
		validateViews(views),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d rows, %d valid values, %d measures\n",
		len(ds.Records), len(ds.ValidValues()), len(ds.Measures()))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if outPath != "" {
		if err := writeFigures(outPath, views); err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: write figures: %v\n", err)
			return 1
		}
		fmt.Printf("\nWrote figures: %s\n", outPath)
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func validateSchema(ds domain.Dataset) *phase {
	p := &phase{name: "Schema: required columns"}
	for _, f := range domain.Fields {
		if !ds.Schema.Has(f) {
			p.errorf("column %q is missing", f.Column())
		}
	}
	return p
}

func validateValues(ds domain.Dataset) *phase {
	p := &phase{name: "Values: measurements and dates"}
	if len(ds.Records) == 0 {
		p.errorf("dataset has no rows")
		return p
	}

	var missingValue, missingDate, missingPlace int
	for _, r := range ds.Records {
		if !r.HasValue {
			missingValue++
		}
		if ds.Schema.Has(domain.FieldStartDate) && !r.HasDate {
			missingDate++
		}
		if ds.Schema.Has(domain.FieldPlace) && r.Place == "" {
			missingPlace++
		}
	}
	if missingValue == len(ds.Records) {
		p.errorf("no row has a numeric %q", domain.ColumnValue)
	}
	if missingValue > 0 {
		fmt.Printf("  Note: %d row(s) without a value are excluded from aggregates\n", missingValue)
	}
	if missingDate > 0 {
		fmt.Printf("  Note: %d row(s) without a start date are excluded from the trend\n", missingDate)
	}
	if missingPlace > 0 {
		fmt.Printf("  Note: %d row(s) without a place name\n", missingPlace)
	}
	return p
}

func validateViews(views domain.Views) *phase {
	p := &phase{name: "Views: charts rendered"}
	for _, name := range domain.ViewNames {
		c, ok := views[name]
		if !ok {
			p.errorf("view %s was not computed", name)
			continue
		}
		if msg, placeholder := domain.IsPlaceholder(c); placeholder {
			p.errorf("view %s shows placeholder: %s", name, msg)
		}
	}
	return p
}

func writeFigures(path string, views domain.Views) error {
	encoded, err := plotly.EncodeViews(views)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}
