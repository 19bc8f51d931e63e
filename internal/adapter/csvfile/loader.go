package csvfile

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// dateLayouts are tried in order when parsing Start_Date cells.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339,
	"01/02/2006 15:04",
	"1/2/2006 15:04",
}

var utf8BOM = []byte("\ufeff")

var (
	errUnknownDateFormat = errors.New("unrecognized date format")
	errEmptyFile         = errors.New("file is empty")
)

// Loader reads air-quality CSV files into a domain.Dataset.
// It implements pipeline.Extractor.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the file at path. Missing or unreadable files and malformed
// dates fail with an error matching domain.ErrLoad; absent columns do not.
func (l *Loader) Load(ctx context.Context, path string) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: %w", domain.ErrLoad, err)
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: read %s: %w", domain.ErrLoad, path, err)
	}
	if len(records) == 1 {
		l.logger.Debug("dataset has no rows", "path", path)
		return domain.Dataset{Schema: domain.SchemaFromColumns(records[0])}, nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{domain.ColumnValue: series.Float}),
		dataframe.NaNValues([]string{"", "NA", "NaN"}),
	)
	if df.Err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: read %s: %w", domain.ErrLoad, path, df.Err)
	}

	ds, err := FromDataFrame(df)
	if err != nil {
		return domain.Dataset{}, err
	}

	l.logger.Debug("dataset loaded",
		"path", path,
		"rows", len(ds.Records),
		"columns", df.Ncol(),
		"missing_fields", missingFields(ds.Schema),
	)
	return ds, nil
}

// FromDataFrame validates the frame's columns against the known fields and
// converts every row into a typed record.
func FromDataFrame(df dataframe.DataFrame) (domain.Dataset, error) {
	schema := domain.SchemaFromColumns(df.Names())
	n := df.Nrow()
	records := make([]domain.Record, n)

	if schema.Has(domain.FieldPlace) {
		for i, v := range stringCells(df.Col(domain.ColumnPlace)) {
			records[i].Place = v
		}
	}
	if schema.Has(domain.FieldMeasure) {
		for i, v := range stringCells(df.Col(domain.ColumnMeasure)) {
			records[i].Measure = v
		}
	}
	if schema.Has(domain.FieldValue) {
		col := df.Col(domain.ColumnValue)
		values := col.Float()
		nan := col.IsNaN()
		for i := range records {
			if nan[i] {
				continue
			}
			records[i].Value = values[i]
			records[i].HasValue = true
		}
	}
	if schema.Has(domain.FieldStartDate) {
		for i, raw := range stringCells(df.Col(domain.ColumnStartDate)) {
			if raw == "" {
				continue
			}
			t, err := ParseDate(raw)
			if err != nil {
				return domain.Dataset{}, &domain.ParseError{
					Row:    i + 1,
					Column: domain.ColumnStartDate,
					Value:  raw,
					Err:    err,
				}
			}
			records[i].StartDate = t
			records[i].HasDate = true
		}
	}

	return domain.Dataset{Schema: schema, Records: records}, nil
}

// ParseDate accepts the date formats seen in air-quality exports. Times with
// an offset keep it, so the wall clock decides which month they fall in.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errUnknownDateFormat
}

// readRecords reads every CSV row, dropping a leading UTF-8 byte order mark.
// An empty file is an error; a header without rows is not.
func readRecords(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, err
		}
	}

	records, err := csv.NewReader(br).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errEmptyFile
	}
	return records, nil
}

// stringCells returns trimmed cell values, with missing cells as "".
func stringCells(s series.Series) []string {
	out := s.Records()
	nan := s.IsNaN()
	for i := range out {
		if nan[i] {
			out[i] = ""
			continue
		}
		out[i] = strings.TrimSpace(out[i])
	}
	return out
}

func missingFields(s domain.Schema) []string {
	var out []string
	for _, f := range domain.Fields {
		if !s.Has(f) {
			out = append(out, f.Column())
		}
	}
	return out
}
