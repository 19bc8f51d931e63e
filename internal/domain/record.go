package domain

import "time"

// Column names as they appear in the CSV header.
const (
	ColumnPlace     = "Geo Place Name"
	ColumnMeasure   = "Measure"
	ColumnValue     = "Data Value"
	ColumnStartDate = "Start_Date"
)

// Field identifies one of the dataset columns the views depend on.
type Field uint8

const (
	FieldPlace Field = 1 << iota
	FieldMeasure
	FieldValue
	FieldStartDate
)

// Fields lists every known field in column order.
var Fields = []Field{FieldPlace, FieldMeasure, FieldValue, FieldStartDate}

// Column returns the CSV header name for the field.
func (f Field) Column() string {
	switch f {
	case FieldPlace:
		return ColumnPlace
	case FieldMeasure:
		return ColumnMeasure
	case FieldValue:
		return ColumnValue
	case FieldStartDate:
		return ColumnStartDate
	default:
		return ""
	}
}

func (f Field) String() string { return f.Column() }

// Schema is the set of fields present in a loaded file.
type Schema Field

// SchemaFromColumns builds a Schema from a CSV header.
func SchemaFromColumns(columns []string) Schema {
	var s Schema
	for _, name := range columns {
		for _, f := range Fields {
			if f.Column() == name {
				s |= Schema(f)
			}
		}
	}
	return s
}

// Has reports whether the field is present.
func (s Schema) Has(f Field) bool { return s&Schema(f) != 0 }

// Missing returns the first field of fields not present in the schema.
func (s Schema) Missing(fields ...Field) (Field, bool) {
	for _, f := range fields {
		if !s.Has(f) {
			return f, true
		}
	}
	return 0, false
}

// Record is one row of the source table. Fields whose column is absent keep
// their zero value.
type Record struct {
	Place     string
	Measure   string
	Value     float64
	HasValue  bool
	StartDate time.Time
	HasDate   bool
}

// Dataset is the immutable result of loading one file.
type Dataset struct {
	Schema  Schema
	Records []Record
}

// ValidValues returns the values of all records with a numeric value.
func (d Dataset) ValidValues() []float64 {
	out := make([]float64, 0, len(d.Records))
	for _, r := range d.Records {
		if r.HasValue {
			out = append(out, r.Value)
		}
	}
	return out
}

// Measures returns the distinct non-empty measure names in order of first
// appearance.
func (d Dataset) Measures() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range d.Records {
		if r.Measure == "" {
			continue
		}
		if _, ok := seen[r.Measure]; ok {
			continue
		}
		seen[r.Measure] = struct{}{}
		out = append(out, r.Measure)
	}
	return out
}
