package csvfile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullHeader = "Unique ID,Indicator ID,Name,Measure,Measure Info,Geo Type Name,Geo Join ID,Geo Place Name,Time Period,Start_Date,Data Value,Message\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Air_Quality.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullSchema(t *testing.T) {
	path := writeCSV(t, fullHeader+
		`336867,375,Nitrogen dioxide (NO2),NO2,ppb,CD,407,Flushing and Whitestone (CD7),Annual Average 2014,12/01/2013,23.97,`+"\n"+
		`336741,375,Nitrogen dioxide (NO2),NO2,ppb,CD,107,"Upper West Side (CD7)",Annual Average 2014,12/01/2013,27.42,`+"\n"+
		`550157,375,Fine particles (PM 2.5),PM2.5,mcg/m3,UHF42,103,Fordham - Bronx Pk,Annual Average 2015,2015-01-01,,`+"\n")

	ds, err := NewLoader(discardLogger()).Load(context.Background(), path)
	require.NoError(t, err)

	for _, f := range domain.Fields {
		assert.True(t, ds.Schema.Has(f), "field %s", f)
	}
	require.Len(t, ds.Records, 3)

	first := ds.Records[0]
	assert.Equal(t, "Flushing and Whitestone (CD7)", first.Place)
	assert.Equal(t, "NO2", first.Measure)
	assert.True(t, first.HasValue)
	assert.InDelta(t, 23.97, first.Value, 1e-9)
	assert.True(t, first.HasDate)
	assert.Equal(t, time.Date(2013, time.December, 1, 0, 0, 0, 0, time.UTC), first.StartDate)

	assert.Equal(t, "Upper West Side (CD7)", ds.Records[1].Place)

	third := ds.Records[2]
	assert.Equal(t, "PM2.5", third.Measure)
	assert.False(t, third.HasValue, "empty Data Value is missing")
	assert.Equal(t, time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC), third.StartDate)
}

func TestLoad_MissingColumns(t *testing.T) {
	path := writeCSV(t, "Measure,Data Value\nNO2,12.5\nO3,abc\n")

	ds, err := NewLoader(discardLogger()).Load(context.Background(), path)
	require.NoError(t, err)

	assert.False(t, ds.Schema.Has(domain.FieldPlace))
	assert.False(t, ds.Schema.Has(domain.FieldStartDate))
	require.Len(t, ds.Records, 2)
	assert.Empty(t, ds.Records[0].Place)
	assert.False(t, ds.Records[0].HasDate)
	assert.True(t, ds.Records[0].HasValue)
	assert.False(t, ds.Records[1].HasValue, "unparsable value is missing")

	msg, ok := domain.IsPlaceholder(domain.CityView(ds, domain.DefaultTopCities))
	require.True(t, ok)
	assert.Equal(t, domain.MsgNoCityData, msg)
}

func TestLoad_EmptyDateIsMissing(t *testing.T) {
	path := writeCSV(t, "Measure,Data Value,Start_Date\nNO2,1,\n")

	ds, err := NewLoader(discardLogger()).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	assert.False(t, ds.Records[0].HasDate)
}

func TestLoad_MalformedDate(t *testing.T) {
	path := writeCSV(t, "Measure,Data Value,Start_Date\nNO2,1,01/01/2020\nNO2,2,not-a-date\n")

	_, err := NewLoader(discardLogger()).Load(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLoad))

	var perr *domain.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Row)
	assert.Equal(t, domain.ColumnStartDate, perr.Column)
	assert.Equal(t, "not-a-date", perr.Value)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader(discardLogger()).Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLoad))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	_, err := NewLoader(discardLogger()).Load(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLoad))
}

func TestLoad_RaggedRows(t *testing.T) {
	path := writeCSV(t, "Measure,Data Value\nNO2,1,extra\n")
	_, err := NewLoader(discardLogger()).Load(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLoad))
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(discardLogger()).Load(ctx, "unused.csv")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_MockFixture(t *testing.T) {
	path := filepath.Join("..", "..", "..", "data", "mock", "air_quality_sample.csv")

	ds, err := NewLoader(discardLogger()).Load(context.Background(), path)
	require.NoError(t, err)
	assert.NotEmpty(t, ds.Records)
	assert.Contains(t, ds.Measures(), "PM2.5")

	views := domain.ComputeViews(ds, domain.Options{})
	for _, name := range domain.ViewNames {
		_, placeholder := domain.IsPlaceholder(views[name])
		assert.False(t, placeholder, "view %s", name)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{
		"06/01/2021",
		"6/1/2021",
		"2021-06-01",
		" 2021-06-01 00:00:00 ",
		"2021-06-01T00:00:00",
		"2021-06-01T00:00:00.000",
		"2021-06-01T00:00:00Z",
		"06/01/2021 00:00",
		"6/1/2021 00:00",
	} {
		got, err := ParseDate(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), "%s parsed as %s", raw, got)
	}

	_, err := ParseDate("June 1st")
	assert.Error(t, err)
}

func TestParseDate_KeepsOffset(t *testing.T) {
	got, err := ParseDate("2021-01-31T23:00:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 31, got.Day())
}

func TestLoad_UnpaddedAndZonelessDates(t *testing.T) {
	path := writeCSV(t, "Measure,Data Value,Start_Date\nPM2.5,40,1/5/2021\nPM2.5,60,2021-02-05T00:00:00\n")

	ds, err := NewLoader(discardLogger()).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, time.Date(2021, time.January, 5, 0, 0, 0, 0, time.UTC), ds.Records[0].StartDate)
	assert.Equal(t, time.Date(2021, time.February, 5, 0, 0, 0, 0, time.UTC), ds.Records[1].StartDate)
}

func TestLoad_OffsetDateStaysInLocalMonth(t *testing.T) {
	path := writeCSV(t, "Measure,Data Value,Start_Date\nPM2.5,40,2021-01-31T23:00:00-05:00\n")

	ds, err := NewLoader(discardLogger()).Load(context.Background(), path)
	require.NoError(t, err)

	months := domain.MonthlyMeans(ds, "PM2.5")
	require.Len(t, months, 1)
	assert.Equal(t, "2021-01", months[0].Label())
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "Geo Place Name,Measure,Data Value,Start_Date\n")

	ds, err := NewLoader(discardLogger()).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, ds.Records)
	for _, f := range domain.Fields {
		assert.True(t, ds.Schema.Has(f), "field %s", f)
	}

	views := domain.ComputeViews(ds, domain.Options{})
	assert.Len(t, views, len(domain.ViewNames))
}

func TestLoad_ByteOrderMark(t *testing.T) {
	path := writeCSV(t, "\ufeffGeo Place Name,Measure,Data Value\nQueens,NO2,20\n")

	ds, err := NewLoader(discardLogger()).Load(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, ds.Schema.Has(domain.FieldPlace))
	require.Len(t, ds.Records, 1)
	assert.Equal(t, "Queens", ds.Records[0].Place)

	_, placeholder := domain.IsPlaceholder(domain.CityView(ds, domain.DefaultTopCities))
	assert.False(t, placeholder)
}
