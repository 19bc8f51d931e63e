// Package domain models air-quality measurement data and derives the chart
// views shown on the dashboard.
//
// # Data Source
//
// Measurements come from a flat CSV export in the layout of the NYC Open Data
// "Air Quality" dataset. Only four columns are used; everything else in the
// file is ignored:
//
//	Geo Place Name  neighborhood or borough the measurement covers ("Chelsea - Clinton")
//	Measure         pollutant or metric the value represents ("PM2.5", "NO2")
//	Data Value      numeric reading; its unit depends on Measure
//	Start_Date      first day of the observation period ("12/01/2008")
//
// Any of these columns may be absent. The loader records which ones it saw in
// a [Schema] and every view checks the fields it needs through [Guard] before
// computing, so a file without place names still yields the other five views.
//
// # Missing Values
//
// Empty or unparsable cells in "Data Value" are kept as records with
// HasValue=false and are skipped by every aggregate. Empty "Start_Date" cells
// set HasDate=false and exclude the record from the time-based views (trend,
// heatmap).
//
// # AQI Categories
//
// Values are bucketed with the EPA Air Quality Index breakpoints, inclusive
// upper bounds:
//
//	  0–50   Good
//	 51–100  Moderate
//	101–150  Unhealthy for Sensitive Groups
//	151–200  Unhealthy
//	201–300  Very Unhealthy
//	  >300   Hazardous
//
// The raw "Data Value" is classified directly, whatever its measure. This is
// a coarse severity indicator, not a true AQI computation.
//
// # Views
//
// Each of the six views is a pure function of a [Dataset] and returns a
// [Chart]: either a concrete figure or a [Placeholder] explaining why the
// figure could not be built. Views never fail.
package domain
