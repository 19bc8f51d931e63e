package domain

// Category is an AQI severity bucket. The zero value is Good; ordering follows
// severity.
type Category int

const (
	Good Category = iota
	Moderate
	UnhealthyForSensitiveGroups
	Unhealthy
	VeryUnhealthy
	Hazardous
)

// Categories lists every category from least to most severe.
var Categories = []Category{Good, Moderate, UnhealthyForSensitiveGroups, Unhealthy, VeryUnhealthy, Hazardous}

var categoryLabels = map[Category]string{
	Good:                        "Good",
	Moderate:                    "Moderate",
	UnhealthyForSensitiveGroups: "Unhealthy for Sensitive Groups",
	Unhealthy:                   "Unhealthy",
	VeryUnhealthy:               "Very Unhealthy",
	Hazardous:                   "Hazardous",
}

var categoryColors = map[Category]string{
	Good:                        "green",
	Moderate:                    "yellow",
	UnhealthyForSensitiveGroups: "orange",
	Unhealthy:                   "red",
	VeryUnhealthy:               "purple",
	Hazardous:                   "maroon",
}

func (c Category) String() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return "unknown"
}

// Color is the fixed display color for the category.
func (c Category) Color() string { return categoryColors[c] }

// Categorize maps a value onto the AQI breakpoints. Upper bounds are inclusive.
func Categorize(value float64) Category {
	switch {
	case value <= 50:
		return Good
	case value <= 100:
		return Moderate
	case value <= 150:
		return UnhealthyForSensitiveGroups
	case value <= 200:
		return Unhealthy
	case value <= 300:
		return VeryUnhealthy
	default:
		return Hazardous
	}
}
