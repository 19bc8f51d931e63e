package domain

// CategoryCount is the number of valid values falling in a category.
type CategoryCount struct {
	Category Category
	Count    int
}

// CountCategories classifies every valid value and returns one entry per
// category, in severity order, zero counts included.
func CountCategories(ds Dataset) []CategoryCount {
	counts := make([]CategoryCount, len(Categories))
	for i, c := range Categories {
		counts[i].Category = c
	}
	for _, r := range ds.Records {
		if !r.HasValue {
			continue
		}
		counts[Categorize(r.Value)].Count++
	}
	return counts
}

// CategoryView draws the category distribution as a pie. Categories with no
// values are left out.
func CategoryView(ds Dataset) Chart {
	if p := Guard(ds.Schema, FieldValue); p != nil {
		return p
	}

	chart := &PieChart{Title: "Air Quality Category Distribution"}
	for _, cc := range CountCategories(ds) {
		if cc.Count == 0 {
			continue
		}
		chart.Slices = append(chart.Slices, PieSlice{
			Label: cc.Category.String(),
			Value: cc.Count,
			Color: cc.Category.Color(),
		})
	}
	return chart
}
