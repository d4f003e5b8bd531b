package chart

import "github.com/theirongolddev/coopcost/internal/model"

// Simple builds the three-panel bar document: monthly cost per resident,
// residents and required investment, each stacked by category and ordered
// by scenario input order.
func Simple(f Frame, recs model.Records) Spec {
	spec := newSpec(f)
	w := f.width() / 3

	bar := func(values any, field, title string, axis Axis) View {
		axis.Title = title
		return View{
			Width: w,
			Data:  &Data{Values: values},
			Mark:  &Mark{Type: "bar"},
			Encoding: &Encoding{
				X:       &Channel{Field: "scenario", Type: "ordinal", Sort: recs.ScenarioOrder},
				Y:       &Channel{Field: field, Type: "quantitative", Aggregate: "sum", Axis: &axis},
				Color:   &Channel{Field: "category", Type: "nominal"},
				Tooltip: tooltip("category", field, title),
			},
		}
	}

	residents := bar(nonNil(recs.Residents), "count", "# Residents", Axis{TickMinStep: 1})
	residents.Encoding.Tooltip[1].Format = ""

	spec.HConcat = []View{
		bar(nonNil(recs.MonthlyPerResident), "cost", "Monthly Cost per Resident", Axis{Format: costFormat}),
		residents,
		bar(nonNil(recs.Upfront), "cost", "Required Investment", Axis{Format: costFormat}),
	}
	return spec
}

// nonNil keeps empty record sets encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
