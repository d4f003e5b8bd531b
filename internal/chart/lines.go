package chart

import "github.com/theirongolddev/coopcost/internal/model"

// Summary builds the pie document of a category -> monthly cost mapping.
func Summary(f Frame, costs model.Amounts) Spec {
	spec := newSpec(f)
	spec.HConcat = []View{pie(f, costs)}
	return spec
}

func pie(f Frame, costs model.Amounts) View {
	return View{
		Title:  "Monthly Cost",
		Width:  f.width() / 3,
		Height: f.width() / 3,
		Data:   &Data{Values: nonNil(costs)},
		Mark:   &Mark{Type: "arc", InnerRadius: 40},
		Encoding: &Encoding{
			Theta:   &Channel{Field: "value", Type: "quantitative"},
			Color:   &Channel{Field: "category", Type: "nominal", Sort: costs.Categories()},
			Tooltip: tooltip("category", "value", "Monthly Cost"),
		},
	}
}

// Complex builds the multi-panel document: the summary pie, then one line
// chart per swept variable with a crosshair that follows the pointer and a
// dashed marker at the held value.
func Complex(f Frame, costs model.Amounts, series []model.SweepSeries) Spec {
	spec := newSpec(f)
	spec.VConcat = append(spec.VConcat, pie(f, costs))
	for _, s := range series {
		v, ok := f.Variables.Lookup(s.Variable)
		if !ok {
			continue
		}
		spec.VConcat = append(spec.VConcat, sweepPanel(f, v, s))
	}
	return spec
}

type sweepRow struct {
	Value model.Value `json:"value"`
	Label string      `json:"label,omitempty"`
	Total float64     `json:"total"`
}

func sweepPanel(f Frame, v model.Variable, s model.SweepSeries) View {
	rows := make([]sweepRow, len(s.Points))
	for i, p := range s.Points {
		rows[i] = sweepRow{Value: p.Value, Total: p.Total}
	}

	x := Channel{Field: "value", Type: "quantitative", Title: v.Display(), Axis: &Axis{Format: AxisFormat(v.Format)}}
	held := sweepRow{Value: s.Held}
	if c, ok := v.Domain.(model.Choices); ok {
		for i := range rows {
			rows[i].Label = c.Label(rows[i].Value)
		}
		held.Label = c.Label(s.Held)
		x = Channel{Field: "label", Type: "ordinal", Title: v.Display(), Sort: c.Labels()}
	}
	y := Channel{Field: "total", Type: "quantitative", Title: "Total Monthly Cost", Axis: &Axis{Format: costFormat}}

	hover := "hover_" + v.Name
	noEmpty := false
	selected := []Transform{{Filter: &Filter{Param: hover, Empty: &noEmpty}}}

	return View{
		Width:  f.width(),
		Height: 200,
		Data:   &Data{Values: rows},
		Layer: []View{
			{
				Mark:     &Mark{Type: "line"},
				Encoding: &Encoding{X: &x, Y: &y},
			},
			{
				Mark: &Mark{Type: "point"},
				Params: []Param{{
					Name: hover,
					Select: &Select{
						Type:    "point",
						Fields:  []string{x.Field},
						Nearest: true,
						On:      "pointerover",
						Clear:   "pointerout",
					},
				}},
				Encoding: &Encoding{
					X: &x,
					Y: &y,
					Opacity: &Channel{
						Value:     0,
						Condition: &Condition{Param: hover, Value: 1, Empty: &noEmpty},
					},
				},
			},
			{
				Transform: selected,
				Mark:      &Mark{Type: "rule", Color: "gray"},
				Encoding:  &Encoding{X: &x},
			},
			{
				Transform: selected,
				Mark:      &Mark{Type: "text", Align: "left", Dx: 5, Dy: -5},
				Encoding: &Encoding{
					X:    &x,
					Y:    &y,
					Text: &Channel{Field: "total", Type: "quantitative", Format: costFormat},
				},
			},
			{
				Data:     &Data{Values: []sweepRow{held}},
				Mark:     &Mark{Type: "rule", StrokeDash: []int{4, 4}},
				Encoding: &Encoding{X: &x},
			},
		},
	}
}
