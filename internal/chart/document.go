package chart

import (
	"strings"

	"github.com/theirongolddev/coopcost/internal/cli"
	"github.com/theirongolddev/coopcost/internal/model"
)

// Headline is the default document title.
const Headline = "👇 Drag the sliders to change 🏡 values ❣️"

// DefaultWidth is the pixel width a full-width panel spans.
const DefaultWidth = 800

const costFormat = "$.3s"

// Options are the display settings shared by every document.
type Options struct {
	Title    string
	Subtitle string // template; {variable} placeholders are substituted
	Width    int
}

// Frame is everything a document needs besides its data.
type Frame struct {
	Options
	Variables model.VariableSet
	Values    model.Values // resolved
}

func (f Frame) width() int {
	if f.Width <= 0 {
		return DefaultWidth
	}
	return f.Width
}

// AxisFormat maps a display-format tag to a d3 format string.
func AxisFormat(f model.Format) string {
	switch f {
	case model.FormatCurrency:
		return "$.2s"
	case model.FormatPercent:
		return ".1%"
	case model.FormatCount:
		return ".2s"
	case model.FormatOrdinal:
		return ".1s"
	default:
		return ""
	}
}

// Subtitle substitutes {name} placeholders with the display form of each
// variable's value. Unknown placeholders stay as written; each line of the
// result is one subtitle line.
func Subtitle(template string, vars model.VariableSet, vals model.Values) []string {
	if template == "" {
		return nil
	}
	pairs := make([]string, 0, 2*len(vars))
	for _, v := range vars {
		val, ok := vals[v.Name]
		if !ok {
			continue
		}
		pairs = append(pairs, "{"+v.Name+"}", cli.FormatSetting(v, val))
	}
	return strings.Split(strings.NewReplacer(pairs...).Replace(template), "\n")
}

// newSpec returns a document with the shared title, slider bindings and
// styling configured.
func newSpec(f Frame) Spec {
	text := f.Title
	if text == "" {
		text = Headline
	}
	return Spec{
		Schema: SchemaURL,
		Title: &Title{
			Text:     text,
			Anchor:   "start",
			FontSize: 40,
			Subtitle: Subtitle(f.Subtitle, f.Variables, f.Values),
			Align:    "left",
		},
		Params: bindings(f.Variables, f.Values),
		Config: &Config{
			Axis:   &AxisConfig{Grid: true, TitleFontSize: 20, LabelFontSize: 15},
			Legend: &LegendConfig{TitleFontSize: 20, LabelFontSize: 16, TitleLimit: 600},
			View:   &ViewConfig{Stroke: "transparent"},
		},
	}
}

// bindings turns every variable into a parameter bound to a slider or a
// radio group, initialised to its current value.
func bindings(vars model.VariableSet, vals model.Values) []Param {
	params := make([]Param, 0, len(vars))
	for _, v := range vars {
		val, ok := vals[v.Name]
		if !ok {
			val = v.Default
		}
		p := Param{Name: v.Name, Value: val}
		switch d := v.Domain.(type) {
		case model.Range:
			start, stop, step := d.Start, d.Stop, d.Step
			p.Bind = &Bind{Input: "range", Min: &start, Max: &stop, Step: &step, Name: v.Display()}
		case model.Choices:
			p.Bind = &Bind{
				Input:   "radio",
				Options: collectValues(d),
				Labels:  d.Labels(),
				Name:    v.Display(),
			}
		}
		params = append(params, p)
	}
	return params
}

func collectValues(d model.Domain) []model.Value {
	var out []model.Value
	for v := range d.Values() {
		out = append(out, v)
	}
	return out
}

func tooltip(category, value, title string) []Channel {
	return []Channel{
		{Field: category, Type: "nominal"},
		{Field: value, Type: "quantitative", Format: costFormat, Title: title},
	}
}
