package chart

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/theirongolddev/coopcost/internal/coop"
	"github.com/theirongolddev/coopcost/internal/model"
)

func testVars() model.VariableSet {
	return model.VariableSet{
		{Name: "price", Title: "Sale", Label: "Price", Domain: model.Range{Start: 0, Stop: 100, Step: 50}, Default: model.Num(50), Format: model.FormatCurrency},
		{Name: "plan", Title: "Plan", Label: "Type", Domain: model.Choices{{Value: model.Text("a"), Label: "Alpha"}, {Value: model.Text("b"), Label: "Beta"}}, Default: model.Text("a"), Format: model.FormatPlain},
	}
}

func TestSubtitle(t *testing.T) {
	vars := testVars()
	vals := model.Values{"price": model.Num(100), "plan": model.Text("b")}

	got := Subtitle("Price {price}, plan {plan}\nleft {missing}", vars, vals)
	want := []string{"Price $100, plan Beta", "left {missing}"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Subtitle = %q, want %q", got, want)
	}

	if got := Subtitle("", vars, vals); got != nil {
		t.Errorf("empty template = %q, want nil", got)
	}
}

func TestAxisFormat(t *testing.T) {
	tests := map[model.Format]string{
		model.FormatCurrency: "$.2s",
		model.FormatPercent:  ".1%",
		model.FormatCount:    ".2s",
		model.FormatOrdinal:  ".1s",
		model.FormatPlain:    "",
	}
	for f, want := range tests {
		if got := AxisFormat(f); got != want {
			t.Errorf("AxisFormat(%q) = %q, want %q", f, got, want)
		}
	}
}

func TestBindings(t *testing.T) {
	vars := testVars()
	params := bindings(vars, model.Values{"price": model.Num(100)})
	if len(params) != 2 {
		t.Fatalf("got %d params, want 2", len(params))
	}

	slider := params[0]
	if slider.Bind.Input != "range" || *slider.Bind.Min != 0 || *slider.Bind.Max != 100 || *slider.Bind.Step != 50 {
		t.Errorf("slider bind = %+v", slider.Bind)
	}
	if slider.Bind.Name != "Sale Price" {
		t.Errorf("slider name = %q, want %q", slider.Bind.Name, "Sale Price")
	}
	if v := slider.Value.(model.Value); v.Float() != 100 {
		t.Errorf("slider value = %v, want 100", v)
	}

	radio := params[1]
	if radio.Bind.Input != "radio" {
		t.Errorf("radio input = %q", radio.Bind.Input)
	}
	if !reflect.DeepEqual(radio.Bind.Labels, []string{"Alpha", "Beta"}) {
		t.Errorf("radio labels = %v", radio.Bind.Labels)
	}
	// Missing values fall back to the default.
	if v := radio.Value.(model.Value); v.String() != "a" {
		t.Errorf("radio value = %v, want a", v)
	}
}

func TestSimple(t *testing.T) {
	recs := model.Records{
		MonthlyPerResident: []model.CostRecord{{Category: "rent", Scenario: "B", Cost: 10}},
		Residents:          []model.CountRecord{{Category: "adults", Scenario: "B", Count: 2}},
		ScenarioOrder:      []string{"B", "A"},
	}
	spec := Simple(Frame{Variables: testVars(), Values: testVars().Defaults()}, recs)

	if spec.Title.Text != Headline || spec.Title.FontSize != 40 || spec.Title.Anchor != "start" {
		t.Errorf("title = %+v", spec.Title)
	}
	if len(spec.HConcat) != 3 {
		t.Fatalf("got %d panels, want 3", len(spec.HConcat))
	}

	titles := []string{"Monthly Cost per Resident", "# Residents", "Required Investment"}
	for i, v := range spec.HConcat {
		if v.Encoding.Y.Axis.Title != titles[i] {
			t.Errorf("panel %d title = %q, want %q", i, v.Encoding.Y.Axis.Title, titles[i])
		}
		if !reflect.DeepEqual(v.Encoding.X.Sort, []string{"B", "A"}) {
			t.Errorf("panel %d sort = %v", i, v.Encoding.X.Sort)
		}
	}
	if spec.HConcat[1].Encoding.Y.Axis.TickMinStep != 1 {
		t.Error("residents axis should step by whole people")
	}
	if spec.HConcat[0].Encoding.Y.Axis.Format != "$.3s" {
		t.Errorf("cost format = %q", spec.HConcat[0].Encoding.Y.Axis.Format)
	}

	// Empty upfront records still encode as an array.
	var buf bytes.Buffer
	if err := Write(&buf, spec); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `"values": null`) {
		t.Error("empty record set encoded as null")
	}
}

func TestComplex(t *testing.T) {
	vars := testVars()
	costs := model.Amounts{{Category: "rent", Value: 5}}
	series := []model.SweepSeries{
		{Variable: "price", Held: model.Num(50), Points: []model.SweepPoint{{Value: model.Num(0), Total: 1}, {Value: model.Num(50), Total: 2}}},
		{Variable: "plan", Held: model.Text("b"), Points: []model.SweepPoint{{Value: model.Text("a"), Total: 3}, {Value: model.Text("b"), Total: 4}}},
		{Variable: "ghost"},
	}
	spec := Complex(Frame{Variables: vars, Values: vars.Defaults()}, costs, series)

	if len(spec.VConcat) != 3 {
		t.Fatalf("got %d panels, want pie + 2 lines", len(spec.VConcat))
	}
	if spec.VConcat[0].Mark.Type != "arc" {
		t.Errorf("first panel mark = %q, want arc", spec.VConcat[0].Mark.Type)
	}

	price := spec.VConcat[1]
	if len(price.Layer) != 5 {
		t.Fatalf("got %d layers, want 5", len(price.Layer))
	}
	if x := price.Layer[0].Encoding.X; x.Type != "quantitative" || x.Axis.Format != "$.2s" {
		t.Errorf("range x = %+v", x)
	}
	sel := price.Layer[1].Params[0]
	if sel.Name != "hover_price" || !sel.Select.Nearest || sel.Select.On != "pointerover" {
		t.Errorf("crosshair selection = %+v", sel.Select)
	}
	if d := price.Layer[4].Mark.StrokeDash; len(d) == 0 {
		t.Error("held marker should be dashed")
	}

	plan := spec.VConcat[2]
	x := plan.Layer[0].Encoding.X
	if x.Field != "label" || x.Type != "ordinal" || !reflect.DeepEqual(x.Sort, []string{"Alpha", "Beta"}) {
		t.Errorf("choice x = %+v", x)
	}
	rows := plan.Data.Values.([]sweepRow)
	if rows[1].Label != "Beta" || rows[1].Total != 4 {
		t.Errorf("choice row = %+v", rows[1])
	}
	held := plan.Layer[4].Data.Values.([]sweepRow)
	if held[0].Label != "Beta" {
		t.Errorf("held label = %q, want Beta", held[0].Label)
	}
}

func TestBuild(t *testing.T) {
	src := coop.New(coop.RateOverrides{})
	opts := Options{Subtitle: "{bedrooms} bedrooms"}

	for _, kind := range Kinds {
		spec, stats, err := Build(kind, src, opts, model.Values{coop.Bedrooms: model.Num(4)})
		if err != nil {
			t.Fatalf("Build(%s): %v", kind, err)
		}
		if stats.Records == 0 {
			t.Errorf("Build(%s) reported no records", kind)
		}
		if spec.Title.Subtitle[0] != "4 bedrooms" {
			t.Errorf("Build(%s) subtitle = %q", kind, spec.Title.Subtitle)
		}
	}

	_, stats, _ := Build(KindSimple, src, opts, nil)
	if stats.Scenarios != 3 {
		t.Errorf("simple scenarios = %d, want 3", stats.Scenarios)
	}

	if _, _, err := Build(KindSimple, src, opts, model.Values{"nope": model.Num(1)}); err == nil {
		t.Error("expected error for unknown variable")
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("Complex"); err != nil || k != KindComplex {
		t.Errorf("ParseKind(Complex) = %q, %v", k, err)
	}
	if _, err := ParseKind("radar"); err == nil {
		t.Error("expected error for unknown kind")
	}
	if KindSimple.DefaultFileName() != "simple.json" {
		t.Errorf("file name = %q", KindSimple.DefaultFileName())
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "simple.json")
	spec := Summary(Frame{Variables: testVars(), Values: testVars().Defaults()}, model.Amounts{{Category: "rent", Value: 5}})

	if err := WriteFile(path, spec); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc["$schema"] != SchemaURL {
		t.Errorf("$schema = %v", doc["$schema"])
	}
	if !strings.Contains(string(data), Headline) {
		t.Error("headline should be written unescaped")
	}
	cfg := doc["config"].(map[string]any)
	if cfg["view"].(map[string]any)["stroke"] != "transparent" {
		t.Errorf("view config = %v", cfg["view"])
	}
}
