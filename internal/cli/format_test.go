package cli

import (
	"math"
	"strings"
	"testing"

	"github.com/theirongolddev/coopcost/internal/model"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		format model.Format
		value  model.Value
		want   string
	}{
		{model.FormatCurrency, model.Num(750_000), "$750,000"},
		{model.FormatCurrency, model.Num(12.5), "$12.50"},
		{model.FormatPercent, model.Num(0.065), "6.5%"},
		{model.FormatPercent, model.Num(0.3), "30%"},
		{model.FormatPercent, model.Num(0.0675), "6.75%"},
		{model.FormatCount, model.Num(1200), "1,200"},
		{model.FormatCount, model.Num(2.5), "2.5"},
		{model.FormatOrdinal, model.Num(1), "1st"},
		{model.FormatOrdinal, model.Num(12), "12th"},
		{model.FormatOrdinal, model.Num(23), "23rd"},
		{model.FormatPlain, model.Num(0.25), "0.25"},
		{model.FormatCurrency, model.Text("cash"), "cash"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.format, tt.value); got != tt.want {
			t.Errorf("FormatValue(%q, %v) = %q, want %q", tt.format, tt.value, got, tt.want)
		}
	}
}

func TestFormatSetting_UsesChoiceLabel(t *testing.T) {
	v := model.Variable{
		Name:   "down",
		Domain: model.Choices{{Value: model.Num(0.2), Label: "twenty"}},
		Format: model.FormatPercent,
	}
	if got := FormatSetting(v, model.Num(0.2)); got != "twenty" {
		t.Fatalf("FormatSetting = %q, want twenty", got)
	}
}

func TestFormatCost(t *testing.T) {
	tests := map[float64]string{
		0:       "$0.00",
		42.126:  "$42.13",
		1234.5:  "$1,235",
		-1234.5: "-$1,235",
	}
	for in, want := range tests {
		if got := FormatCost(in); got != want {
			t.Errorf("FormatCost(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{-12, "-12"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
		{-123456, "-123,456"},
		{math.MaxInt64, "9,223,372,036,854,775,807"},
		{math.MinInt64, "-9,223,372,036,854,775,808"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCost_OutOfRange(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1e300, "$1e+300"},
		{-1e300, "-$1e+300"},
		{math.Inf(1), "$+Inf"},
		{math.NaN(), "$NaN"},
	}
	for _, tt := range tests {
		if got := FormatCost(tt.in); got != tt.want {
			t.Errorf("FormatCost(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Cost"},
		Rows: [][]string{
			{"utilities", "$690.00"},
			{"---"},
			{"TOTAL", "$5,000"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "utilities") || !strings.Contains(out, "$5,000") {
		t.Fatalf("missing cells:\n%s", out)
	}
}
