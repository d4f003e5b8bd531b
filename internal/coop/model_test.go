package coop

import (
	"math"
	"testing"

	"github.com/theirongolddev/coopcost/internal/model"
	"github.com/theirongolddev/coopcost/internal/pipeline"
)

func TestPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		want      float64
	}{
		{"standard 30y", 200_000, 0.06, 30, 1199.10},
		{"zero rate", 360_000, 0, 30, 1000},
		{"nothing financed", 0, 0.05, 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Payment(tt.principal, tt.rate, tt.years)
			if math.Abs(got-tt.want) > 0.01 {
				t.Fatalf("Payment = %.2f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestVariablesValid(t *testing.T) {
	if err := Variables().Validate(); err != nil {
		t.Fatalf("built-in variables invalid: %v", err)
	}
}

func TestMonthly_CategoryOrder(t *testing.T) {
	m := New(RateOverrides{})
	costs, err := pipeline.Summarize(m.Monthly, m.Variables(), nil)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	want := []string{"mortgage", "property taxes", "insurance", "utilities", "maintenance"}
	got := costs.Categories()
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if u, _ := costs.Get("utilities"); u != 150+90*6 {
		t.Errorf("utilities = %v, want %v", u, 150+90*6)
	}
}

func TestScenarios_Aggregate(t *testing.T) {
	m := New(RateOverrides{})
	recs, err := pipeline.AggregateWith(m.Scenarios, m.Variables(), model.Values{Bedrooms: model.Num(4)})
	if err != nil {
		t.Fatalf("AggregateWith: %v", err)
	}
	want := []string{ScenarioHousehold, ScenarioCoop, ScenarioLandTrust}
	for i, name := range want {
		if recs.ScenarioOrder[i] != name {
			t.Fatalf("ScenarioOrder = %v, want %v", recs.ScenarioOrder, want)
		}
	}

	totals := recs.ScenarioTotals()
	coop, _ := totals.Get(ScenarioCoop)
	trust, _ := totals.Get(ScenarioLandTrust)
	household, _ := totals.Get(ScenarioHousehold)
	if coop <= 0 || trust <= 0 || household <= 0 {
		t.Fatalf("totals = %+v", totals)
	}
	// four co-op members split the same house as four household residents,
	// plus the co-op fee.
	if math.Abs(coop-household-25) > 1e-6 {
		t.Errorf("coop - household per resident = %v, want 25", coop-household)
	}
	if trust >= coop {
		t.Errorf("land trust per resident %v should be below co-op %v", trust, coop)
	}
}

func TestRateOverrides(t *testing.T) {
	tax := 0.02
	years := 15
	m := New(RateOverrides{PropertyTax: &tax, LoanYears: &years})
	if m.Rates.PropertyTax != 0.02 || m.Rates.LoanYears != 15 {
		t.Fatalf("rates = %+v", m.Rates)
	}
	if m.Rates.Insurance != DefaultRates.Insurance {
		t.Fatalf("unset override changed insurance to %v", m.Rates.Insurance)
	}

	costs, err := m.Monthly(Variables().Defaults())
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := costs.Get("property taxes"); math.Abs(got-750_000*0.02/12) > 1e-6 {
		t.Errorf("property taxes = %v", got)
	}
}

func TestMonthly_RejectsBadLoanTerm(t *testing.T) {
	zero := 0
	m := New(RateOverrides{LoanYears: &zero})
	if _, err := m.Monthly(Variables().Defaults()); err == nil {
		t.Fatal("expected error for zero loan term")
	}
}
