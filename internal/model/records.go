package model

// CostRecord is one (category, scenario) cost row handed to the chart.
type CostRecord struct {
	Category string  `json:"category"`
	Scenario string  `json:"scenario"`
	Cost     float64 `json:"cost"`
}

// CountRecord is one (category, scenario) headcount row.
type CountRecord struct {
	Category string  `json:"category"`
	Scenario string  `json:"scenario"`
	Count    float64 `json:"count"`
}

// Records holds the three flat record sets produced from a scenario list.
type Records struct {
	MonthlyPerResident []CostRecord  `json:"monthly_per_resident"`
	Residents          []CountRecord `json:"residents"`
	Upfront            []CostRecord  `json:"upfront"`

	// ScenarioOrder lists scenario names in first-seen input order.
	ScenarioOrder []string `json:"scenario_order"`
}

// Len returns the total number of records across all three sets.
func (r Records) Len() int {
	return len(r.MonthlyPerResident) + len(r.Residents) + len(r.Upfront)
}

// ScenarioTotals sums per-resident monthly cost by scenario, in ScenarioOrder.
func (r Records) ScenarioTotals() Amounts {
	totals := make(Amounts, 0, len(r.ScenarioOrder))
	for _, name := range r.ScenarioOrder {
		totals = append(totals, Amount{Category: name})
	}
	for _, rec := range r.MonthlyPerResident {
		v, _ := totals.Get(rec.Scenario)
		totals.Set(rec.Scenario, v+rec.Cost)
	}
	return totals
}

// SweepPoint is one (active value, total monthly cost) pair.
type SweepPoint struct {
	Value Value   `json:"value"`
	Total float64 `json:"total"`
}

// SweepSeries is the full sweep of one variable.
type SweepSeries struct {
	Variable string       `json:"variable"`
	Held     Value        `json:"held"`
	Points   []SweepPoint `json:"points"`
}
