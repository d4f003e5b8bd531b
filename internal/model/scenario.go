// Package model defines the domain types for coopcost: scenarios, variables,
// their domains and the record sets handed to charts.
package model

// Amount is one category entry of a scenario mapping.
type Amount struct {
	Category string  `json:"category" toml:"category"`
	Value    float64 `json:"value" toml:"value"`
}

// Amounts maps category -> value, keeping insertion order.
type Amounts []Amount

// Set assigns v to category. An existing category keeps its position.
func (a *Amounts) Set(category string, v float64) {
	for i := range *a {
		if (*a)[i].Category == category {
			(*a)[i].Value = v
			return
		}
	}
	*a = append(*a, Amount{Category: category, Value: v})
}

// Get returns the value for category and whether it is present.
func (a Amounts) Get(category string) (float64, bool) {
	for _, e := range a {
		if e.Category == category {
			return e.Value, true
		}
	}
	return 0, false
}

// Total sums all values.
func (a Amounts) Total() float64 {
	var sum float64
	for _, e := range a {
		sum += e.Value
	}
	return sum
}

// Categories returns the category names in order.
func (a Amounts) Categories() []string {
	names := make([]string, len(a))
	for i, e := range a {
		names[i] = e.Category
	}
	return names
}

// Scenario is a named affordability configuration. The three mappings are
// independent: a category may appear in one and not the others.
type Scenario struct {
	Name         string
	MonthlyCost  Amounts
	UpfrontCost  Amounts
	NumberPeople Amounts
}

// TotalResidents is the sum of NumberPeople.
func (s Scenario) TotalResidents() float64 {
	return s.NumberPeople.Total()
}
