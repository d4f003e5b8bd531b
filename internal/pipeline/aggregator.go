// Package pipeline turns cost functions and scenarios into chart-ready records.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/coopcost/internal/model"
)

// ErrNoResidents is returned when a scenario has monthly costs to split
// but its resident count is not positive.
var ErrNoResidents = errors.New("scenario has monthly costs but no residents")

// ScenarioFunc computes scenarios from resolved variable values.
type ScenarioFunc func(model.Values) ([]model.Scenario, error)

// MonthlyFunc computes a single category -> monthly cost mapping.
type MonthlyFunc func(model.Values) (model.Amounts, error)

// Aggregate flattens scenarios into per-resident monthly cost, resident
// count and upfront cost records. Records follow input scenario order, then
// category insertion order.
func Aggregate(scenarios []model.Scenario) (model.Records, error) {
	var recs model.Records
	seen := make(map[string]struct{}, len(scenarios))

	for _, s := range scenarios {
		if _, ok := seen[s.Name]; !ok {
			seen[s.Name] = struct{}{}
			recs.ScenarioOrder = append(recs.ScenarioOrder, s.Name)
		}

		residents := s.TotalResidents()
		if len(s.MonthlyCost) > 0 && !(residents > 0) {
			return model.Records{}, fmt.Errorf("scenario %q: %w (total %g)", s.Name, ErrNoResidents, residents)
		}

		for _, c := range s.MonthlyCost {
			recs.MonthlyPerResident = append(recs.MonthlyPerResident, model.CostRecord{
				Category: c.Category,
				Scenario: s.Name,
				Cost:     c.Value / residents,
			})
		}
		for _, p := range s.NumberPeople {
			recs.Residents = append(recs.Residents, model.CountRecord{
				Category: p.Category,
				Scenario: s.Name,
				Count:    p.Value,
			})
		}
		for _, u := range s.UpfrontCost {
			recs.Upfront = append(recs.Upfront, model.CostRecord{
				Category: u.Category,
				Scenario: s.Name,
				Cost:     u.Value,
			})
		}
	}

	return recs, nil
}

// AggregateWith resolves overrides against vars, calls fn and aggregates
// the resulting scenarios.
func AggregateWith(fn ScenarioFunc, vars model.VariableSet, overrides model.Values) (model.Records, error) {
	vals, err := vars.Resolve(overrides)
	if err != nil {
		return model.Records{}, err
	}
	scenarios, err := fn(vals)
	if err != nil {
		return model.Records{}, fmt.Errorf("computing scenarios: %w", err)
	}
	return Aggregate(scenarios)
}

// Summarize resolves overrides against vars and returns fn's category ->
// monthly cost mapping unchanged.
func Summarize(fn MonthlyFunc, vars model.VariableSet, overrides model.Values) (model.Amounts, error) {
	vals, err := vars.Resolve(overrides)
	if err != nil {
		return nil, err
	}
	costs, err := fn(vals)
	if err != nil {
		return nil, fmt.Errorf("computing monthly costs: %w", err)
	}
	return costs, nil
}
