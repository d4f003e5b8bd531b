package pipeline

import (
	"errors"
	"fmt"
	"iter"

	"github.com/theirongolddev/coopcost/internal/model"
)

// ErrUnknownActive is returned when the swept variable is not declared.
var ErrUnknownActive = errors.New("unknown sweep variable")

// Sweep evaluates total monthly cost across the active variable's domain,
// holding every other variable at its resolved value. Arguments are checked
// before the sequence is returned; the sequence itself is lazy, restartable
// and stops after the first cost function error.
func Sweep(fn MonthlyFunc, vars model.VariableSet, active string, held model.Values) (iter.Seq2[model.SweepPoint, error], error) {
	v, ok := vars.Lookup(active)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownActive, active)
	}
	vals, err := vars.Resolve(held)
	if err != nil {
		return nil, err
	}

	return func(yield func(model.SweepPoint, error) bool) {
		for setting := range v.Domain.Values() {
			costs, err := fn(vals.With(active, setting))
			if err != nil {
				yield(model.SweepPoint{Value: setting}, fmt.Errorf("sweeping %s at %s: %w", active, setting, err))
				return
			}
			if !yield(model.SweepPoint{Value: setting, Total: costs.Total()}, nil) {
				return
			}
		}
	}, nil
}

// SweepAll sweeps every declared variable in order.
func SweepAll(fn MonthlyFunc, vars model.VariableSet, held model.Values) ([]model.SweepSeries, error) {
	vals, err := vars.Resolve(held)
	if err != nil {
		return nil, err
	}

	series := make([]model.SweepSeries, 0, len(vars))
	for _, v := range vars {
		seq, err := Sweep(fn, vars, v.Name, vals)
		if err != nil {
			return nil, err
		}
		s := model.SweepSeries{Variable: v.Name, Held: vals[v.Name]}
		for p, err := range seq {
			if err != nil {
				return nil, err
			}
			s.Points = append(s.Points, p)
		}
		series = append(series, s)
	}
	return series, nil
}
