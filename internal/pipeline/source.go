package pipeline

import "github.com/theirongolddev/coopcost/internal/model"

// Source is a cost model: its declared variables plus both cost functions.
type Source interface {
	Variables() model.VariableSet
	Monthly(model.Values) (model.Amounts, error)
	Scenarios(model.Values) ([]model.Scenario, error)
}
