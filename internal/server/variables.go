package server

import "github.com/theirongolddev/coopcost/internal/model"

// VariableInfo describes one input at /v1/variables.
type VariableInfo struct {
	Name    string       `json:"name"`
	Title   string       `json:"title"`
	Label   string       `json:"label"`
	Format  model.Format `json:"format"`
	Default model.Value  `json:"default"`
	Kind    string       `json:"kind"`
	Start   *float64     `json:"start,omitempty"`
	Stop    *float64     `json:"stop,omitempty"`
	Step    *float64     `json:"step,omitempty"`
	Choices []ChoiceInfo `json:"choices,omitempty"`
}

// ChoiceInfo is one discrete setting.
type ChoiceInfo struct {
	Value model.Value `json:"value"`
	Label string      `json:"label"`
}

func describe(v model.Variable) VariableInfo {
	info := VariableInfo{
		Name:    v.Name,
		Title:   v.Title,
		Label:   v.Label,
		Format:  v.Format,
		Default: v.Default,
	}
	switch d := v.Domain.(type) {
	case model.Range:
		info.Kind = "range"
		info.Start, info.Stop, info.Step = &d.Start, &d.Stop, &d.Step
	case model.Choices:
		info.Kind = "choices"
		for _, c := range d {
			info.Choices = append(info.Choices, ChoiceInfo{Value: c.Value, Label: c.Label})
		}
	}
	return info
}
