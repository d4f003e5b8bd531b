package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariable is returned for a setting that names no declared variable.
	ErrUnknownVariable = errors.New("unknown variable")
	// ErrValueOutOfDomain is returned for a setting the variable's domain rejects.
	ErrValueOutOfDomain = errors.New("value out of domain")
)

// Format is the display-format tag of a variable.
type Format string

const (
	FormatCurrency Format = "$"
	FormatPercent  Format = "%"
	FormatCount    Format = "#"
	FormatOrdinal  Format = "O"
	FormatPlain    Format = "s"
)

// Valid reports whether f is a known tag.
func (f Format) Valid() bool {
	switch f {
	case FormatCurrency, FormatPercent, FormatCount, FormatOrdinal, FormatPlain:
		return true
	}
	return false
}

// Variable is a user-adjustable input of a cost function.
type Variable struct {
	Name    string
	Title   string
	Label   string
	Domain  Domain
	Default Value
	Format  Format
}

// Display is the title and axis label joined, e.g. "Sale price ($)".
func (v Variable) Display() string {
	if v.Label == "" {
		return v.Title
	}
	return v.Title + " " + v.Label
}

// Discrete reports whether the variable has a Choices domain.
func (v Variable) Discrete() bool {
	_, ok := v.Domain.(Choices)
	return ok
}

// Validate checks the domain, format and default.
func (v Variable) Validate() error {
	if v.Name == "" {
		return errors.New("variable has no name")
	}
	if v.Domain == nil {
		return fmt.Errorf("variable %q: no domain", v.Name)
	}
	if err := v.Domain.Validate(); err != nil {
		return fmt.Errorf("variable %q: %w", v.Name, err)
	}
	if !v.Format.Valid() {
		return fmt.Errorf("variable %q: unknown format %q", v.Name, v.Format)
	}
	if !v.Domain.Contains(v.Default) {
		return fmt.Errorf("variable %q: default %s: %w", v.Name, v.Default, ErrValueOutOfDomain)
	}
	return nil
}

// VariableSet is the ordered list of declared variables.
type VariableSet []Variable

// Lookup finds a variable by name.
func (vs VariableSet) Lookup(name string) (Variable, bool) {
	for _, v := range vs {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// Names returns variable names in declaration order.
func (vs VariableSet) Names() []string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	return names
}

// Validate checks every variable and rejects repeated names.
func (vs VariableSet) Validate() error {
	seen := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("variable %q declared twice", v.Name)
		}
		seen[v.Name] = struct{}{}
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Defaults returns every variable at its default setting.
func (vs VariableSet) Defaults() Values {
	out := make(Values, len(vs))
	for _, v := range vs {
		out[v.Name] = v.Default
	}
	return out
}

// Resolve returns a complete Values: defaults replaced by overrides.
// Overrides must name declared variables and lie within their domains.
func (vs VariableSet) Resolve(overrides Values) (Values, error) {
	if err := vs.Validate(); err != nil {
		return nil, err
	}
	out := vs.Defaults()
	for name, val := range overrides {
		v, ok := vs.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
		if !v.Domain.Contains(val) {
			return nil, fmt.Errorf("variable %q: %s: %w", name, val, ErrValueOutOfDomain)
		}
		out[name] = val
	}
	return out, nil
}

// Parse converts a textual setting for the named variable.
func (vs VariableSet) Parse(name, raw string) (Value, error) {
	v, ok := vs.Lookup(name)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	val, err := v.Domain.Parse(raw)
	if err != nil {
		return Value{}, fmt.Errorf("variable %q: %w", name, err)
	}
	return val, nil
}
