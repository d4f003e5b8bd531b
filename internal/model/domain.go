package model

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidRange is returned for a Range with step <= 0 or start > stop.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidChoices is returned for an empty or repeating choice list.
	ErrInvalidChoices = errors.New("invalid choices")
)

// maxRangePoints caps how many settings a Range may expand to.
const maxRangePoints = 10_000

// Domain is the set of settings a Variable accepts.
type Domain interface {
	// Validate reports a malformed domain.
	Validate() error
	// Values yields every setting in order.
	Values() iter.Seq[Value]
	// Contains reports whether v is an accepted setting.
	Contains(v Value) bool
	// Advance moves v by delta settings, clamped to the domain.
	Advance(v Value, delta int) Value
	// Parse converts a textual setting.
	Parse(raw string) (Value, error)
}

// Range is a continuous domain from Start to Stop (inclusive) in Step increments.
type Range struct {
	Start float64
	Stop  float64
	Step  float64
}

// Validate implements Domain.
func (r Range) Validate() error {
	for _, f := range []float64{r.Start, r.Stop, r.Step} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite bound", ErrInvalidRange)
		}
	}
	if r.Step <= 0 {
		return fmt.Errorf("%w: step %g must be positive", ErrInvalidRange, r.Step)
	}
	if r.Start > r.Stop {
		return fmt.Errorf("%w: start %g is after stop %g", ErrInvalidRange, r.Start, r.Stop)
	}
	if n := (r.Stop - r.Start) / r.Step; n >= maxRangePoints {
		return fmt.Errorf("%w: %.0f steps exceeds %d", ErrInvalidRange, n, maxRangePoints)
	}
	return nil
}

// Len is the number of settings the range expands to.
func (r Range) Len() int {
	return int(math.Floor((r.Stop-r.Start)/r.Step+1e-9)) + 1
}

func (r Range) at(i int) float64 {
	return math.Round((r.Start+float64(i)*r.Step)*1e9) / 1e9
}

// Values implements Domain. An invalid range yields nothing.
func (r Range) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if r.Validate() != nil {
			return
		}
		n := r.Len()
		for i := 0; i < n; i++ {
			if !yield(Num(r.at(i))) {
				return
			}
		}
	}
}

// Contains implements Domain.
func (r Range) Contains(v Value) bool {
	if v.IsText() {
		return false
	}
	tol := 1e-9 * math.Max(1, math.Abs(r.Stop))
	f := v.Float()
	return f >= r.Start-tol && f <= r.Stop+tol
}

// Advance implements Domain.
func (r Range) Advance(v Value, delta int) Value {
	if r.Validate() != nil {
		return v
	}
	i := int(math.Round((v.Float()-r.Start)/r.Step)) + delta
	i = max(0, min(i, r.Len()-1))
	return Num(r.at(i))
}

// Parse implements Domain.
func (r Range) Parse(raw string) (Value, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Value{}, fmt.Errorf("parsing %q as a number: %w", raw, err)
	}
	return Num(f), nil
}

// Choice is one discrete setting and its display label.
type Choice struct {
	Value Value
	Label string
}

// Choices is a discrete ordered domain.
type Choices []Choice

// NewChoices pairs values with labels.
func NewChoices(values []Value, labels []string) (Choices, error) {
	if len(values) != len(labels) {
		return nil, fmt.Errorf("%w: %d values but %d labels", ErrInvalidChoices, len(values), len(labels))
	}
	c := make(Choices, len(values))
	for i := range values {
		c[i] = Choice{Value: values[i], Label: labels[i]}
	}
	return c, c.Validate()
}

// Validate implements Domain.
func (c Choices) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: no choices", ErrInvalidChoices)
	}
	for i := range c {
		for j := i + 1; j < len(c); j++ {
			if c[i].Value.Equal(c[j].Value) {
				return fmt.Errorf("%w: %q listed twice", ErrInvalidChoices, c[i].Value.String())
			}
		}
	}
	return nil
}

// Values implements Domain.
func (c Choices) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, ch := range c {
			if !yield(ch.Value) {
				return
			}
		}
	}
}

func (c Choices) index(v Value) int {
	for i, ch := range c {
		if ch.Value.Equal(v) {
			return i
		}
	}
	return -1
}

// Contains implements Domain.
func (c Choices) Contains(v Value) bool { return c.index(v) >= 0 }

// Advance implements Domain.
func (c Choices) Advance(v Value, delta int) Value {
	if len(c) == 0 {
		return v
	}
	i := max(c.index(v), 0) + delta
	i = max(0, min(i, len(c)-1))
	return c[i].Value
}

// Parse implements Domain. raw may be a value or a label.
func (c Choices) Parse(raw string) (Value, error) {
	raw = strings.TrimSpace(raw)
	for _, ch := range c {
		if ch.Value.String() == raw || strings.EqualFold(ch.Label, raw) {
			return ch.Value, nil
		}
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		if i := c.index(Num(f)); i >= 0 {
			return c[i].Value, nil
		}
	}
	return Text(raw), nil
}

// Labels returns the display labels in order.
func (c Choices) Labels() []string {
	labels := make([]string, len(c))
	for i, ch := range c {
		labels[i] = ch.Label
	}
	return labels
}

// Label returns the label for v, or v's raw form when it is not a choice.
func (c Choices) Label(v Value) string {
	if i := c.index(v); i >= 0 {
		return c[i].Label
	}
	return v.String()
}
