package model

import (
	"errors"
	"slices"
	"testing"
)

func collect(d Domain) []Value {
	return slices.Collect(d.Values())
}

func TestRangeValues_InclusiveOfStop(t *testing.T) {
	got := collect(Range{Start: 0, Stop: 10, Step: 2})
	want := []float64{0, 2, 4, 6, 8, 10}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Float() != w {
			t.Errorf("values[%d] = %v, want %v", i, got[i], w)
		}
	}
}

func TestRangeValues_FractionalStepIsClean(t *testing.T) {
	got := collect(Range{Start: 0, Stop: 0.3, Step: 0.1})
	want := []float64{0, 0.1, 0.2, 0.3}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Float() != w {
			t.Errorf("values[%d] = %v, want %v", i, got[i].Float(), w)
		}
	}
}

func TestRangeValues_Restartable(t *testing.T) {
	seq := Range{Start: 1, Stop: 3, Step: 1}.Values()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("lens = %d, %d, want 3, 3", len(first), len(second))
	}
}

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		ok   bool
	}{
		{"ok", Range{0, 10, 2}, true},
		{"single point", Range{5, 5, 1}, true},
		{"zero step", Range{0, 10, 0}, false},
		{"negative step", Range{0, 10, -1}, false},
		{"start after stop", Range{10, 0, 1}, false},
		{"too many points", Range{0, 1, 1e-9}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("err = %v, want ErrInvalidRange", err)
			}
			if !tt.ok && len(collect(tt.r)) != 0 {
				t.Fatal("invalid range yielded values")
			}
		})
	}
}

func TestRangeAdvanceClamps(t *testing.T) {
	r := Range{Start: 0, Stop: 10, Step: 2}
	if got := r.Advance(Num(4), 1).Float(); got != 6 {
		t.Errorf("Advance(4, +1) = %v, want 6", got)
	}
	if got := r.Advance(Num(10), 3).Float(); got != 10 {
		t.Errorf("Advance(10, +3) = %v, want 10", got)
	}
	if got := r.Advance(Num(2), -5).Float(); got != 0 {
		t.Errorf("Advance(2, -5) = %v, want 0", got)
	}
}

func TestChoicesValues_PreserveOrder(t *testing.T) {
	c, err := NewChoices([]Value{Text("a"), Text("b")}, []string{"Label A", "Label B"})
	if err != nil {
		t.Fatalf("NewChoices: %v", err)
	}
	got := collect(c)
	if len(got) != 2 || got[0].String() != "a" || got[1].String() != "b" {
		t.Fatalf("values = %v, want [a b]", got)
	}
	if labels := c.Labels(); labels[0] != "Label A" || labels[1] != "Label B" {
		t.Fatalf("labels = %v", labels)
	}
}

func TestChoicesValidate(t *testing.T) {
	if _, err := NewChoices([]Value{Num(1)}, []string{"one", "two"}); !errors.Is(err, ErrInvalidChoices) {
		t.Errorf("mismatched lengths: err = %v", err)
	}
	if err := (Choices{}).Validate(); !errors.Is(err, ErrInvalidChoices) {
		t.Errorf("empty: err = %v", err)
	}
	dup := Choices{{Value: Num(1), Label: "a"}, {Value: Num(1), Label: "b"}}
	if err := dup.Validate(); !errors.Is(err, ErrInvalidChoices) {
		t.Errorf("duplicate: err = %v", err)
	}
}

func TestChoicesParse(t *testing.T) {
	c := Choices{
		{Value: Num(0.1), Label: "10%"},
		{Value: Num(0.2), Label: "20%"},
	}
	tests := []struct {
		raw  string
		want Value
	}{
		{"0.2", Num(0.2)},
		{"10%", Num(0.1)},
		{" .2 ", Num(0.2)},
	}
	for _, tt := range tests {
		got, err := c.Parse(tt.raw)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.raw, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
	if got, _ := c.Parse("nope"); c.Contains(got) {
		t.Errorf("Parse(nope) = %v, should not be a choice", got)
	}
}

func TestChoicesAdvance(t *testing.T) {
	c := Choices{{Value: Text("x")}, {Value: Text("y")}, {Value: Text("z")}}
	if got := c.Advance(Text("x"), 1); got.String() != "y" {
		t.Errorf("Advance(x, +1) = %v, want y", got)
	}
	if got := c.Advance(Text("z"), 1); got.String() != "z" {
		t.Errorf("Advance(z, +1) = %v, want z", got)
	}
}
