package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func testVariables() VariableSet {
	return VariableSet{
		{
			Name: "price", Title: "Price", Label: "($)",
			Domain:  Range{Start: 0, Stop: 100, Step: 10},
			Default: Num(50), Format: FormatCurrency,
		},
		{
			Name: "plan", Title: "Plan",
			Domain:  Choices{{Value: Text("basic"), Label: "Basic"}, {Value: Text("plus"), Label: "Plus"}},
			Default: Text("basic"), Format: FormatPlain,
		},
	}
}

func TestResolve_FillsDefaults(t *testing.T) {
	vals, err := testVariables().Resolve(Values{"price": Num(70)})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if vals.Float("price") != 70 {
		t.Errorf("price = %v, want 70", vals.Float("price"))
	}
	if vals.Text("plan") != "basic" {
		t.Errorf("plan = %q, want basic", vals.Text("plan"))
	}
}

func TestResolve_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		overrides Values
		want      error
	}{
		{"unknown", Values{"rooms": Num(2)}, ErrUnknownVariable},
		{"above stop", Values{"price": Num(101)}, ErrValueOutOfDomain},
		{"text for range", Values{"price": Text("lots")}, ErrValueOutOfDomain},
		{"missing choice", Values{"plan": Text("gold")}, ErrValueOutOfDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testVariables().Resolve(tt.overrides)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestVariableSetValidate_DuplicateName(t *testing.T) {
	vs := testVariables()
	vs = append(vs, vs[0])
	if err := vs.Validate(); err == nil {
		t.Fatal("expected error for duplicate variable")
	}
}

func TestVariableValidate_BadDefault(t *testing.T) {
	v := testVariables()[0]
	v.Default = Num(500)
	if err := v.Validate(); !errors.Is(err, ErrValueOutOfDomain) {
		t.Fatalf("err = %v, want ErrValueOutOfDomain", err)
	}
}

func TestParse(t *testing.T) {
	vs := testVariables()
	v, err := vs.Parse("price", "30")
	if err != nil || v.Float() != 30 {
		t.Fatalf("Parse(price, 30) = %v, %v", v, err)
	}
	v, err = vs.Parse("plan", "Plus")
	if err != nil || v.String() != "plus" {
		t.Fatalf("Parse(plan, Plus) = %v, %v", v, err)
	}
	if _, err := vs.Parse("price", "abc"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := vs.Parse("nope", "1"); !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("err = %v, want ErrUnknownVariable", err)
	}
}

func TestValueJSON(t *testing.T) {
	data, err := json.Marshal([]Value{Num(1.5), Text("a")})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[1.5,"a"]` {
		t.Fatalf("json = %s", data)
	}
	var back []Value
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back[0].Equal(Num(1.5)) || !back[1].Equal(Text("a")) {
		t.Fatalf("decoded = %v", back)
	}
}

func TestAmountsSetKeepsOrder(t *testing.T) {
	var a Amounts
	a.Set("b", 1)
	a.Set("a", 2)
	a.Set("b", 3)
	if cats := a.Categories(); len(cats) != 2 || cats[0] != "b" || cats[1] != "a" {
		t.Fatalf("categories = %v, want [b a]", cats)
	}
	if v, _ := a.Get("b"); v != 3 {
		t.Fatalf("b = %v, want 3", v)
	}
	if a.Total() != 5 {
		t.Fatalf("total = %v, want 5", a.Total())
	}
}
