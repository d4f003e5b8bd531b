package model

import (
	"encoding/json"
	"strconv"
)

// Value is a variable setting: a number, or the key of a text choice.
type Value struct {
	num    float64
	text   string
	isText bool
}

// Num returns a numeric Value.
func Num(f float64) Value { return Value{num: f} }

// Text returns a text Value.
func Text(s string) Value { return Value{text: s, isText: true} }

// IsText reports whether v holds text.
func (v Value) IsText() bool { return v.isText }

// Float returns the numeric setting, or 0 for text.
func (v Value) Float() float64 {
	if v.isText {
		return 0
	}
	return v.num
}

// String returns the raw setting without display formatting.
func (v Value) String() string {
	if v.isText {
		return v.text
	}
	return strconv.FormatFloat(v.num, 'f', -1, 64)
}

// Equal compares kind and content.
func (v Value) Equal(o Value) bool {
	if v.isText != o.isText {
		return false
	}
	if v.isText {
		return v.text == o.text
	}
	return v.num == o.num
}

// MarshalJSON encodes text as a JSON string and numbers as JSON numbers.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isText {
		return json.Marshal(v.text)
	}
	return json.Marshal(v.num)
}

// UnmarshalJSON accepts a JSON string or number.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Text(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Num(f)
	return nil
}

// Values maps variable name -> setting.
type Values map[string]Value

// Float returns the numeric setting for name, 0 when unset or text.
func (vs Values) Float(name string) float64 {
	return vs[name].Float()
}

// Text returns the text setting for name.
func (vs Values) Text(name string) string {
	v, ok := vs[name]
	if !ok || !v.isText {
		return ""
	}
	return v.text
}

// With returns a copy of vs with name set to v.
func (vs Values) With(name string, v Value) Values {
	out := make(Values, len(vs)+1)
	for k, val := range vs {
		out[k] = val
	}
	out[name] = v
	return out
}
