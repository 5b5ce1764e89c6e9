package request

import (
	"encoding/json"
	"testing"
)

func TestDecimalCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want *float64
	}{
		{`1999.99`, f(1999.99)},
		{`"1999.99"`, f(1999.99)},
		{`" 450 "`, f(450)},
		{`""`, nil},
		{`null`, nil},
		{`"abc"`, nil},
		{`{"x":1}`, nil},
		{`0`, f(0)},
	}

	for _, tc := range cases {
		var d Decimal
		if err := json.Unmarshal([]byte(tc.in), &d); err != nil {
			t.Fatalf("%s: coercion must never error, got %v", tc.in, err)
		}
		if !floatPtrEqual(d.Value, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.in, deref(d.Value), deref(tc.want))
		}
	}
}

func TestCountCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want *int
	}{
		{`30`, n(30)},
		{`"30"`, n(30)},
		{`30.9`, n(30)},
		{`""`, nil},
		{`null`, nil},
		{`"many"`, nil},
	}

	for _, tc := range cases {
		var c Count
		if err := json.Unmarshal([]byte(tc.in), &c); err != nil {
			t.Fatalf("%s: coercion must never error, got %v", tc.in, err)
		}
		if (c.Value == nil) != (tc.want == nil) || (c.Value != nil && *c.Value != *tc.want) {
			t.Errorf("%s: got %v, want %v", tc.in, c.Value, tc.want)
		}
	}

	var c Count
	json.Unmarshal([]byte(`null`), &c)
	if c.Or(0) != 0 {
		t.Errorf("Or(0) on null: got %d", c.Or(0))
	}
	json.Unmarshal([]byte(`5`), &c)
	if c.Or(0) != 5 {
		t.Errorf("Or(0) on 5: got %d", c.Or(0))
	}
}

func TestFlagCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"true"`, true},
		{`"1"`, true},
		{`"no"`, false},
		{`null`, false},
	}

	for _, tc := range cases {
		var fl Flag
		if err := json.Unmarshal([]byte(tc.in), &fl); err != nil {
			t.Fatalf("%s: coercion must never error, got %v", tc.in, err)
		}
		if fl.Value != tc.want {
			t.Errorf("%s: got %v, want %v", tc.in, fl.Value, tc.want)
		}
	}
}

func TestTextCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want *string
	}{
		{`"4 adults"`, s("4 adults")},
		{`4`, s("4")},
		{`2.5`, s("2.5")},
		{`""`, nil},
		{`null`, nil},
	}

	for _, tc := range cases {
		var tx Text
		if err := json.Unmarshal([]byte(tc.in), &tx); err != nil {
			t.Fatalf("%s: coercion must never error, got %v", tc.in, err)
		}
		if (tx.Value == nil) != (tc.want == nil) || (tx.Value != nil && *tx.Value != *tc.want) {
			t.Errorf("%s: got %v, want %v", tc.in, tx.Value, tc.want)
		}
	}
}

func f(v float64) *float64 { return &v }
func n(v int) *int         { return &v }
func s(v string) *string   { return &v }

func floatPtrEqual(a, b *float64) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func deref(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
