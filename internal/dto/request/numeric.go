package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Lenient coercion types for the trip form. The admin UI historically sent
// numbers, numeric strings, or empty strings interchangeably for the same
// field, and the policy favors form availability over strict validation:
// invalid numeric input becomes null (Decimal, Count) rather than a 400. The
// service decides which nulls default to zero. Coercion lives here so create
// and update share exactly one normalization path.

// Decimal accepts a JSON number, a numeric string, or null/empty. Anything
// unparseable coerces to null.
type Decimal struct {
	Value *float64
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	d.Value = nil

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if json.Unmarshal(trimmed, &s) != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			d.Value = &f
		}
		return nil
	}

	var f float64
	if json.Unmarshal(trimmed, &f) == nil {
		d.Value = &f
	}
	return nil
}

// Count is the integer counterpart of Decimal. Fractional input truncates.
type Count struct {
	Value *int
}

func (c *Count) UnmarshalJSON(data []byte) error {
	c.Value = nil

	var d Decimal
	d.UnmarshalJSON(data)
	if d.Value != nil {
		n := int(*d.Value)
		c.Value = &n
	}
	return nil
}

// Or returns the coerced value or the given default.
func (c Count) Or(defaultValue int) int {
	if c.Value == nil {
		return defaultValue
	}
	return *c.Value
}

// Flag accepts a JSON bool plus the 0/1 and "true"/"false" forms older
// clients sent for is_upcoming. Anything else is false.
type Flag struct {
	Value bool
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	f.Value = false

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var b bool
	if json.Unmarshal(trimmed, &b) == nil {
		f.Value = b
		return nil
	}

	var d Decimal
	d.UnmarshalJSON(trimmed)
	if d.Value != nil {
		f.Value = *d.Value != 0
		return nil
	}

	var s string
	if json.Unmarshal(trimmed, &s) == nil {
		f.Value = s == "true" || s == "1"
	}
	return nil
}

// Text accepts a JSON string or number and yields the textual form; null and
// empty stay nil. Guest counts arrive both ways.
type Text struct {
	Value *string
}

func (t *Text) UnmarshalJSON(data []byte) error {
	t.Value = nil

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if json.Unmarshal(trimmed, &s) != nil {
			return nil
		}
		if s == "" {
			return nil
		}
		t.Value = &s
		return nil
	}

	var f float64
	if json.Unmarshal(trimmed, &f) == nil {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		t.Value = &s
	}
	return nil
}
