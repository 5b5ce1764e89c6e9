package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The itinerary codec is the single boundary between the JSONB storage form
// and the nested Day/Activity structure. Decode failures never propagate to
// a request: callers get an empty itinerary and log the error. Unknown fields
// on Day and Activity survive a decode/encode round trip so newer frontend
// schema additions are not stripped by older servers.

// Activity is one scheduled item within a Day. The time label is free text;
// Morning/Afternoon/Evening/Meal/Note are the values the UI maps to icons,
// but any string is accepted.
type Activity struct {
	Time        string
	Title       string
	Description string

	extra map[string]json.RawMessage
}

// Day is one itinerary entry. Day numbers are positive but not required to be
// unique or sequential; the editing UI renumbers on deletion.
type Day struct {
	Day         int
	Title       string
	Description string
	Activities  []Activity

	extra map[string]json.RawMessage
}

func (a *Activity) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*a = Activity{}
	for key, raw := range fields {
		switch key {
		case "time":
			json.Unmarshal(raw, &a.Time)
		case "title":
			json.Unmarshal(raw, &a.Title)
		case "description":
			json.Unmarshal(raw, &a.Description)
		default:
			if a.extra == nil {
				a.extra = make(map[string]json.RawMessage)
			}
			a.extra[key] = raw
		}
	}
	return nil
}

func (a Activity) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(a.extra)+3)
	for key, raw := range a.extra {
		fields[key] = raw
	}
	fields["time"], _ = json.Marshal(a.Time)
	fields["title"], _ = json.Marshal(a.Title)
	fields["description"], _ = json.Marshal(a.Description)
	return json.Marshal(fields)
}

func (d *Day) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*d = Day{}
	for key, raw := range fields {
		switch key {
		case "day":
			json.Unmarshal(raw, &d.Day)
		case "title":
			json.Unmarshal(raw, &d.Title)
		case "description":
			json.Unmarshal(raw, &d.Description)
		case "activities":
			json.Unmarshal(raw, &d.Activities)
		default:
			if d.extra == nil {
				d.extra = make(map[string]json.RawMessage)
			}
			d.extra[key] = raw
		}
	}

	// A day without activities is an empty sequence, not an error.
	if d.Activities == nil {
		d.Activities = []Activity{}
	}
	return nil
}

func (d Day) MarshalJSON() ([]byte, error) {
	activities := d.Activities
	if activities == nil {
		activities = []Activity{}
	}

	fields := make(map[string]json.RawMessage, len(d.extra)+4)
	for key, raw := range d.extra {
		fields[key] = raw
	}
	fields["day"], _ = json.Marshal(d.Day)
	fields["title"], _ = json.Marshal(d.Title)
	fields["description"], _ = json.Marshal(d.Description)
	fields["activities"], _ = json.Marshal(activities)
	return json.Marshal(fields)
}

// DecodeItinerary converts a stored or submitted itinerary value into days.
// Null or absent input is an empty itinerary. Textual input is parsed,
// including the double-encoded case where the column holds a JSON string
// wrapping the array. Malformed input yields an empty itinerary and a non-nil
// error for the caller to log; itinerary absence must never break a trip read.
func DecodeItinerary(raw []byte) ([]Day, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []Day{}, nil
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return []Day{}, fmt.Errorf("decode itinerary string: %w", err)
		}
		return DecodeItinerary([]byte(inner))
	}

	var days []Day
	if err := json.Unmarshal(trimmed, &days); err != nil {
		return []Day{}, fmt.Errorf("decode itinerary: %w", err)
	}
	if days == nil {
		days = []Day{}
	}
	return days, nil
}

// EncodeItinerary serializes days back to the JSONB storage value. The codec
// round-trips: DecodeItinerary(EncodeItinerary(days)) reproduces days.
func EncodeItinerary(days []Day) json.RawMessage {
	if days == nil {
		days = []Day{}
	}
	out, err := json.Marshal(days)
	if err != nil {
		return json.RawMessage("[]")
	}
	return out
}

// SafeArray passes a stored JSON array (the features column) through
// unchanged and substitutes an empty array for anything malformed or absent.
func SafeArray(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return json.RawMessage("[]")
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return json.RawMessage("[]")
		}
		return SafeArray([]byte(inner))
	}

	if trimmed[0] != '[' || !json.Valid(trimmed) {
		return json.RawMessage("[]")
	}
	return json.RawMessage(trimmed)
}
