package entity

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDecodeItineraryRoundTrip(t *testing.T) {
	days := []Day{
		{
			Day:   1,
			Title: "Arrival",
			Activities: []Activity{
				{Time: "Morning", Title: "Land", Description: ""},
				{Time: "Evening", Title: "Check-in", Description: "Hotel"},
			},
		},
		{
			Day:         2,
			Title:       "Beach day",
			Description: "Free time",
			Activities:  []Activity{},
		},
	}

	decoded, err := DecodeItinerary(EncodeItinerary(days))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !reflect.DeepEqual(decoded, days) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", decoded, days)
	}
}

func TestDecodeItineraryMalformed(t *testing.T) {
	days, err := DecodeItinerary([]byte("not json"))
	if err == nil {
		t.Fatal("expected decode error for malformed input")
	}
	if days == nil || len(days) != 0 {
		t.Fatalf("malformed input must yield empty itinerary, got %#v", days)
	}
}

func TestDecodeItineraryNullAndEmpty(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte(""), []byte("null"), []byte("  null  ")} {
		days, err := DecodeItinerary(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if len(days) != 0 {
			t.Fatalf("expected empty itinerary for %q, got %#v", raw, days)
		}
	}
}

func TestDecodeItineraryDoubleEncoded(t *testing.T) {
	inner := `[{"day":1,"title":"Arrive","activities":[{"time":"Evening","title":"Check-in","description":"Hotel"}]}]`
	wrapped, _ := json.Marshal(inner)

	days, err := DecodeItinerary(wrapped)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(days) != 1 || days[0].Activities[0].Title != "Check-in" {
		t.Fatalf("unexpected itinerary: %#v", days)
	}
}

func TestDecodeItineraryMissingActivities(t *testing.T) {
	days, err := DecodeItinerary([]byte(`[{"day":1,"title":"Rest day"}]`))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if days[0].Activities == nil || len(days[0].Activities) != 0 {
		t.Fatalf("missing activities must decode as empty sequence, got %#v", days[0].Activities)
	}
}

func TestCodecPreservesUnknownFields(t *testing.T) {
	raw := []byte(`[{"day":1,"title":"Arrive","color":"#ff0000","activities":[{"time":"Morning","title":"Land","description":"","icon":"plane"}]}]`)

	days, err := DecodeItinerary(raw)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}

	reencoded := EncodeItinerary(days)
	var generic []map[string]json.RawMessage
	if err := json.Unmarshal(reencoded, &generic); err != nil {
		t.Fatalf("reencoded itinerary is not valid JSON: %v", err)
	}
	if string(generic[0]["color"]) != `"#ff0000"` {
		t.Fatalf("day extra field lost: %s", reencoded)
	}

	var activities []map[string]json.RawMessage
	if err := json.Unmarshal(generic[0]["activities"], &activities); err != nil {
		t.Fatalf("activities: %v", err)
	}
	if string(activities[0]["icon"]) != `"plane"` {
		t.Fatalf("activity extra field lost: %s", reencoded)
	}

	// And the round trip still holds with extras present.
	again, err := DecodeItinerary(reencoded)
	if err != nil {
		t.Fatalf("second decode error: %v", err)
	}
	if !reflect.DeepEqual(again, days) {
		t.Fatalf("round trip with extras mismatch:\n got %#v\nwant %#v", again, days)
	}
}

func TestSafeArray(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{"nil", nil, "[]"},
		{"null", []byte("null"), "[]"},
		{"garbage", []byte("not json"), "[]"},
		{"object", []byte(`{"a":1}`), "[]"},
		{"array", []byte(`["Breakfast","Guide"]`), `["Breakfast","Guide"]`},
		{"object records", []byte(`[{"text":"Breakfast"}]`), `[{"text":"Breakfast"}]`},
		{"double encoded", []byte(`"[\"Breakfast\"]"`), `["Breakfast"]`},
	}

	for _, tc := range cases {
		if got := string(SafeArray(tc.in)); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}
