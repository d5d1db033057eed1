package entities

import (
	"encoding/json"
	"testing"
)

func TestFlexFloatUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"json number", `3.05`, 3.05},
		{"integer", `40260`, 40260},
		{"negative", `-500.5`, -500.5},
		{"numeric string", `"3.05"`, 3.05},
		{"padded numeric string", `"  13200  "`, 13200},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"non-numeric string", `"n/a"`, 0},
		{"boolean", `true`, 0},
		{"object", `{"value":1}`, 0},
		{"array", `[1]`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexFloat
			if err := json.Unmarshal([]byte(tc.in), &f); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Float() != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, f.Float())
			}
		})
	}
}

func TestFlexFloatNeverAbortsStructDecode(t *testing.T) {
	var sub Subcomponent
	if err := json.Unmarshal([]byte(`{"adder_name":"EV Charger","quantity":"broken","item_price":1200}`), &sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.AdderName != "EV Charger" || sub.Quantity.Float() != 0 || sub.ItemPrice.Float() != 1200 {
		t.Fatalf("unexpected decode result: %+v", sub)
	}
}

func TestFlexFloatOverwritesPriorValue(t *testing.T) {
	f := FlexFloat(99)
	if err := json.Unmarshal([]byte(`null`), &f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Float() != 0 {
		t.Fatalf("expected 0, got %v", f.Float())
	}
}
