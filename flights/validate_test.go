package flights

import (
	"errors"
	"testing"
)

func TestValidateBatch(t *testing.T) {
	tests := []struct {
		name      string
		records   []FlightRecord
		wantField string
	}{
		{
			name:    "valid record",
			records: []FlightRecord{{Airline: "Grupo LATAM", Month: 3, FlightType: "I"}},
		},
		{
			name:    "valid national flight",
			records: []FlightRecord{{Airline: "Sky Airline", Month: 11, FlightType: "N"}},
		},
		{
			name:      "empty batch",
			records:   nil,
			wantField: "flights",
		},
		{
			name:      "unknown airline",
			records:   []FlightRecord{{Airline: "Unknown Airline Co", Month: 3, FlightType: "I"}},
			wantField: "airline",
		},
		{
			name:      "month too high",
			records:   []FlightRecord{{Airline: "Grupo LATAM", Month: 13, FlightType: "I"}},
			wantField: "month",
		},
		{
			name:      "month too low",
			records:   []FlightRecord{{Airline: "Grupo LATAM", Month: 0, FlightType: "I"}},
			wantField: "month",
		},
		{
			name:      "invalid flight type",
			records:   []FlightRecord{{Airline: "Grupo LATAM", Month: 3, FlightType: "X"}},
			wantField: "flight_type",
		},
		{
			name: "second record invalid",
			records: []FlightRecord{
				{Airline: "Grupo LATAM", Month: 3, FlightType: "I"},
				{Airline: "Copa Air", Month: 13, FlightType: "N"},
			},
			wantField: "month",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBatch(tt.records)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Fatalf("expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestValidationErrorCarriesIndex(t *testing.T) {
	err := ValidateBatch([]FlightRecord{
		{Airline: "Grupo LATAM", Month: 3, FlightType: "I"},
		{Airline: "Nope", Month: 3, FlightType: "I"},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Index != 1 {
		t.Fatalf("expected index 1, got %d", verr.Index)
	}
}

func TestKnownAirline(t *testing.T) {
	for _, name := range Airlines {
		if !KnownAirline(name) {
			t.Errorf("airline %q should be recognized", name)
		}
	}
	if KnownAirline("grupo latam") {
		t.Error("airline matching must be exact")
	}
}
