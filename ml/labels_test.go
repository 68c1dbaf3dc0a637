package ml

import (
	"testing"
	"time"

	"flightdelay/flights"
)

func TestDelayLabelThreshold(t *testing.T) {
	scheduled := time.Date(2017, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		actual time.Time
		want   int
	}{
		{"on time", scheduled, 0},
		{"early departure", scheduled.Add(-10 * time.Minute), 0},
		{"below threshold", scheduled.Add(14 * time.Minute), 0},
		{"exactly at threshold", scheduled.Add(15 * time.Minute), 1},
		{"above threshold", scheduled.Add(90 * time.Minute), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DelayLabel(scheduled, tt.actual); got != tt.want {
				t.Errorf("DelayLabel() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGenerateLabels(t *testing.T) {
	scheduled := time.Date(2017, 3, 10, 14, 0, 0, 0, time.UTC)
	records := []flights.FlightRecord{
		{Airline: "Grupo LATAM", Month: 3, FlightType: "I", ScheduledDeparture: scheduled, ActualDeparture: scheduled.Add(20 * time.Minute)},
		{Airline: "Sky Airline", Month: 3, FlightType: "N", ScheduledDeparture: scheduled, ActualDeparture: scheduled.Add(5 * time.Minute)},
	}

	labels, err := GenerateLabels(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 2 || labels[0] != 1 || labels[1] != 0 {
		t.Fatalf("unexpected labels: %v", labels)
	}
}

func TestGenerateLabelsRejectsMissingTimestamps(t *testing.T) {
	if _, err := GenerateLabels(nil); err == nil {
		t.Fatal("expected error for empty records")
	}
	records := []flights.FlightRecord{{Airline: "Grupo LATAM", Month: 3, FlightType: "I"}}
	if _, err := GenerateLabels(records); err == nil {
		t.Fatal("expected error for record without timestamps")
	}
}
