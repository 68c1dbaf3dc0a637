package pipeline

import (
	"strings"
	"testing"
)

const sampleCSV = `airline,month,flight_type,scheduled_departure,actual_departure
Grupo LATAM,3,I,2017-03-10 14:00:00,2017-03-10 14:20:00
Sky Airline,7,N,2017-07-02 08:30:00,2017-07-02 08:31:00
`

func TestParseCSV(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Airline != "Grupo LATAM" || first.Month != 3 || first.FlightType != "I" {
		t.Fatalf("unexpected record: %+v", first)
	}
	if first.ScheduledDeparture.IsZero() || first.ActualDeparture.IsZero() {
		t.Fatal("expected departure timestamps to be parsed")
	}
	if got := first.ActualDeparture.Sub(first.ScheduledDeparture).Minutes(); got != 20 {
		t.Fatalf("expected 20 minute gap, got %v", got)
	}
}

func TestParseCSVWithoutTimestamps(t *testing.T) {
	csv := "airline,month,flight_type\nGrupo LATAM,3,I\n"
	records, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if !records[0].ScheduledDeparture.IsZero() {
		t.Fatal("expected zero scheduled departure")
	}
}

func TestParseCSVMissingColumn(t *testing.T) {
	csv := "airline,month\nGrupo LATAM,3\n"
	if _, err := ParseCSV(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for missing flight_type column")
	}
}

func TestParseCSVBadMonth(t *testing.T) {
	csv := "airline,month,flight_type\nGrupo LATAM,marzo,I\n"
	if _, err := ParseCSV(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for non-numeric month")
	}
}
