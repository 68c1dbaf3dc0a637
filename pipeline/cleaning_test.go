package pipeline

import (
	"testing"
	"time"

	"flightdelay/flights"
)

func trainingRow(airline string, month int, flightType string, delay time.Duration) flights.FlightRecord {
	scheduled := time.Date(2017, time.Month(month), 10, 14, 0, 0, 0, time.UTC)
	return flights.FlightRecord{
		Airline:            airline,
		Month:              month,
		FlightType:         flightType,
		ScheduledDeparture: scheduled,
		ActualDeparture:    scheduled.Add(delay),
	}
}

func TestNewDataCleaner(t *testing.T) {
	cleaner := NewDataCleaner()
	if cleaner == nil {
		t.Fatal("NewDataCleaner returned nil")
	}
	if len(cleaner.rules) == 0 {
		t.Error("no default rules added")
	}
}

func TestCategoryValidationRule(t *testing.T) {
	rule := &CategoryValidationRule{}

	tests := []struct {
		name    string
		record  flights.FlightRecord
		wantErr bool
	}{
		{
			name:    "valid record",
			record:  flights.FlightRecord{Airline: "Grupo LATAM", Month: 3, FlightType: "I"},
			wantErr: false,
		},
		{
			name:    "unknown airline",
			record:  flights.FlightRecord{Airline: "Not A Carrier", Month: 3, FlightType: "I"},
			wantErr: true,
		},
		{
			name:    "month out of range",
			record:  flights.FlightRecord{Airline: "Grupo LATAM", Month: 13, FlightType: "I"},
			wantErr: true,
		},
		{
			name:    "bad flight type",
			record:  flights.FlightRecord{Airline: "Grupo LATAM", Month: 3, FlightType: "X"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Apply(&tt.record)
			if (err != nil) != tt.wantErr {
				t.Errorf("CategoryValidationRule.Apply() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTimestampValidationRule(t *testing.T) {
	rule := NewTimestampValidationRule()

	valid := trainingRow("Grupo LATAM", 3, "I", 20*time.Minute)
	if err := rule.Apply(&valid); err != nil {
		t.Errorf("valid row rejected: %v", err)
	}

	missing := flights.FlightRecord{Airline: "Grupo LATAM", Month: 3, FlightType: "I"}
	if err := rule.Apply(&missing); err == nil {
		t.Error("row without timestamps should be rejected")
	}

	absurd := trainingRow("Grupo LATAM", 3, "I", 48*time.Hour)
	if err := rule.Apply(&absurd); err == nil {
		t.Error("48h departure gap should be rejected")
	}
}

func TestDuplicateDetectionRule(t *testing.T) {
	rule := NewDuplicateDetectionRule()
	row := trainingRow("Grupo LATAM", 3, "I", 20*time.Minute)

	if err := rule.Apply(&row); err != nil {
		t.Fatalf("first row should pass: %v", err)
	}
	dup := row
	if err := rule.Apply(&dup); err == nil {
		t.Fatal("duplicate row should be rejected")
	}
}

func TestDataCleanerClean(t *testing.T) {
	cleaner := NewDataCleaner()

	records := []flights.FlightRecord{
		trainingRow("Grupo LATAM", 3, "I", 20*time.Minute),
		trainingRow("Sky Airline", 7, "N", 5*time.Minute),
		trainingRow("Not A Carrier", 3, "I", 20*time.Minute),
		{Airline: "Copa Air", Month: 4, FlightType: "I"}, // no timestamps
	}

	cleaned, stats := cleaner.Clean(records)

	if len(cleaned) != 2 {
		t.Fatalf("expected 2 cleaned rows, got %d", len(cleaned))
	}
	if stats.Rejected != 2 {
		t.Errorf("expected 2 rejected rows, got %d", stats.Rejected)
	}
	if stats.Issues["category_validation"] != 1 {
		t.Errorf("expected 1 category issue, got %d", stats.Issues["category_validation"])
	}
	if stats.Issues["timestamp_validation"] != 1 {
		t.Errorf("expected 1 timestamp issue, got %d", stats.Issues["timestamp_validation"])
	}
}
