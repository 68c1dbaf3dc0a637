package pipeline

import (
	"fmt"
	"time"

	"flightdelay/flights"
)

// CleaningRule validates one raw dataset row before it enters the
// training corpus. A non-nil error rejects the row.
type CleaningRule interface {
	Apply(record *flights.FlightRecord) error
	Name() string
}

// CleaningStats accounts for a cleaning pass.
type CleaningStats struct {
	TotalProcessed int64            `json:"total_processed"`
	Passed         int64            `json:"passed"`
	Rejected       int64            `json:"rejected"`
	Issues         map[string]int64 `json:"issues"`
}

type DataCleaner struct {
	rules []CleaningRule
	stats CleaningStats
}

func NewDataCleaner() *DataCleaner {
	cleaner := &DataCleaner{
		stats: CleaningStats{Issues: make(map[string]int64)},
	}
	cleaner.AddRule(&CategoryValidationRule{})
	cleaner.AddRule(NewTimestampValidationRule())
	cleaner.AddRule(NewDuplicateDetectionRule())
	return cleaner
}

func (dc *DataCleaner) AddRule(rule CleaningRule) {
	dc.rules = append(dc.rules, rule)
}

// Clean applies every rule to every record, keeping the rows that pass
// and counting rejections per rule.
func (dc *DataCleaner) Clean(records []flights.FlightRecord) ([]flights.FlightRecord, CleaningStats) {
	cleaned := make([]flights.FlightRecord, 0, len(records))

	for i := range records {
		dc.stats.TotalProcessed++
		rejected := false
		for _, rule := range dc.rules {
			if err := rule.Apply(&records[i]); err != nil {
				dc.stats.Issues[rule.Name()]++
				rejected = true
				break
			}
		}
		if rejected {
			dc.stats.Rejected++
			continue
		}
		dc.stats.Passed++
		cleaned = append(cleaned, records[i])
	}

	return cleaned, dc.stats
}

func (dc *DataCleaner) Stats() CleaningStats {
	return dc.stats
}

// CategoryValidationRule rejects rows outside the closed category sets,
// the same rules the inference boundary enforces.
type CategoryValidationRule struct{}

func (r *CategoryValidationRule) Name() string {
	return "category_validation"
}

func (r *CategoryValidationRule) Apply(record *flights.FlightRecord) error {
	if !flights.KnownAirline(record.Airline) {
		return fmt.Errorf("unknown airline %q", record.Airline)
	}
	if record.Month < 1 || record.Month > 12 {
		return fmt.Errorf("month %d out of range", record.Month)
	}
	if !flights.ValidFlightType(record.FlightType) {
		return fmt.Errorf("invalid flight type %q", record.FlightType)
	}
	return nil
}

// TimestampValidationRule rejects training rows whose departure pair is
// missing or implausible. MaxGap bounds |actual - scheduled|; beyond it
// the row is treated as a recording error rather than a real delay.
type TimestampValidationRule struct {
	MaxGap time.Duration
}

func NewTimestampValidationRule() *TimestampValidationRule {
	return &TimestampValidationRule{MaxGap: 24 * time.Hour}
}

func (r *TimestampValidationRule) Name() string {
	return "timestamp_validation"
}

func (r *TimestampValidationRule) Apply(record *flights.FlightRecord) error {
	if record.ScheduledDeparture.IsZero() || record.ActualDeparture.IsZero() {
		return fmt.Errorf("missing departure timestamps")
	}
	gap := record.ActualDeparture.Sub(record.ScheduledDeparture)
	if gap < 0 {
		gap = -gap
	}
	if gap > r.MaxGap {
		return fmt.Errorf("departure gap %s exceeds %s", gap, r.MaxGap)
	}
	return nil
}

// DuplicateDetectionRule drops exact re-exports of the same scheduled
// departure for the same carrier.
type DuplicateDetectionRule struct {
	seen map[string]struct{}
}

func NewDuplicateDetectionRule() *DuplicateDetectionRule {
	return &DuplicateDetectionRule{seen: make(map[string]struct{})}
}

func (r *DuplicateDetectionRule) Name() string {
	return "duplicate_detection"
}

func (r *DuplicateDetectionRule) Apply(record *flights.FlightRecord) error {
	key := fmt.Sprintf("%s_%s_%d", record.Airline, record.FlightType, record.ScheduledDeparture.Unix())
	if _, exists := r.seen[key]; exists {
		return fmt.Errorf("duplicate row for %s at %s", record.Airline, record.ScheduledDeparture)
	}
	r.seen[key] = struct{}{}
	return nil
}
