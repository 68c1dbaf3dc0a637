package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"flightdelay/flights"
)

const timestampLayout = "2006-01-02 15:04:05"

var requiredColumns = []string{"airline", "month", "flight_type"}

// ReadCSV loads historical flight rows from a dataset export. The raw
// exports are Latin-1 encoded (carrier names carry accented characters),
// so the file is decoded to UTF-8 before parsing.
func ReadCSV(path string) ([]flights.FlightRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseCSV(transform.NewReader(file, charmap.ISO8859_1.NewDecoder()))
}

// ParseCSV reads flight rows from r. The header must name at least
// airline, month and flight_type; scheduled_departure/actual_departure are
// optional and stay zero when absent (the cleaner rejects such rows on the
// training path).
func ParseCSV(r io.Reader) ([]flights.FlightRecord, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var records []flights.FlightRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		record, err := parseRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRow(row []string, index map[string]int) (flights.FlightRecord, error) {
	var record flights.FlightRecord

	record.Airline = strings.TrimSpace(cell(row, index, "airline"))
	record.FlightType = strings.TrimSpace(cell(row, index, "flight_type"))

	monthStr := strings.TrimSpace(cell(row, index, "month"))
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return record, fmt.Errorf("month %q: %w", monthStr, err)
	}
	record.Month = month

	if v := strings.TrimSpace(cell(row, index, "scheduled_departure")); v != "" {
		record.ScheduledDeparture, err = parseTimestamp(v)
		if err != nil {
			return record, fmt.Errorf("scheduled_departure: %w", err)
		}
	}
	if v := strings.TrimSpace(cell(row, index, "actual_departure")); v != "" {
		record.ActualDeparture, err = parseTimestamp(v)
		if err != nil {
			return record, fmt.Errorf("actual_departure: %w", err)
		}
	}
	return record, nil
}

func parseTimestamp(v string) (time.Time, error) {
	return time.Parse(timestampLayout, v)
}

func cell(row []string, index map[string]int, name string) string {
	idx, ok := index[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
