package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"flightdelay/flights"
)

var database *sql.DB

// InitDB opens the SQLite store and creates the flights schema. The store
// holds the historical training corpus; it is never on the inference path.
func InitDB(path string) error {
	var err error
	database, err = sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	query := `
    CREATE TABLE IF NOT EXISTS flights (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        airline TEXT NOT NULL,
        month INTEGER NOT NULL,
        flight_type TEXT NOT NULL,
        scheduled_departure DATETIME,
        actual_departure DATETIME,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        UNIQUE(airline, flight_type, scheduled_departure)
    );
    CREATE INDEX IF NOT EXISTS idx_flights_airline ON flights(airline);
    CREATE INDEX IF NOT EXISTS idx_flights_month ON flights(month);
    `
	_, err = database.Exec(query)
	return err
}

func Close() error {
	if database == nil {
		return nil
	}
	err := database.Close()
	database = nil
	return err
}

// SaveFlights inserts a batch of historical rows in one transaction.
// Re-imported rows (same carrier, type and scheduled departure) are
// ignored.
func SaveFlights(records []flights.FlightRecord) error {
	if database == nil {
		return errors.New("database not initialized")
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := database.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
        INSERT OR IGNORE INTO flights (airline, month, flight_type, scheduled_departure, actual_departure)
        VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.Airline, r.Month, r.FlightType, nullTime(r.ScheduledDeparture), nullTime(r.ActualDeparture)); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert flight: %w", err)
		}
	}
	return tx.Commit()
}

// QueryFlights returns stored rows, optionally filtered by airline and
// month. A non-positive limit returns everything.
func QueryFlights(airline string, month, limit int) ([]flights.FlightRecord, error) {
	if database == nil {
		return nil, errors.New("database not initialized")
	}

	builder := sq.Select("airline", "month", "flight_type", "scheduled_departure", "actual_departure").
		From("flights").
		OrderBy("id")
	if airline != "" {
		builder = builder.Where(sq.Eq{"airline": airline})
	}
	if month > 0 {
		builder = builder.Where(sq.Eq{"month": month})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := database.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []flights.FlightRecord
	for rows.Next() {
		var r flights.FlightRecord
		var scheduled, actual sql.NullTime
		if err := rows.Scan(&r.Airline, &r.Month, &r.FlightType, &scheduled, &actual); err != nil {
			return nil, err
		}
		if scheduled.Valid {
			r.ScheduledDeparture = scheduled.Time
		}
		if actual.Valid {
			r.ActualDeparture = actual.Time
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func CountFlights() (int, error) {
	if database == nil {
		return 0, errors.New("database not initialized")
	}
	query, args, err := sq.Select("COUNT(*)").From("flights").ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := database.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
