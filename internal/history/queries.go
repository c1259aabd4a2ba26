package history

import (
	"fmt"
	"time"
)

// Event operations recorded in the log.
const (
	OpInstall = "install"
	OpRemove  = "remove"
	OpUpdate  = "update"
	OpSwitch  = "switch"
)

// Event is one recorded registry mutation.
type Event struct {
	ID        int64
	Operation string
	Package   string
	Version   string
	Detail    string
	Timestamp time.Time
}

// Record appends an event to the log.
func (s *Store) Record(operation, pkg, version, detail string) error {
	query := `
		INSERT INTO events (operation, package, version, detail, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query, operation, pkg, version, detail, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to record %s event for %s: %w", operation, pkg, err)
	}
	return nil
}

// Recent returns the newest events, optionally filtered to one package.
// Events come back newest first.
func (s *Store) Recent(pkg string, limit int) ([]Event, error) {
	query := `
		SELECT id, operation, package, version, detail, timestamp
		FROM events
	`
	args := []any{}
	if pkg != "" {
		query += " WHERE package = ?"
		args = append(args, pkg)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var ts string
		if err := rows.Scan(&ev.ID, &ev.Operation, &ev.Package, &ev.Version, &ev.Detail, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		ev.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event timestamp: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	return events, nil
}
