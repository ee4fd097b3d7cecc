package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// NotificationStore writes best-effort broadcast rows for students. The
// target table is resolved once at startup rather than probed on every
// call; a deployment without one degrades the feature to a logged no-op.
type NotificationStore struct {
	db    *sql.DB
	table string
}

// notificationTableCandidates are the historical spellings of the side
// table, checked once at startup.
var notificationTableCandidates = []string{"notifications", "student_notifications", "announcements"}

// NewNotificationStore probes for a usable notification table. Missing
// tables are expected; any other probe error is surfaced.
func NewNotificationStore(ctx context.Context, db *sql.DB, configured string) (*NotificationStore, error) {
	candidates := notificationTableCandidates
	if configured != "" {
		candidates = []string{configured}
	}

	for _, table := range candidates {
		rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT 1 FROM %s LIMIT 1`, table))
		if err == nil {
			rows.Close()
			log.Printf("[NOTIFY] broadcasting to table %s", table)
			return &NotificationStore{db: db, table: table}, nil
		}
		if IsMissingSchema(err) {
			continue
		}
		return nil, fmt.Errorf("probe notification table %s: %w", table, err)
	}

	log.Printf("[NOTIFY] no notification table found, broadcasts disabled")
	return &NotificationStore{db: db}, nil
}

// Enabled reports whether a notification table was found.
func (s *NotificationStore) Enabled() bool { return s.table != "" }

// Broadcast inserts one notification row for a section. Best effort: with
// no table configured it succeeds without writing anything, and even an
// insert failure is logged rather than surfaced, per the side-channel
// contract.
func (s *NotificationStore) Broadcast(ctx context.Context, section, message string) error {
	if !s.Enabled() {
		log.Printf("[NOTIFY] dropped broadcast for %s: no notification table", section)
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (section, message) VALUES ($1, $2)`, s.table),
		section, message)
	if err != nil {
		log.Printf("[NOTIFY] broadcast for %s failed: %v", section, err)
	}
	return nil
}
