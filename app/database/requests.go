package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"arc-portal/app/models"
)

// ReplacePendingUpdates swaps the pending-update rows of a section for the
// given field labels. Delete and insert run inside one transaction so a
// failed insert cannot leave the section with no pending rows at all.
func ReplacePendingUpdates(ctx context.Context, db *sql.DB, section string, fieldLabels []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin pending-update sync: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM pending_update_requests WHERE section = $1`, section); err != nil {
		return fmt.Errorf("clear pending updates for %s: %w", section, err)
	}

	for _, label := range fieldLabels {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pending_update_requests (section, field_label) VALUES ($1, $2)`,
			section, label); err != nil {
			return fmt.Errorf("insert pending update %q for %s: %w", label, section, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit pending-update sync: %w", err)
	}
	return nil
}

// ListPendingUpdates returns the pending-update rows of a section.
func ListPendingUpdates(ctx context.Context, db *sql.DB, section string) ([]models.PendingUpdateRequest, error) {
	return listPendingUpdates(ctx, DBQuerier(db), section)
}

func listPendingUpdates(ctx context.Context, q RowQuerier, section string) ([]models.PendingUpdateRequest, error) {
	raw, err := q(ctx,
		`SELECT section, field_label, created_at FROM pending_update_requests
		 WHERE section = $1 ORDER BY field_label ASC`, section)
	if err != nil {
		return nil, err
	}

	// Non-nil so an empty section encodes as [] rather than null.
	out := make([]models.PendingUpdateRequest, 0, len(raw))
	for _, row := range raw {
		r := models.PendingUpdateRequest{
			Section:    fmt.Sprint(row["section"]),
			FieldLabel: fmt.Sprint(row["field_label"]),
		}
		if ts, ok := row["created_at"].(time.Time); ok {
			r.CreatedAt = ts
		}
		out = append(out, r)
	}
	return out, nil
}
