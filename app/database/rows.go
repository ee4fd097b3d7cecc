package database

import (
	"context"
	"database/sql"
)

// RowQuerier executes a query and returns its rows as loose maps of column
// name to value. The fallback engine and profile resolver run on top of
// this signature so tests can substitute a fake without a live database.
type RowQuerier func(ctx context.Context, query string, args ...any) ([]map[string]any, error)

// DBQuerier adapts a *sql.DB into a RowQuerier. Column names are taken from
// the result set as-is; reconciling their spelling is the registry's job.
func DBQuerier(db *sql.DB) RowQuerier {
	return func(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		return scanRows(rows)
	}
}

func scanRows(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			// lib/pq hands text columns back as []byte; keep strings
			// readable for the normalizer.
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
