package database

import (
	"context"
	"testing"
	"time"
)

func TestListPendingUpdatesEmptySectionIsNotNil(t *testing.T) {
	q := func(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
		return nil, nil
	}

	out, err := listPendingUpdates(context.Background(), q, "A")
	if err != nil {
		t.Fatal(err)
	}
	if out == nil {
		t.Fatal("empty section must return a non-nil slice so it encodes as []")
	}
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}

func TestListPendingUpdatesShapesRows(t *testing.T) {
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	q := func(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
		if args[0] != "B" {
			t.Fatalf("section arg = %v", args[0])
		}
		return []map[string]any{
			{"section": "B", "field_label": "Attendance %", "created_at": created},
		}, nil
	}

	out, err := listPendingUpdates(context.Background(), q, "B")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Section != "B" || out[0].FieldLabel != "Attendance %" || !out[0].CreatedAt.Equal(created) {
		t.Fatalf("row = %+v", out[0])
	}
}
