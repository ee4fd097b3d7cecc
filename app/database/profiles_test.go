package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"arc-portal/app/models"
)

func TestProfileResolveByExternalID(t *testing.T) {
	q := func(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
		if strings.Contains(query, "WHERE user_id") {
			return []map[string]any{
				{"id": "p1", "email": "advisor@college.edu", "role": "section_advisor", "section": " q "},
			}, nil
		}
		t.Fatalf("unexpected query %q", query)
		return nil, nil
	}
	store := newProfileStoreWithQuerier(q, "profiles")

	p, err := store.Resolve(context.Background(), "ext-1", "")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Role != models.RoleSectionAdvisor {
		t.Fatalf("profile = %+v", p)
	}
	if p.Section != "Q" {
		t.Fatalf("section = %q, want uppercased trimmed Q", p.Section)
	}
}

func TestProfileResolveFallsBackToPrimaryKeyThenEmail(t *testing.T) {
	var tried []string
	q := func(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
		tried = append(tried, query)
		switch {
		case strings.Contains(query, "WHERE user_id"):
			return nil, errors.New(`pq: column "user_id" does not exist`)
		case strings.Contains(query, "WHERE id"):
			return nil, nil
		case strings.Contains(query, "LOWER(TRIM(email))"):
			if args[0] != "hod@college.edu" {
				t.Fatalf("email not normalized: %v", args[0])
			}
			return []map[string]any{{"id": "p2", "email": "HOD@College.edu", "role": "hod"}}, nil
		}
		return nil, nil
	}
	store := newProfileStoreWithQuerier(q, "profiles")

	p, err := store.Resolve(context.Background(), "ext-2", "  HOD@College.edu ")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Role != models.RoleHOD {
		t.Fatalf("profile = %+v", p)
	}
	if len(tried) != 3 {
		t.Fatalf("lookup schemes tried = %d, want 3", len(tried))
	}
}

func TestProfileResolveSkipsPrimaryKeyWhenFKUnset(t *testing.T) {
	var tried []string
	q := func(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
		tried = append(tried, query)
		switch {
		case strings.Contains(query, "WHERE user_id"):
			// Column exists, link just not populated.
			return nil, nil
		case strings.Contains(query, "WHERE id"):
			t.Fatal("primary-key scheme tried although user_id column exists")
			return nil, nil
		case strings.Contains(query, "LOWER(TRIM(email))"):
			return []map[string]any{{"id": "p5", "email": "adv@college.edu", "role": "section_advisor", "section": "A"}}, nil
		}
		return nil, nil
	}
	store := newProfileStoreWithQuerier(q, "profiles")

	p, err := store.Resolve(context.Background(), "ext-6", "adv@college.edu")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Role != models.RoleSectionAdvisor {
		t.Fatalf("profile = %+v", p)
	}
	if len(tried) != 2 {
		t.Fatalf("lookup schemes tried = %d, want user_id then email only", len(tried))
	}
}

func TestProfileResolveFailClosedOnUnknownRole(t *testing.T) {
	q := func(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
		return []map[string]any{{"id": "p3", "role": "TEACHER"}}, nil
	}
	store := newProfileStoreWithQuerier(q, "profiles")

	p, err := store.Resolve(context.Background(), "ext-3", "")
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Fatalf("unknown role must yield no profile, got %+v", p)
	}
}

func TestProfileResolveCaseInsensitiveRole(t *testing.T) {
	q := func(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
		return []map[string]any{{"id": "p4", "role": "hod"}}, nil
	}
	store := newProfileStoreWithQuerier(q, "profiles")

	p, err := store.Resolve(context.Background(), "ext-4", "")
	if err != nil || p == nil {
		t.Fatalf("p=%v err=%v", p, err)
	}
	if p.Role != models.RoleHOD || p.RawRole != "hod" {
		t.Fatalf("profile = %+v", p)
	}
}

func TestProfileResolveAbortsOnUnexpectedError(t *testing.T) {
	q := func(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
		return nil, errors.New("pq: permission denied for table profiles")
	}
	store := newProfileStoreWithQuerier(q, "profiles")

	if _, err := store.Resolve(context.Background(), "ext-5", "x@y.z"); err == nil {
		t.Fatal("non-schema error must abort resolution")
	}
}
