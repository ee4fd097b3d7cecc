package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"arc-portal/app/models"
	"arc-portal/app/registry"
)

// ProfileStore resolves authenticated identities to access-control
// profiles. Profiles are read-only here; administrators edit them directly
// in the backing store.
type ProfileStore struct {
	query RowQuerier
	table string
}

func NewProfileStore(db *sql.DB, table string) *ProfileStore {
	if table == "" {
		table = "profiles"
	}
	return &ProfileStore{query: DBQuerier(db), table: table}
}

func newProfileStoreWithQuerier(q RowQuerier, table string) *ProfileStore {
	return &ProfileStore{query: q, table: table}
}

// Resolve maps an external identity to its profile. Lookup order: the
// external-id FK column; the primary key treated as external id, but only
// when the FK column itself is missing from the schema; finally the
// normalized email when one was supplied. An empty FK result on an
// existing column means the link is simply unset, so the primary-key
// scheme is skipped and resolution moves straight to email. First match
// wins. A row whose role is outside the closed set yields no profile at
// all — unknown roles never imply access. Errors other than
// missing-schema abort resolution.
func (s *ProfileStore) Resolve(ctx context.Context, externalUserID, email string) (*models.Profile, error) {
	raw, err := s.query(ctx,
		fmt.Sprintf(`SELECT * FROM %s WHERE user_id = $1`, s.table), externalUserID)
	switch {
	case err == nil:
		if len(raw) > 0 {
			return s.fromRaw(raw[0])
		}
	case IsMissingSchema(err):
		log.Printf("[AUTH] profile column %s.user_id absent, treating primary key as external id", s.table)
		raw, err = s.query(ctx,
			fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, s.table), externalUserID)
		if err != nil {
			if !IsMissingSchema(err) {
				return nil, fmt.Errorf("profile lookup by id: %w", err)
			}
		} else if len(raw) > 0 {
			return s.fromRaw(raw[0])
		}
	default:
		return nil, fmt.Errorf("profile lookup by user_id: %w", err)
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return nil, nil
	}
	raw, err = s.query(ctx,
		fmt.Sprintf(`SELECT * FROM %s WHERE LOWER(TRIM(email)) = $1`, s.table), normalizedEmail)
	if err != nil {
		if IsMissingSchema(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("profile lookup by email: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return s.fromRaw(raw[0])
}

// fromRaw shapes a raw profile row, fail-closed on the role.
func (s *ProfileStore) fromRaw(raw map[string]any) (*models.Profile, error) {
	p := &models.Profile{}
	if v, ok := registry.Resolve(raw, "id", "profile_id"); ok {
		p.ID = fmt.Sprint(v)
	}
	if v, ok := registry.Resolve(raw, "email", "email_id"); ok {
		p.Email = strings.TrimSpace(fmt.Sprint(v))
	}
	if v, ok := registry.Resolve(raw, "username", "user_name", "display_name"); ok {
		p.Username = strings.TrimSpace(fmt.Sprint(v))
	}
	if v, ok := registry.Resolve(raw, "section", "sec", "assigned_section"); ok {
		p.Section = strings.ToUpper(strings.TrimSpace(fmt.Sprint(v)))
	}

	if v, ok := registry.Resolve(raw, "role", "user_role", "access_role"); ok {
		p.RawRole = strings.TrimSpace(fmt.Sprint(v))
	}
	p.Role = models.ParseRole(p.RawRole)
	if p.Role == "" {
		log.Printf("[AUTH] profile %s has unrecognized role %q, denying access", p.ID, p.RawRole)
		return nil, nil
	}
	return p, nil
}
