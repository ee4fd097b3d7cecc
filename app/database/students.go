package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sort"
	"strings"

	"arc-portal/app/models"
	"arc-portal/app/registry"
)

// tableCandidate is one known schema variant of the student registry. Table
// and column names come from this fixed list, never from request input.
type tableCandidate struct {
	Table      string
	SectionCol string
	NameCol    string
}

// studentTableCandidates lists the registry spellings seen across
// deployments, newest first. The fallback engine walks them in order.
var studentTableCandidates = []tableCandidate{
	{Table: "students", SectionCol: "section", NameCol: "name"},
	{Table: "student_master", SectionCol: "section", NameCol: "student_name"},
	{Table: "student_details", SectionCol: "sec", NameCol: "student_name"},
	{Table: "arc_students", SectionCol: "class_section", NameCol: "full_name"},
}

// sectionTableCandidates lists possible dedicated sections tables.
var sectionTableCandidates = []string{"sections", "section_list", "arc_sections"}

// StudentStore reads the student registry through the fallback engine. The
// registry's schema is owned elsewhere and its table/column naming is not
// guaranteed consistent across deployments, so every read probes an ordered
// list of known variants instead of assuming one.
type StudentStore struct {
	query      RowQuerier
	candidates []tableCandidate
}

// NewStudentStore builds a store over a live database handle.
func NewStudentStore(db *sql.DB) *StudentStore {
	return &StudentStore{query: DBQuerier(db), candidates: studentTableCandidates}
}

// newStudentStoreWithQuerier is the test seam.
func newStudentStoreWithQuerier(q RowQuerier, candidates []tableCandidate) *StudentStore {
	return &StudentStore{query: q, candidates: candidates}
}

// FetchBySection returns the normalized students of one section. Probe
// order per candidate table: exact section match, then prefix match. The
// first non-empty success wins outright; empty results and missing-schema
// errors move on to the next pattern; any other error aborts the fetch.
// When every variant comes back empty, one last unfiltered fetch per
// candidate is filtered client-side, since a deployment may store section
// values in a shape none of the server-side filters catch.
func (s *StudentStore) FetchBySection(ctx context.Context, section string) ([]models.StudentRow, error) {
	target := strings.ToUpper(strings.TrimSpace(section))
	if target == "" {
		return nil, fmt.Errorf("fetch by section: empty section")
	}

	for _, cand := range s.candidates {
		patterns := []struct {
			query string
			arg   string
		}{
			{fmt.Sprintf(`SELECT * FROM %s WHERE UPPER(TRIM(%s)) = $1`, cand.Table, cand.SectionCol), target},
			{fmt.Sprintf(`SELECT * FROM %s WHERE UPPER(%s) LIKE $1`, cand.Table, cand.SectionCol), target + "%"},
		}
		for _, p := range patterns {
			raw, err := s.query(ctx, p.query, p.arg)
			if err != nil {
				if IsMissingSchema(err) {
					log.Printf("[DB] schema variant %s.%s absent, trying next", cand.Table, cand.SectionCol)
					break // next candidate; the prefix pattern would fail identically
				}
				return nil, fmt.Errorf("fetch section %s from %s: %w", target, cand.Table, err)
			}
			if len(raw) > 0 {
				return normalizeAll(raw), nil
			}
			// Schema matched but held nothing; keep probing.
		}
	}

	return s.filterClientSide(ctx, target)
}

// filterClientSide is the last resort: pull each candidate table whole and
// match sections in memory, case-insensitively, on the normalized rows.
func (s *StudentStore) filterClientSide(ctx context.Context, target string) ([]models.StudentRow, error) {
	for _, cand := range s.candidates {
		raw, err := s.query(ctx, fmt.Sprintf(`SELECT * FROM %s`, cand.Table))
		if err != nil {
			if IsMissingSchema(err) {
				continue
			}
			return nil, fmt.Errorf("unfiltered fetch from %s: %w", cand.Table, err)
		}
		if len(raw) == 0 {
			continue
		}

		matched := make([]models.StudentRow, 0)
		for _, row := range normalizeAll(raw) {
			if row.Section != nil && strings.ToUpper(strings.TrimSpace(*row.Section)) == target {
				matched = append(matched, row)
			}
		}
		return matched, nil
	}
	return []models.StudentRow{}, nil
}

// FetchAll returns every student the registry holds, normalized. Same
// probing discipline as FetchBySection, without filters.
func (s *StudentStore) FetchAll(ctx context.Context) ([]models.StudentRow, error) {
	for _, cand := range s.candidates {
		raw, err := s.query(ctx, fmt.Sprintf(`SELECT * FROM %s`, cand.Table))
		if err != nil {
			if IsMissingSchema(err) {
				continue
			}
			return nil, fmt.Errorf("fetch all from %s: %w", cand.Table, err)
		}
		if len(raw) > 0 {
			return normalizeAll(raw), nil
		}
	}
	return []models.StudentRow{}, nil
}

// FetchByRegNo locates a single student by registration number, probing the
// known reg-no column spellings per candidate table and falling back to a
// client-side scan. Returns ErrNotFound when no row matches anywhere.
func (s *StudentStore) FetchByRegNo(ctx context.Context, regNo string) (*models.StudentRow, error) {
	target := strings.ToUpper(strings.TrimSpace(regNo))
	if target == "" {
		return nil, ErrNotFound
	}

	regNoCols := registry.Spellings(registry.FieldRegNo)
	for _, cand := range s.candidates {
		for _, col := range regNoCols {
			raw, err := s.query(ctx,
				fmt.Sprintf(`SELECT * FROM %s WHERE UPPER(TRIM(%s)) = $1`, cand.Table, col), target)
			if err != nil {
				if IsMissingSchema(err) {
					continue
				}
				return nil, fmt.Errorf("fetch student %s from %s: %w", target, cand.Table, err)
			}
			if len(raw) > 0 {
				row := registry.Normalize(raw[0])
				return &row, nil
			}
		}
	}

	// Column spellings exhausted; match against normalized rows instead.
	all, err := s.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].RegNo != nil && strings.EqualFold(strings.TrimSpace(*all[i].RegNo), strings.TrimSpace(regNo)) {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

// FetchAvailableSections prefers a dedicated sections table; when none
// exists or it is empty, the distinct section values of the student table
// are used instead. Output is uppercased, deduplicated and sorted.
func (s *StudentStore) FetchAvailableSections(ctx context.Context) ([]string, error) {
	for _, table := range sectionTableCandidates {
		raw, err := s.query(ctx, fmt.Sprintf(`SELECT * FROM %s`, table))
		if err != nil {
			if IsMissingSchema(err) {
				continue
			}
			return nil, fmt.Errorf("fetch sections from %s: %w", table, err)
		}
		sections := make([]string, 0, len(raw))
		for _, row := range raw {
			if v, ok := registry.Resolve(row, "section", "name", "section_name", "sec"); ok {
				if sec := strings.ToUpper(strings.TrimSpace(fmt.Sprint(v))); sec != "" {
					sections = append(sections, sec)
				}
			}
		}
		if len(sections) > 0 {
			return dedupeSorted(sections), nil
		}
	}

	students, err := s.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	sections := make([]string, 0)
	for _, row := range students {
		if row.Section != nil {
			if sec := strings.ToUpper(strings.TrimSpace(*row.Section)); sec != "" {
				sections = append(sections, sec)
			}
		}
	}
	return dedupeSorted(sections), nil
}

func normalizeAll(raw []map[string]any) []models.StudentRow {
	rows := make([]models.StudentRow, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, registry.Normalize(r))
	}
	return rows
}

func dedupeSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
