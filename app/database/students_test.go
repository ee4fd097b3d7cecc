package database

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// fakeQuerier scripts responses per table name and records the queries the
// engine actually ran.
type fakeQuerier struct {
	responses map[string]fakeResponse
	queries   []string
}

type fakeResponse struct {
	rows []map[string]any
	err  error
}

func (f *fakeQuerier) query(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	f.queries = append(f.queries, query)
	for table, resp := range f.responses {
		if strings.Contains(query, " FROM "+table) {
			return resp.rows, resp.err
		}
	}
	return nil, fmt.Errorf(`pq: relation "unknown" does not exist`)
}

var testCandidates = []tableCandidate{
	{Table: "students", SectionCol: "section", NameCol: "name"},
	{Table: "student_master", SectionCol: "section", NameCol: "student_name"},
}

func TestFetchBySectionSkipsMissingRelation(t *testing.T) {
	fq := &fakeQuerier{responses: map[string]fakeResponse{
		"students": {err: errors.New(`pq: relation "students" does not exist`)},
		"student_master": {rows: []map[string]any{
			{"REGNO": "24CS0001", "SECTION": "Q", "NAME": "Jane"},
			{"REGNO": "24CS0002", "SECTION": "Q", "NAME": "Arun"},
		}},
	}}
	store := newStudentStoreWithQuerier(fq.query, testCandidates)

	rows, err := store.FetchBySection(context.Background(), "q")
	if err != nil {
		t.Fatalf("missing relation on first candidate must not surface, got %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want the 2 from the second candidate", len(rows))
	}
	if rows[0].RegNo == nil || *rows[0].RegNo != "24CS0001" {
		t.Fatalf("rows not normalized: %+v", rows[0])
	}
}

func TestFetchBySectionAbortsOnNonSchemaError(t *testing.T) {
	fq := &fakeQuerier{responses: map[string]fakeResponse{
		"students":       {err: errors.New("pq: permission denied for table students")},
		"student_master": {rows: []map[string]any{{"regno": "x"}}},
	}}
	store := newStudentStoreWithQuerier(fq.query, testCandidates)

	if _, err := store.FetchBySection(context.Background(), "Q"); err == nil {
		t.Fatal("permission error must abort the whole fetch")
	}
	for _, q := range fq.queries {
		if strings.Contains(q, "student_master") {
			t.Fatal("second candidate must not be tried after a fatal error")
		}
	}
}

func TestFetchBySectionClientSideFallback(t *testing.T) {
	calls := 0
	q := func(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
		calls++
		if strings.Contains(query, "WHERE") {
			// Server-side filters find nothing in this deployment.
			return nil, nil
		}
		return []map[string]any{
			{"regno": "1", "section": " q "},
			{"regno": "2", "section": "R"},
		}, nil
	}
	store := newStudentStoreWithQuerier(q, testCandidates)

	rows, err := store.FetchBySection(context.Background(), "Q")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || *rows[0].RegNo != "1" {
		t.Fatalf("client-side filter got %+v, want only the Q row", rows)
	}
}

func TestFetchBySectionEmptyEverywhere(t *testing.T) {
	q := func(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
		return nil, nil
	}
	store := newStudentStoreWithQuerier(q, testCandidates)

	rows, err := store.FetchBySection(context.Background(), "Z")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want empty result", len(rows))
	}
}

func TestFetchAvailableSectionsFromSectionsTable(t *testing.T) {
	fq := &fakeQuerier{responses: map[string]fakeResponse{
		"sections": {rows: []map[string]any{
			{"name": "q"}, {"name": "P"}, {"name": " q "},
		}},
	}}
	store := newStudentStoreWithQuerier(fq.query, testCandidates)

	got, err := store.FetchAvailableSections(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"P", "Q"}) {
		t.Fatalf("sections = %v, want deduplicated sorted [P Q]", got)
	}
}

func TestFetchAvailableSectionsDerivedFromStudents(t *testing.T) {
	fq := &fakeQuerier{responses: map[string]fakeResponse{
		"sections":       {err: errors.New(`pq: relation "sections" does not exist`)},
		"section_list":   {err: errors.New(`pq: relation "section_list" does not exist`)},
		"arc_sections":   {err: errors.New(`pq: relation "arc_sections" does not exist`)},
		"students":       {rows: []map[string]any{{"section": "r"}, {"SECTION": "q"}, {"section": "r"}}},
		"student_master": {rows: nil},
	}}
	store := newStudentStoreWithQuerier(fq.query, testCandidates)

	got, err := store.FetchAvailableSections(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"Q", "R"}) {
		t.Fatalf("sections = %v, want [Q R]", got)
	}
}

func TestFetchByRegNoFallsBackToScan(t *testing.T) {
	q := func(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
		if strings.Contains(query, "WHERE") {
			return nil, errors.New(`pq: column "reg_no" does not exist`)
		}
		return []map[string]any{
			{"REGISTER_NUMBER": "24CS0042", "NAME": "Asha"},
		}, nil
	}
	store := newStudentStoreWithQuerier(q, testCandidates)

	row, err := store.FetchByRegNo(context.Background(), "24cs0042")
	if err != nil {
		t.Fatal(err)
	}
	if row.Name == nil || *row.Name != "Asha" {
		t.Fatalf("row = %+v", row)
	}

	if _, err := store.FetchByRegNo(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestIsMissingSchema(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errors.New(`pq: relation "students" does not exist`), true},
		{errors.New(`pq: column "section" does not exist`), true},
		{errors.New("pq: permission denied for table students"), false},
		{errors.New("connection refused"), false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := IsMissingSchema(tc.err); got != tc.want {
			t.Errorf("IsMissingSchema(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
