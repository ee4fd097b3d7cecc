package students

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"arc-portal/app/database"
	"arc-portal/app/models"
)

// stubRoster serves a fixed roster without touching a database.
type stubRoster struct {
	rows []models.StudentRow
}

func (s *stubRoster) FetchAll(ctx context.Context) ([]models.StudentRow, error) {
	return s.rows, nil
}

func (s *stubRoster) FetchBySection(ctx context.Context, section string) ([]models.StudentRow, error) {
	var out []models.StudentRow
	for _, r := range s.rows {
		if r.Section != nil && strings.EqualFold(*r.Section, section) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRoster) FetchByRegNo(ctx context.Context, regNo string) (*models.StudentRow, error) {
	for i, r := range s.rows {
		if r.RegNo != nil && *r.RegNo == regNo {
			return &s.rows[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *stubRoster) FetchAvailableSections(ctx context.Context) ([]string, error) {
	return []string{"A", "B"}, nil
}

func strPtr(s string) *string { return &s }

func rosterFixture() *stubRoster {
	return &stubRoster{rows: []models.StudentRow{
		{RegNo: strPtr("21CS001"), Name: strPtr("Anita"), Section: strPtr("A")},
		{RegNo: strPtr("21CS002"), Name: strPtr("Bala"), Section: strPtr("A")},
		{RegNo: strPtr("21CS050"), Name: strPtr("Charu"), Section: strPtr("B")},
	}}
}

func newTestApp(t *testing.T, profile *models.Profile, store RosterStore) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("profile", profile)
		return c.Next()
	})
	h := NewHandler(store)
	app.Get("/api/students/table", h.GetStudentsTableAPI)
	app.Get("/api/students/:regno", h.GetStudentByRegNoAPI)
	return app
}

func TestPaginateClampsOutOfRangeBounds(t *testing.T) {
	records := []models.StudentRecord{{RegNo: "1"}, {RegNo: "2"}, {RegNo: "3"}}

	tests := []struct {
		name          string
		limit, offset int
		want          int
	}{
		{"negative offset", 0, -1, 3},
		{"negative limit", -5, 0, 3},
		{"both negative", -5, -7, 3},
		{"offset past end", 0, 10, 0},
		{"window", 2, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(records, tt.limit, tt.offset)
			if got == nil {
				t.Fatal("paginate returned nil")
			}
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestStudentsTableNegativeOffsetReturnsFullPage(t *testing.T) {
	advisor := &models.Profile{ID: "p1", Role: models.RoleSectionAdvisor, Section: "A"}
	app := newTestApp(t, advisor, rosterFixture())

	req := httptest.NewRequest("GET", "/api/students/table?offset=-1&limit=-5", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Count      int `json:"count"`
		TotalCount int `json:"total_count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Count != 2 || body.TotalCount != 2 {
		t.Fatalf("count = %d total = %d, want the advisor's full section", body.Count, body.TotalCount)
	}
}

func TestStudentDetailOutsideSectionLooksMissing(t *testing.T) {
	advisor := &models.Profile{ID: "p1", Role: models.RoleSectionAdvisor, Section: "A"}
	app := newTestApp(t, advisor, rosterFixture())

	readBody := func(t *testing.T, path string) (int, string) {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
		if err != nil {
			t.Fatal(err)
		}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		return resp.StatusCode, body.Error
	}

	// A registration number in another advisor's section must be
	// indistinguishable from one that does not exist at all.
	otherStatus, otherErr := readBody(t, "/api/students/21CS050")
	missingStatus, missingErr := readBody(t, "/api/students/99XX999")

	if otherStatus != 404 || missingStatus != 404 {
		t.Fatalf("statuses = %d and %d, want 404 for both", otherStatus, missingStatus)
	}
	if otherErr != missingErr {
		t.Fatalf("error bodies differ: %q vs %q", otherErr, missingErr)
	}
}

func TestStudentDetailOwnSection(t *testing.T) {
	advisor := &models.Profile{ID: "p1", Role: models.RoleSectionAdvisor, Section: "A"}
	app := newTestApp(t, advisor, rosterFixture())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/students/21CS001", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
