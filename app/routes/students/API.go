package students

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"arc-portal/app/database"
	"arc-portal/app/models"
	"arc-portal/app/registry"
	"arc-portal/app/routes/auth"
)

// RosterStore is the slice of the fallback engine the roster views need.
type RosterStore interface {
	FetchAll(ctx context.Context) ([]models.StudentRow, error)
	FetchBySection(ctx context.Context, section string) ([]models.StudentRow, error)
	FetchByRegNo(ctx context.Context, regNo string) (*models.StudentRow, error)
	FetchAvailableSections(ctx context.Context) ([]string, error)
}

// Handler serves the roster views over the fallback engine.
type Handler struct {
	Store RosterStore
}

func NewHandler(store RosterStore) *Handler {
	return &Handler{Store: store}
}

// GetStudentsAPI returns the caller's roster: the whole registry for HODs,
// the advisor's own section otherwise.
func (h *Handler) GetStudentsAPI(c *fiber.Ctx) error {
	profile := auth.CurrentProfile(c)

	var (
		rows []models.StudentRow
		err  error
	)
	if profile.Role == models.RoleHOD {
		rows, err = h.Store.FetchAll(c.UserContext())
	} else {
		rows, err = h.Store.FetchBySection(c.UserContext(), profile.Section)
	}
	if err != nil {
		if database.IsTimeout(err) {
			// Transient failure degrades to "no data" instead of an error.
			log.Printf("[STUDENTS] roster fetch timed out: %v", err)
			rows = nil
		} else {
			log.Printf("[STUDENTS] roster fetch failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
		}
	}

	records := registry.ToRecords(rows)
	echoRequestToken(c)
	return c.JSON(fiber.Map{
		"students": records,
		"count":    len(records),
	})
}

// GetStudentsBySectionAPI returns one section's roster, subject to section
// scoping: advisors may only read their own section.
func (h *Handler) GetStudentsBySectionAPI(c *fiber.Ctx) error {
	section := strings.ToUpper(strings.TrimSpace(c.Params("section")))
	if section == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Section is required"})
	}

	profile := auth.CurrentProfile(c)
	if !profile.CanAccessSection(section) {
		return c.Status(403).JSON(fiber.Map{"error": "Section not permitted"})
	}

	rows, err := h.Store.FetchBySection(c.UserContext(), section)
	if err != nil {
		if database.IsTimeout(err) {
			log.Printf("[STUDENTS] section %s fetch timed out: %v", section, err)
			rows = nil
		} else {
			log.Printf("[STUDENTS] section %s fetch failed: %v", section, err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
		}
	}

	records := registry.ToRecords(rows)
	echoRequestToken(c)
	return c.JSON(fiber.Map{
		"students": records,
		"section":  section,
		"count":    len(records),
	})
}

// GetStudentsTableAPI is the roster table view: search, sort and paging
// applied in memory over the scoped roster, the way the UI consumes it.
func (h *Handler) GetStudentsTableAPI(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	sortBy := c.Query("sort_by", "reg_no")
	sortOrder := c.Query("sort_order", "asc")
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	profile := auth.CurrentProfile(c)
	var (
		rows []models.StudentRow
		err  error
	)
	if profile.Role == models.RoleHOD {
		rows, err = h.Store.FetchAll(c.UserContext())
	} else {
		rows, err = h.Store.FetchBySection(c.UserContext(), profile.Section)
	}
	if err != nil {
		if database.IsTimeout(err) {
			log.Printf("[STUDENTS] table fetch timed out: %v", err)
			rows = nil
		} else {
			log.Printf("[STUDENTS] table fetch failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
		}
	}

	records := registry.ToRecords(rows)
	if search != "" {
		records = filterRecords(records, search)
	}
	sortRecords(records, sortBy, sortOrder)

	total := len(records)
	records = paginate(records, limit, offset)

	echoRequestToken(c)
	return c.JSON(fiber.Map{
		"students":    records,
		"count":       len(records),
		"total_count": total,
	})
}

// GetStudentByRegNoAPI returns one student's full record.
func (h *Handler) GetStudentByRegNoAPI(c *fiber.Ctx) error {
	regNo := c.Params("regno")

	row, err := h.Store.FetchByRegNo(c.UserContext(), regNo)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		log.Printf("[STUDENTS] detail fetch for %s failed: %v", regNo, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	record := registry.ToRecord(*row)
	profile := auth.CurrentProfile(c)
	if !profile.CanAccessSection(record.Section) {
		// Same answer as a missing student, so the response does not
		// reveal whether the registration number exists elsewhere.
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	echoRequestToken(c)
	return c.JSON(fiber.Map{"student": record})
}

// GetSectionsAPI lists the sections the registry knows about.
func (h *Handler) GetSectionsAPI(c *fiber.Ctx) error {
	sections, err := h.Store.FetchAvailableSections(c.UserContext())
	if err != nil {
		log.Printf("[STUDENTS] sections fetch failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sections"})
	}

	echoRequestToken(c)
	return c.JSON(fiber.Map{
		"sections": sections,
		"count":    len(sections),
	})
}

// echoRequestToken reflects the client's request token so fast-clicking
// users can discard responses from superseded requests (latest-wins guard).
func echoRequestToken(c *fiber.Ctx) {
	if token := c.Get("X-Request-Token"); token != "" {
		c.Set("X-Request-Token", token)
	}
}

func filterRecords(records []models.StudentRecord, search string) []models.StudentRecord {
	needle := strings.ToLower(search)
	out := make([]models.StudentRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.RegNo), needle) ||
			strings.Contains(strings.ToLower(r.RollNo), needle) ||
			strings.Contains(strings.ToLower(r.Email), needle) {
			out = append(out, r)
		}
	}
	return out
}

// sortRecords orders by a whitelisted key. Unknown keys fall back to reg_no.
func sortRecords(records []models.StudentRecord, sortBy, sortOrder string) {
	desc := strings.EqualFold(sortOrder, "desc")

	less := func(a, b models.StudentRecord) bool { return a.RegNo < b.RegNo }
	switch sortBy {
	case "name":
		less = func(a, b models.StudentRecord) bool { return a.Name < b.Name }
	case "section":
		less = func(a, b models.StudentRecord) bool { return a.Section < b.Section }
	case "cgpa_overall":
		less = func(a, b models.StudentRecord) bool { return a.CGPAOverall < b.CGPAOverall }
	case "backlogs":
		less = func(a, b models.StudentRecord) bool { return a.Backlogs < b.Backlogs }
	case "attendance_pct":
		less = func(a, b models.StudentRecord) bool { return a.AttendancePct < b.AttendancePct }
	}

	sort.SliceStable(records, func(i, j int) bool {
		if desc {
			return less(records[j], records[i])
		}
		return less(records[i], records[j])
	})
}

func paginate(records []models.StudentRecord, limit, offset int) []models.StudentRecord {
	// Query values arrive unchecked; negative bounds must not slice.
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset >= len(records) {
		return []models.StudentRecord{}
	}
	records = records[offset:]
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return records
}
