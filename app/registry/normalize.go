package registry

import (
	"strconv"
	"strings"

	"arc-portal/app/models"
)

// Normalize maps a raw registry row of unknown column spellings into the
// canonical StudentRow. It never fails: fields whose columns are absent stay
// nil, and a row matching nothing yields an all-nil StudentRow.
func Normalize(raw map[string]any) models.StudentRow {
	row := models.StudentRow{
		RegNo:         resolveString(raw, FieldRegNo),
		RollNo:        resolveString(raw, FieldRollNo),
		Name:          resolveString(raw, FieldName),
		Email:         resolveString(raw, FieldEmail),
		PersonalEmail: resolveString(raw, FieldPersonalEmail),
		Gender:        resolveString(raw, FieldGender),
		DOB:           resolveString(raw, FieldDOB),
		BloodGroup:    resolveString(raw, FieldBloodGroup),
		PhotoURL:      resolveString(raw, FieldPhotoURL),

		Mobile:       resolveString(raw, FieldMobile),
		ParentName:   resolveString(raw, FieldParentName),
		ParentMobile: resolveString(raw, FieldParentMobile),

		Address: resolveString(raw, FieldAddress),
		City:    resolveString(raw, FieldCity),
		State:   resolveString(raw, FieldState),
		Pincode: resolveString(raw, FieldPincode),

		Department: resolveString(raw, FieldDepartment),
		Section:    resolveString(raw, FieldSection),
		Batch:      resolveString(raw, FieldBatch),
		Mentor:     resolveString(raw, FieldMentor),
		COE:        resolveString(raw, FieldCOE),

		TenthPct:      resolveNumber(raw, FieldTenthPct),
		TwelfthPct:    resolveNumber(raw, FieldTwelfthPct),
		DiplomaPct:    resolveNumber(raw, FieldDiplomaPct),
		Sem1GPA:       resolveNumber(raw, FieldSem1GPA),
		Sem2GPA:       resolveNumber(raw, FieldSem2GPA),
		Sem3GPA:       resolveNumber(raw, FieldSem3GPA),
		Sem4GPA:       resolveNumber(raw, FieldSem4GPA),
		Sem5GPA:       resolveNumber(raw, FieldSem5GPA),
		Sem6GPA:       resolveNumber(raw, FieldSem6GPA),
		Sem7GPA:       resolveNumber(raw, FieldSem7GPA),
		Sem8GPA:       resolveNumber(raw, FieldSem8GPA),
		CGPAOverall:   resolveNumber(raw, FieldCGPAOverall),
		Backlogs:      resolveNumber(raw, FieldBacklogs),
		AttendancePct: resolveNumber(raw, FieldAttendancePct),

		LeetcodeUsername:   resolveString(raw, FieldLeetcodeUsername),
		LeetcodeSolved:     resolveNumber(raw, FieldLeetcodeSolved),
		LeetcodeRating:     resolveNumber(raw, FieldLeetcodeRating),
		CodechefUsername:   resolveString(raw, FieldCodechefUsername),
		CodechefRating:     resolveNumber(raw, FieldCodechefRating),
		HackerrankUsername: resolveString(raw, FieldHackerrankUsername),
		GithubUsername:     resolveString(raw, FieldGithubUsername),

		LinkedinURL:  resolveString(raw, FieldLinkedinURL),
		PortfolioURL: resolveString(raw, FieldPortfolioURL),
		ResumeURL:    resolveString(raw, FieldResumeURL),
	}

	if v, ok := Resolve(raw, Spellings(FieldTechStack)...); ok {
		row.TechStack = SplitList(v)
	}
	row.IsHosteller = resolveResidency(raw)

	return row
}

// resolveResidency derives the hosteller flag. A free-text status column
// wins over a boolean-like column when both are present; when neither is,
// residency stays unknown rather than defaulting to false.
func resolveResidency(raw map[string]any) *bool {
	if v, ok := Resolve(raw, Spellings(FieldHostelText)...); ok {
		if text := strings.TrimSpace(asString(v)); text != "" {
			hosteller := isHostelText(text)
			return &hosteller
		}
	}
	if v, ok := Resolve(raw, Spellings(FieldIsHosteller)...); ok {
		if b, ok := asBool(v); ok {
			return &b
		}
	}
	return nil
}

func isHostelText(text string) bool {
	t := strings.ToLower(text)
	return strings.Contains(t, "hosteller") || strings.Contains(t, "hostel") || strings.Contains(t, "host")
}

func resolveString(raw map[string]any, field string) *string {
	v, ok := Resolve(raw, Spellings(field)...)
	if !ok || v == nil {
		return nil
	}
	s := asString(v)
	return &s
}

func resolveNumber(raw map[string]any, field string) *float64 {
	v, ok := Resolve(raw, Spellings(field)...)
	if !ok || v == nil {
		return nil
	}
	n, ok := asNumber(v)
	if !ok {
		return nil
	}
	return &n
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(s, 10)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case []byte:
		return parseFloat(string(n))
	case string:
		return parseFloat(n)
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// asBool interprets boolean-like column values: true/1/yes/hosteller count
// as true, their counterparts as false. Unrecognized text is not a boolean.
func asBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case int64:
		return b != 0, true
	case int:
		return b != 0, true
	case float64:
		return b != 0, true
	case []byte:
		return parseBoolText(string(b))
	case string:
		return parseBoolText(b)
	}
	return false, false
}

func parseBoolText(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "hosteller":
		return true, true
	case "false", "0", "no", "n", "day scholar", "dayscholar":
		return false, true
	}
	return false, false
}

// SplitList accepts either a real list value or a delimited string and
// returns trimmed, non-empty entries. Understood delimiters are comma,
// semicolon and pipe.
func SplitList(v any) []string {
	var parts []string
	switch list := v.(type) {
	case []string:
		parts = list
	case []any:
		for _, item := range list {
			parts = append(parts, asString(item))
		}
	case []byte:
		parts = splitDelimited(string(list))
	case string:
		parts = splitDelimited(list)
	default:
		return nil
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func splitDelimited(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
}
