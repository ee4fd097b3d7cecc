package registry

import (
	"reflect"
	"testing"

	"arc-portal/app/models"
)

func TestToRecordDefaultsEverything(t *testing.T) {
	rec := ToRecord(models.StudentRow{})

	if rec.Name != "" || rec.RegNo != "" || rec.Initials != "" {
		t.Fatalf("string defaults violated: %+v", rec)
	}
	if rec.CGPAOverall != 0 || rec.TenthPct != 0 || rec.LeetcodeSolved != 0 {
		t.Fatalf("numeric defaults violated: %+v", rec)
	}
	if rec.IsHosteller {
		t.Fatal("unknown residency must default to false")
	}
	if rec.TechStack == nil || len(rec.TechStack) != 0 {
		t.Fatalf("tech stack must be an empty list, got %v", rec.TechStack)
	}
}

func TestToRecordRoundTripIdempotent(t *testing.T) {
	name := "Jane Doe"
	cgpa := 8.5
	hosteller := true
	row := models.StudentRow{
		Name:        &name,
		CGPAOverall: &cgpa,
		IsHosteller: &hosteller,
		TechStack:   []string{"Go", "React"},
	}

	once := ToRecord(row)
	twice := ToRecord(models.StudentRow{
		Name:        &once.Name,
		CGPAOverall: &once.CGPAOverall,
		IsHosteller: &once.IsHosteller,
		TechStack:   once.TechStack,
	})
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("double mapping drifted:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestInitials(t *testing.T) {
	cases := []struct{ name, want string }{
		{"Jane Doe", "J"},
		{"  arun", "A"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := Initials(tc.name); got != tc.want {
			t.Errorf("Initials(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

// End-to-end shape check: raw row straight off the wire through normalize
// and record mapping.
func TestRawRowToRecord(t *testing.T) {
	raw := map[string]any{
		"REGNO":        "24CS0001",
		"NAME":         "Jane Doe",
		"CGPA":         "8.5",
		"IS_HOSTELLER": "yes",
	}

	row := Normalize(raw)
	if row.RegNo == nil || *row.RegNo != "24CS0001" {
		t.Fatalf("reg no = %v", row.RegNo)
	}
	if row.CGPAOverall == nil || *row.CGPAOverall != 8.5 {
		t.Fatalf("cgpa = %v", row.CGPAOverall)
	}
	if row.IsHosteller == nil || !*row.IsHosteller {
		t.Fatalf("hosteller = %v", row.IsHosteller)
	}
	if row.Email != nil || row.Section != nil {
		t.Fatal("untouched fields must stay absent")
	}

	rec := ToRecord(row)
	if rec.Initials != "J" || rec.CGPAOverall != 8.5 || !rec.IsHosteller {
		t.Fatalf("record = %+v", rec)
	}
	if rec.Email != "" || rec.Section != "" || rec.Sem1GPA != 0 {
		t.Fatalf("defaults violated: %+v", rec)
	}
}
