package models

import "testing"

func TestParseRoleClosedSet(t *testing.T) {
	cases := []struct{ raw, want string }{
		{"HOD", RoleHOD},
		{"hod", RoleHOD},
		{" Hod ", RoleHOD},
		{"section_advisor", RoleSectionAdvisor},
		{"STUDENT", RoleStudent},
		{"TEACHER", ""},
		{"admin", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ParseRole(tc.raw); got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestCanAccessSection(t *testing.T) {
	hod := &Profile{Role: RoleHOD, Section: "Q"}
	advisor := &Profile{Role: RoleSectionAdvisor, Section: "Q"}
	student := &Profile{Role: RoleStudent, Section: "Q"}

	if !hod.CanAccessSection("Z") {
		t.Error("HOD must access any section")
	}
	if !advisor.CanAccessSection(" q ") {
		t.Error("advisor must access own section case-insensitively")
	}
	if advisor.CanAccessSection("R") {
		t.Error("advisor must not access other sections")
	}
	if student.CanAccessSection("Q") {
		t.Error("student role must not access any section")
	}
}
