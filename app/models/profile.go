package models

import "strings"

// Role values the portal recognizes. Anything else on the profile row is
// treated as no profile at all; unknown roles never grant access.
const (
	RoleStudent        = "STUDENT"
	RoleSectionAdvisor = "SECTION_ADVISOR"
	RoleHOD            = "HOD"
)

// ParseRole normalizes a free-text role column value against the closed set.
// Returns "" when the value is unrecognized.
func ParseRole(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case RoleStudent:
		return RoleStudent
	case RoleSectionAdvisor:
		return RoleSectionAdvisor
	case RoleHOD:
		return RoleHOD
	}
	return ""
}

// Profile is the access-control record for an authenticated identity.
// Profiles are written only by administrators directly in the backing store;
// this portal never mutates them.
type Profile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
	RawRole  string `json:"raw_role"`
	Section  string `json:"section,omitempty"`
}

// CanAccessSection reports whether the profile may read the given section.
// HODs see everything; advisors only their own section.
func (p *Profile) CanAccessSection(section string) bool {
	switch p.Role {
	case RoleHOD:
		return true
	case RoleSectionAdvisor:
		return strings.EqualFold(strings.TrimSpace(section), p.Section)
	}
	return false
}
