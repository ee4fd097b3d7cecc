package registry

import (
	"strings"
	"unicode"

	"arc-portal/app/models"
)

// ToRecord maps a canonical StudentRow into the fully-defaulted
// StudentRecord handed to clients. Total: absent fields land on their zero
// default and the output never has missing members.
func ToRecord(row models.StudentRow) models.StudentRecord {
	rec := models.StudentRecord{
		RegNo:         str(row.RegNo),
		RollNo:        str(row.RollNo),
		Name:          str(row.Name),
		Email:         str(row.Email),
		PersonalEmail: str(row.PersonalEmail),
		Gender:        str(row.Gender),
		DOB:           str(row.DOB),
		BloodGroup:    str(row.BloodGroup),
		PhotoURL:      str(row.PhotoURL),

		Mobile:       str(row.Mobile),
		ParentName:   str(row.ParentName),
		ParentMobile: str(row.ParentMobile),

		Address: str(row.Address),
		City:    str(row.City),
		State:   str(row.State),
		Pincode: str(row.Pincode),

		Department: str(row.Department),
		Section:    str(row.Section),
		Batch:      str(row.Batch),
		Mentor:     str(row.Mentor),
		COE:        str(row.COE),

		TenthPct:      num(row.TenthPct),
		TwelfthPct:    num(row.TwelfthPct),
		DiplomaPct:    num(row.DiplomaPct),
		Sem1GPA:       num(row.Sem1GPA),
		Sem2GPA:       num(row.Sem2GPA),
		Sem3GPA:       num(row.Sem3GPA),
		Sem4GPA:       num(row.Sem4GPA),
		Sem5GPA:       num(row.Sem5GPA),
		Sem6GPA:       num(row.Sem6GPA),
		Sem7GPA:       num(row.Sem7GPA),
		Sem8GPA:       num(row.Sem8GPA),
		CGPAOverall:   num(row.CGPAOverall),
		Backlogs:      num(row.Backlogs),
		AttendancePct: num(row.AttendancePct),

		LeetcodeUsername:   str(row.LeetcodeUsername),
		LeetcodeSolved:     num(row.LeetcodeSolved),
		LeetcodeRating:     num(row.LeetcodeRating),
		CodechefUsername:   str(row.CodechefUsername),
		CodechefRating:     num(row.CodechefRating),
		HackerrankUsername: str(row.HackerrankUsername),
		GithubUsername:     str(row.GithubUsername),

		LinkedinURL:  str(row.LinkedinURL),
		PortfolioURL: str(row.PortfolioURL),
		ResumeURL:    str(row.ResumeURL),

		TechStack:   row.TechStack,
		IsHosteller: boolVal(row.IsHosteller),
	}
	if rec.TechStack == nil {
		rec.TechStack = []string{}
	}
	rec.Initials = Initials(rec.Name)
	return rec
}

// ToRecords maps a batch of rows.
func ToRecords(rows []models.StudentRow) []models.StudentRecord {
	records := make([]models.StudentRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, ToRecord(row))
	}
	return records
}

// Initials returns the uppercased first rune of the trimmed name, or ""
// when the name is empty.
func Initials(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return ""
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func boolVal(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
