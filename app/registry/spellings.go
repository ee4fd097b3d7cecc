package registry

import (
	"fmt"
	"log"

	"github.com/spf13/viper"

	"arc-portal/app/models"
)

// Canonical field identifiers. These are the only names the rest of the
// portal uses; every raw column spelling is funneled into one of these.
const (
	FieldRegNo         = "reg_no"
	FieldRollNo        = "roll_no"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPersonalEmail = "personal_email"
	FieldGender        = "gender"
	FieldDOB           = "dob"
	FieldBloodGroup    = "blood_group"
	FieldPhotoURL      = "photo_url"

	FieldMobile       = "mobile"
	FieldParentName   = "parent_name"
	FieldParentMobile = "parent_mobile"

	FieldAddress = "address"
	FieldCity    = "city"
	FieldState   = "state"
	FieldPincode = "pincode"

	FieldDepartment = "department"
	FieldSection    = "section"
	FieldBatch      = "batch"
	FieldMentor     = "mentor"
	FieldCOE        = "coe"

	FieldTenthPct      = "tenth_pct"
	FieldTwelfthPct    = "twelfth_pct"
	FieldDiplomaPct    = "diploma_pct"
	FieldSem1GPA       = "sem1_gpa"
	FieldSem2GPA       = "sem2_gpa"
	FieldSem3GPA       = "sem3_gpa"
	FieldSem4GPA       = "sem4_gpa"
	FieldSem5GPA       = "sem5_gpa"
	FieldSem6GPA       = "sem6_gpa"
	FieldSem7GPA       = "sem7_gpa"
	FieldSem8GPA       = "sem8_gpa"
	FieldCGPAOverall   = "cgpa_overall"
	FieldBacklogs      = "backlogs"
	FieldAttendancePct = "attendance_pct"

	FieldLeetcodeUsername   = "leetcode_username"
	FieldLeetcodeSolved     = "leetcode_solved"
	FieldLeetcodeRating     = "leetcode_rating"
	FieldCodechefUsername   = "codechef_username"
	FieldCodechefRating     = "codechef_rating"
	FieldHackerrankUsername = "hackerrank_username"
	FieldGithubUsername     = "github_username"

	FieldLinkedinURL  = "linkedin_url"
	FieldPortfolioURL = "portfolio_url"
	FieldResumeURL    = "resume_url"

	FieldTechStack   = "tech_stack"
	FieldIsHosteller = "is_hosteller"
	FieldHostelText  = "hostel_status_text"
)

// fieldSpellings maps each canonical field to the raw column spellings seen
// across registry deployments, in priority order. The upstream schema has
// drifted over the years without migrations, so older spellings stay on the
// list forever. Overridable at startup via LoadSpellings.
var fieldSpellings = map[string][]string{
	FieldRegNo:         {"reg_no", "regno", "registration_no", "register_number", "regd_no"},
	FieldRollNo:        {"roll_no", "rollno", "roll_number", "class_roll_no"},
	FieldName:          {"name", "student_name", "full_name", "studentname"},
	FieldEmail:         {"email", "college_email", "official_email", "email_id"},
	FieldPersonalEmail: {"personal_email", "personal_mail", "alternate_email"},
	FieldGender:        {"gender", "sex"},
	FieldDOB:           {"dob", "date_of_birth", "birth_date"},
	FieldBloodGroup:    {"blood_group", "bloodgroup", "blood_grp"},
	FieldPhotoURL:      {"photo_url", "photo", "profile_photo", "image_url"},

	FieldMobile:       {"mobile", "mobile_no", "phone", "phone_number", "contact_no"},
	FieldParentName:   {"parent_name", "father_name", "guardian_name"},
	FieldParentMobile: {"parent_mobile", "parent_phone", "father_mobile", "guardian_contact"},

	FieldAddress: {"address", "permanent_address", "addr"},
	FieldCity:    {"city", "town"},
	FieldState:   {"state"},
	FieldPincode: {"pincode", "pin_code", "postal_code", "zip"},

	FieldDepartment: {"department", "dept", "branch"},
	FieldSection:    {"section", "sec", "class_section"},
	FieldBatch:      {"batch", "year_of_admission", "admission_year", "batch_year"},
	FieldMentor:     {"mentor", "mentor_name", "faculty_advisor"},
	FieldCOE:        {"coe", "coe_name", "center_of_excellence", "centre_of_excellence"},

	FieldTenthPct:      {"tenth_pct", "10th_board_pct", "10th_board_marks", "tenth_percentage", "sslc_pct"},
	FieldTwelfthPct:    {"twelfth_pct", "12th_board_pct", "12th_board_marks", "twelfth_percentage", "hsc_pct"},
	FieldDiplomaPct:    {"diploma_pct", "diploma_percentage", "diploma_marks"},
	FieldSem1GPA:       {"sem1_gpa", "sem_1_gpa", "gpa_sem1", "semester1_gpa"},
	FieldSem2GPA:       {"sem2_gpa", "sem_2_gpa", "gpa_sem2", "semester2_gpa"},
	FieldSem3GPA:       {"sem3_gpa", "sem_3_gpa", "gpa_sem3", "semester3_gpa"},
	FieldSem4GPA:       {"sem4_gpa", "sem_4_gpa", "gpa_sem4", "semester4_gpa"},
	FieldSem5GPA:       {"sem5_gpa", "sem_5_gpa", "gpa_sem5", "semester5_gpa"},
	FieldSem6GPA:       {"sem6_gpa", "sem_6_gpa", "gpa_sem6", "semester6_gpa"},
	FieldSem7GPA:       {"sem7_gpa", "sem_7_gpa", "gpa_sem7", "semester7_gpa"},
	FieldSem8GPA:       {"sem8_gpa", "sem_8_gpa", "gpa_sem8", "semester8_gpa"},
	FieldCGPAOverall:   {"cgpa_overall", "cgpa", "overall_cgpa", "current_cgpa"},
	FieldBacklogs:      {"backlogs", "no_of_backlogs", "arrears", "standing_arrears"},
	FieldAttendancePct: {"attendance_pct", "attendance", "attendance_percentage"},

	FieldLeetcodeUsername:   {"leetcode_username", "leetcode_id", "leetcode"},
	FieldLeetcodeSolved:     {"leetcode_solved", "leetcode_problems", "leetcode_count"},
	FieldLeetcodeRating:     {"leetcode_rating", "leetcode_contest_rating"},
	FieldCodechefUsername:   {"codechef_username", "codechef_id", "codechef"},
	FieldCodechefRating:     {"codechef_rating", "codechef_stars"},
	FieldHackerrankUsername: {"hackerrank_username", "hackerrank_id", "hackerrank"},
	FieldGithubUsername:     {"github_username", "github_id", "github", "github_profile"},

	FieldLinkedinURL:  {"linkedin_url", "linkedin", "linkedin_profile"},
	FieldPortfolioURL: {"portfolio_url", "portfolio", "personal_website"},
	FieldResumeURL:    {"resume_url", "resume", "resume_link", "cv_url"},

	FieldTechStack:   {"tech_stack", "techstack", "skills", "known_technologies"},
	FieldIsHosteller: {"is_hosteller", "hosteller", "hostel"},
	FieldHostelText:  {"residency_status", "hostel_status", "accommodation", "residence_type"},
}

// Spellings returns the accepted raw spellings for a canonical field.
func Spellings(field string) []string {
	return fieldSpellings[field]
}

// LoadSpellings merges extra spellings from a YAML file into the built-in
// table, so schema drift in a deployment is a config edit rather than a code
// change. Keys are canonical field ids, values are lists of raw spellings;
// file spellings take priority over built-ins for their field. A missing
// path is not an error.
func LoadSpellings(path string) error {
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read spellings file %s: %w", path, err)
	}

	for field := range fieldSpellings {
		extra := v.GetStringSlice(field)
		if len(extra) == 0 {
			continue
		}
		merged := make([]string, 0, len(extra)+len(fieldSpellings[field]))
		merged = append(merged, extra...)
		merged = append(merged, fieldSpellings[field]...)
		fieldSpellings[field] = merged
		log.Printf("[REGISTRY] %d extra spellings loaded for %s", len(extra), field)
	}
	return nil
}

// DescribeFields lists the built-in field descriptors shown on the schema
// management screen, grouped by category.
func DescribeFields() []models.FieldDescriptor {
	return []models.FieldDescriptor{
		{ID: FieldRegNo, Label: "Registration No", Category: "Identity"},
		{ID: FieldRollNo, Label: "Roll No", Category: "Identity"},
		{ID: FieldName, Label: "Name", Category: "Identity"},
		{ID: FieldEmail, Label: "College Email", Category: "Identity"},
		{ID: FieldPersonalEmail, Label: "Personal Email", Category: "Identity"},
		{ID: FieldGender, Label: "Gender", Category: "Identity"},
		{ID: FieldDOB, Label: "Date of Birth", Category: "Identity"},
		{ID: FieldBloodGroup, Label: "Blood Group", Category: "Identity"},
		{ID: FieldPhotoURL, Label: "Photo", Category: "Identity"},
		{ID: FieldMobile, Label: "Mobile", Category: "Contact"},
		{ID: FieldParentName, Label: "Parent Name", Category: "Contact"},
		{ID: FieldParentMobile, Label: "Parent Mobile", Category: "Contact"},
		{ID: FieldAddress, Label: "Address", Category: "Address"},
		{ID: FieldCity, Label: "City", Category: "Address"},
		{ID: FieldState, Label: "State", Category: "Address"},
		{ID: FieldPincode, Label: "Pincode", Category: "Address"},
		{ID: FieldDepartment, Label: "Department", Category: "Academic"},
		{ID: FieldSection, Label: "Section", Category: "Academic"},
		{ID: FieldBatch, Label: "Batch", Category: "Academic"},
		{ID: FieldMentor, Label: "Mentor", Category: "Academic"},
		{ID: FieldCOE, Label: "Center of Excellence", Category: "Academic"},
		{ID: FieldTenthPct, Label: "10th Percentage", Category: "Academic"},
		{ID: FieldTwelfthPct, Label: "12th Percentage", Category: "Academic"},
		{ID: FieldDiplomaPct, Label: "Diploma Percentage", Category: "Academic"},
		{ID: FieldSem1GPA, Label: "Sem 1 GPA", Category: "Semester"},
		{ID: FieldSem2GPA, Label: "Sem 2 GPA", Category: "Semester"},
		{ID: FieldSem3GPA, Label: "Sem 3 GPA", Category: "Semester"},
		{ID: FieldSem4GPA, Label: "Sem 4 GPA", Category: "Semester"},
		{ID: FieldSem5GPA, Label: "Sem 5 GPA", Category: "Semester"},
		{ID: FieldSem6GPA, Label: "Sem 6 GPA", Category: "Semester"},
		{ID: FieldSem7GPA, Label: "Sem 7 GPA", Category: "Semester"},
		{ID: FieldSem8GPA, Label: "Sem 8 GPA", Category: "Semester"},
		{ID: FieldCGPAOverall, Label: "CGPA", Category: "Academic"},
		{ID: FieldBacklogs, Label: "Backlogs", Category: "Academic"},
		{ID: FieldAttendancePct, Label: "Attendance %", Category: "Academic"},
		{ID: FieldLeetcodeUsername, Label: "LeetCode Username", Category: "Coding"},
		{ID: FieldLeetcodeSolved, Label: "LeetCode Solved", Category: "Coding"},
		{ID: FieldLeetcodeRating, Label: "LeetCode Rating", Category: "Coding"},
		{ID: FieldCodechefUsername, Label: "CodeChef Username", Category: "Coding"},
		{ID: FieldCodechefRating, Label: "CodeChef Rating", Category: "Coding"},
		{ID: FieldHackerrankUsername, Label: "HackerRank Username", Category: "Coding"},
		{ID: FieldGithubUsername, Label: "GitHub Username", Category: "Coding"},
		{ID: FieldLinkedinURL, Label: "LinkedIn", Category: "Links"},
		{ID: FieldPortfolioURL, Label: "Portfolio", Category: "Links"},
		{ID: FieldResumeURL, Label: "Resume", Category: "Links"},
		{ID: FieldTechStack, Label: "Tech Stack", Category: "Skills"},
		{ID: FieldIsHosteller, Label: "Residency", Category: "Residency"},
	}
}
