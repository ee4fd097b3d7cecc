package models

// StudentRow is the canonical intermediate shape a raw registry row is
// normalized into. Every field is optional: pointer fields distinguish
// "column absent" from a genuine zero value, which matters because the
// backing registry's schema varies across deployments and any subset of
// columns may be missing.
type StudentRow struct {
	// Identity
	RegNo         *string `json:"reg_no,omitempty"`
	RollNo        *string `json:"roll_no,omitempty"`
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	PersonalEmail *string `json:"personal_email,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	DOB           *string `json:"dob,omitempty"`
	BloodGroup    *string `json:"blood_group,omitempty"`
	PhotoURL      *string `json:"photo_url,omitempty"`

	// Contact
	Mobile       *string `json:"mobile,omitempty"`
	ParentName   *string `json:"parent_name,omitempty"`
	ParentMobile *string `json:"parent_mobile,omitempty"`

	// Address
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Pincode *string `json:"pincode,omitempty"`

	// Grouping
	Department *string `json:"department,omitempty"`
	Section    *string `json:"section,omitempty"`
	Batch      *string `json:"batch,omitempty"`
	Mentor     *string `json:"mentor,omitempty"`
	COE        *string `json:"coe,omitempty"`

	// Academics
	TenthPct      *float64 `json:"tenth_pct,omitempty"`
	TwelfthPct    *float64 `json:"twelfth_pct,omitempty"`
	DiplomaPct    *float64 `json:"diploma_pct,omitempty"`
	Sem1GPA       *float64 `json:"sem1_gpa,omitempty"`
	Sem2GPA       *float64 `json:"sem2_gpa,omitempty"`
	Sem3GPA       *float64 `json:"sem3_gpa,omitempty"`
	Sem4GPA       *float64 `json:"sem4_gpa,omitempty"`
	Sem5GPA       *float64 `json:"sem5_gpa,omitempty"`
	Sem6GPA       *float64 `json:"sem6_gpa,omitempty"`
	Sem7GPA       *float64 `json:"sem7_gpa,omitempty"`
	Sem8GPA       *float64 `json:"sem8_gpa,omitempty"`
	CGPAOverall   *float64 `json:"cgpa_overall,omitempty"`
	Backlogs      *float64 `json:"backlogs,omitempty"`
	AttendancePct *float64 `json:"attendance_pct,omitempty"`

	// Coding platforms
	LeetcodeUsername   *string  `json:"leetcode_username,omitempty"`
	LeetcodeSolved     *float64 `json:"leetcode_solved,omitempty"`
	LeetcodeRating     *float64 `json:"leetcode_rating,omitempty"`
	CodechefUsername   *string  `json:"codechef_username,omitempty"`
	CodechefRating     *float64 `json:"codechef_rating,omitempty"`
	HackerrankUsername *string  `json:"hackerrank_username,omitempty"`
	GithubUsername     *string  `json:"github_username,omitempty"`

	// Links
	LinkedinURL  *string `json:"linkedin_url,omitempty"`
	PortfolioURL *string `json:"portfolio_url,omitempty"`
	ResumeURL    *string `json:"resume_url,omitempty"`

	// Derived / misc
	TechStack   []string `json:"tech_stack,omitempty"`
	IsHosteller *bool    `json:"is_hosteller,omitempty"`
}

// StudentRecord is the fully-defaulted shape handed to clients. Every field
// is guaranteed present: numbers default to 0, strings to "", booleans to
// false and lists to empty, no matter how sparse the source row was.
type StudentRecord struct {
	RegNo         string `json:"reg_no"`
	RollNo        string `json:"roll_no"`
	Name          string `json:"name"`
	Initials      string `json:"initials"`
	Email         string `json:"email"`
	PersonalEmail string `json:"personal_email"`
	Gender        string `json:"gender"`
	DOB           string `json:"dob"`
	BloodGroup    string `json:"blood_group"`
	PhotoURL      string `json:"photo_url"`

	Mobile       string `json:"mobile"`
	ParentName   string `json:"parent_name"`
	ParentMobile string `json:"parent_mobile"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`

	Department string `json:"department"`
	Section    string `json:"section"`
	Batch      string `json:"batch"`
	Mentor     string `json:"mentor"`
	COE        string `json:"coe"`

	TenthPct      float64 `json:"tenth_pct"`
	TwelfthPct    float64 `json:"twelfth_pct"`
	DiplomaPct    float64 `json:"diploma_pct"`
	Sem1GPA       float64 `json:"sem1_gpa"`
	Sem2GPA       float64 `json:"sem2_gpa"`
	Sem3GPA       float64 `json:"sem3_gpa"`
	Sem4GPA       float64 `json:"sem4_gpa"`
	Sem5GPA       float64 `json:"sem5_gpa"`
	Sem6GPA       float64 `json:"sem6_gpa"`
	Sem7GPA       float64 `json:"sem7_gpa"`
	Sem8GPA       float64 `json:"sem8_gpa"`
	CGPAOverall   float64 `json:"cgpa_overall"`
	Backlogs      float64 `json:"backlogs"`
	AttendancePct float64 `json:"attendance_pct"`

	LeetcodeUsername   string  `json:"leetcode_username"`
	LeetcodeSolved     float64 `json:"leetcode_solved"`
	LeetcodeRating     float64 `json:"leetcode_rating"`
	CodechefUsername   string  `json:"codechef_username"`
	CodechefRating     float64 `json:"codechef_rating"`
	HackerrankUsername string  `json:"hackerrank_username"`
	GithubUsername     string  `json:"github_username"`

	LinkedinURL  string `json:"linkedin_url"`
	PortfolioURL string `json:"portfolio_url"`
	ResumeURL    string `json:"resume_url"`

	TechStack   []string `json:"tech_stack"`
	IsHosteller bool     `json:"is_hosteller"`
}
