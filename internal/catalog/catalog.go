package catalog

// Department is one entry on the department index page.
type Department struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// Course is one course entry on a department listing page.
//
// Sections is nil when the page had no section block for the course, and a
// non-nil empty slice when the block existed but contained no parsable
// sections. Exports must preserve that distinction.
type Course struct {
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	PermReq     *string   `json:"permreq"`
	Credits     string    `json:"credits"`
	GradeMethod string    `json:"grade_method"`
	Details     *string   `json:"details"`
	Description *string   `json:"description"`
	Sections    []Section `json:"sections"`
}

// Section is one scheduled offering of a course. Number is the 4-digit
// section code and CourseID the 5-digit registration id; both keep leading
// zeros, so they stay strings. Seat counts likewise stay in their source
// text form.
type Section struct {
	Number   string    `json:"section"`
	CourseID string    `json:"course_id"`
	Teacher  string    `json:"teacher"`
	Seats    string    `json:"seats"`
	Open     string    `json:"open"`
	Waitlist string    `json:"waitlist"`
	Meetings []Meeting `json:"class_times"`
}

// Meeting is one recurring weekly time span at which a section convenes.
// Times keep the feed's textual form ("10:00am"); the feed itself is
// inconsistent about spacing, so parsing to a numeric time is left to
// consumers that need it.
type Meeting struct {
	Days      string `json:"days"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
