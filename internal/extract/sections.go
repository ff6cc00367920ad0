package extract

import (
	"regexp"

	"github.com/soc-tools/testudo/internal/catalog"
)

// sectionPattern matches one <dl> section entry inside a course's section
// block: a 4-digit section number, the 5-digit registration id in
// parentheses, the instructor name (optionally wrapped in a hyperlink),
// and the capacity clause. A leading FULL: marker inside the capacity
// parentheses is recognized but not retained. Everything between the
// capacity clause and </dl> is the raw meeting-time text.
var sectionPattern = regexp.MustCompile(`(?i)` +
	`<dl>\s*` +
	`(?P<section>\d{4})\((?P<course_id>\d{5})\)\s*` +
	`(?:<a\s.*?>\s*)?` +
	`(?P<teacher>[\s\S]+?)\s*` +
	`(?:</a>\s*)?` +
	`\((?:FULL:\s*)?Seats=(?P<seats>\d+),\sOpen=(?P<open>\d+),\sWaitlist=(?P<waitlist>\d+)\)` +
	`(?P<times>[\s\S]*?)` +
	`</dl>`)

var (
	sectionNumber   = sectionPattern.SubexpIndex("section")
	sectionCourseID = sectionPattern.SubexpIndex("course_id")
	sectionTeacher  = sectionPattern.SubexpIndex("teacher")
	sectionSeats    = sectionPattern.SubexpIndex("seats")
	sectionOpen     = sectionPattern.SubexpIndex("open")
	sectionWaitlist = sectionPattern.SubexpIndex("waitlist")
	sectionTimes    = sectionPattern.SubexpIndex("times")
)

// Sections extracts every section entry from a course's raw section block,
// in source order. A section whose capacity clause is malformed or missing
// is skipped. Meetings is always non-nil; it is empty when the entry has
// no parsable meeting lines.
func Sections(block string) []catalog.Section {
	sections := make([]catalog.Section, 0)

	for _, m := range sectionPattern.FindAllStringSubmatch(block, -1) {
		sections = append(sections, catalog.Section{
			Number:   catalog.CleanText(m[sectionNumber]),
			CourseID: catalog.CleanText(m[sectionCourseID]),
			Teacher:  catalog.CleanText(m[sectionTeacher]),
			Seats:    catalog.CleanText(m[sectionSeats]),
			Open:     catalog.CleanText(m[sectionOpen]),
			Waitlist: catalog.CleanText(m[sectionWaitlist]),
			Meetings: Meetings(m[sectionTimes]),
		})
	}

	return sections
}
