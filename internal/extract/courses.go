package extract

import (
	"regexp"

	"github.com/soc-tools/testudo/internal/catalog"
)

// coursePattern matches one course entry on a listing page. An entry opens
// with the template's font-tag signature and closes with </font>. The
// required fields are the bolded code, the semicolon-terminated bolded
// title, the parenthesized credit count, the "Grade Method:" clause, and
// the <br> separating details from the description. Free-text fields are
// lazy so an entry never swallows its successor. An optional trailing
// <blockquote> holds the raw section block.
var coursePattern = regexp.MustCompile(`(?i)` +
	`<font\sface="arial,helvetica"\ssize=-1>\s*` +
	`<b>(?P<code>.*?)</b>\s*` +
	`(?:<i>(?P<permreq>.*?)</i>\s*)?` +
	`<b>(?P<title>.*?);</b>\s*` +
	`<b>\s*\((?P<credits>.*?)\s+credits?\)\s*</b>\s*` +
	`Grade\s*Method:\s*(?P<grade_method>.*?)\.\s*` +
	`(?P<details>.*?)\s*` +
	`<br>\s*` +
	`(?P<description>[\s\S]*?)` +
	`</font>\s*` +
	`(?:<br>\s*)?` +
	`(?:<blockquote>(?P<section_block>[\s\S]*?)</blockquote>)?`)

var (
	courseCode         = coursePattern.SubexpIndex("code")
	coursePermReq      = coursePattern.SubexpIndex("permreq")
	courseTitle        = coursePattern.SubexpIndex("title")
	courseCredits      = coursePattern.SubexpIndex("credits")
	courseGradeMethod  = coursePattern.SubexpIndex("grade_method")
	courseDetails      = coursePattern.SubexpIndex("details")
	courseDescription  = coursePattern.SubexpIndex("description")
	courseSectionBlock = coursePattern.SubexpIndex("section_block")
)

// Courses extracts every course entry from a listing page, in document
// order. Entries missing a required field are skipped. A course whose
// entry has no <blockquote> at all gets nil Sections; a present but
// unparsable block gets an empty slice.
func Courses(page string) []catalog.Course {
	courses := make([]catalog.Course, 0)

	for _, loc := range coursePattern.FindAllStringSubmatchIndex(page, -1) {
		group := func(i int) (string, bool) {
			if loc[2*i] < 0 {
				return "", false
			}
			return page[loc[2*i]:loc[2*i+1]], true
		}

		code, _ := group(courseCode)
		permReq, _ := group(coursePermReq)
		title, _ := group(courseTitle)
		credits, _ := group(courseCredits)
		gradeMethod, _ := group(courseGradeMethod)
		details, _ := group(courseDetails)
		description, _ := group(courseDescription)

		course := catalog.Course{
			Code:        catalog.CleanText(code),
			Title:       catalog.CleanText(title),
			PermReq:     catalog.CleanOptional(permReq),
			Credits:     catalog.CleanText(credits),
			GradeMethod: catalog.CleanText(gradeMethod),
			Details:     catalog.CleanOptional(details),
			Description: catalog.CleanOptional(description),
		}

		// Absent block and empty block are distinct: only a matched
		// <blockquote> produces a non-nil slice.
		if block, ok := group(courseSectionBlock); ok {
			course.Sections = Sections(block)
		}

		courses = append(courses, course)
	}

	return courses
}
