package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/soc-tools/testudo/internal/catalog"
)

// CourseRow is one flattened course record.
type CourseRow struct {
	Code        string `csv:"code"`
	Title       string `csv:"title"`
	PermReq     string `csv:"permreq"`
	Credits     string `csv:"credits"`
	GradeMethod string `csv:"grade_method"`
	Details     string `csv:"details"`
	Description string `csv:"description"`
}

// SectionRow is one flattened section record, tagged with its course code.
type SectionRow struct {
	CourseCode string `csv:"course_code"`
	Section    string `csv:"section"`
	CourseID   string `csv:"course_id"`
	Teacher    string `csv:"teacher"`
	Seats      string `csv:"seats"`
	Open       string `csv:"open"`
	Waitlist   string `csv:"waitlist"`
}

// MeetingRow is one flattened meeting record, tagged with its course code
// and section number.
type MeetingRow struct {
	CourseCode string `csv:"course_code"`
	Section    string `csv:"section"`
	Days       string `csv:"days"`
	StartTime  string `csv:"start_time"`
	EndTime    string `csv:"end_time"`
}

// FlattenCourses converts courses to CSV rows, dropping nesting.
func FlattenCourses(courses []catalog.Course) []*CourseRow {
	rows := make([]*CourseRow, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, &CourseRow{
			Code:        c.Code,
			Title:       c.Title,
			PermReq:     orEmpty(c.PermReq),
			Credits:     c.Credits,
			GradeMethod: c.GradeMethod,
			Details:     orEmpty(c.Details),
			Description: orEmpty(c.Description),
		})
	}
	return rows
}

// FlattenSections converts every course's sections to CSV rows.
func FlattenSections(courses []catalog.Course) []*SectionRow {
	rows := make([]*SectionRow, 0)
	for _, c := range courses {
		for _, s := range c.Sections {
			rows = append(rows, &SectionRow{
				CourseCode: c.Code,
				Section:    s.Number,
				CourseID:   s.CourseID,
				Teacher:    s.Teacher,
				Seats:      s.Seats,
				Open:       s.Open,
				Waitlist:   s.Waitlist,
			})
		}
	}
	return rows
}

// FlattenMeetings converts every section's meetings to CSV rows.
func FlattenMeetings(courses []catalog.Course) []*MeetingRow {
	rows := make([]*MeetingRow, 0)
	for _, c := range courses {
		for _, s := range c.Sections {
			for _, m := range s.Meetings {
				rows = append(rows, &MeetingRow{
					CourseCode: c.Code,
					Section:    s.Number,
					Days:       m.Days,
					StartTime:  m.StartTime,
					EndTime:    m.EndTime,
				})
			}
		}
	}
	return rows
}

// WriteCSVDir writes courses.csv, sections.csv, and class_times.csv into
// dir, creating it if needed.
func WriteCSVDir(dir string, courses []catalog.Course) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating csv directory: %w", err)
	}

	courseRows := FlattenCourses(courses)
	if err := writeCSVFile(filepath.Join(dir, "courses.csv"), &courseRows); err != nil {
		return err
	}

	sectionRows := FlattenSections(courses)
	if err := writeCSVFile(filepath.Join(dir, "sections.csv"), &sectionRows); err != nil {
		return err
	}

	meetingRows := FlattenMeetings(courses)
	return writeCSVFile(filepath.Join(dir, "class_times.csv"), &meetingRows)
}

func writeCSVFile(path string, rows interface{}) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(rows, out); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
