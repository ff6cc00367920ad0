package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/soc-tools/testudo/internal/catalog"
)

// weekday is one weekday token's iCalendar BYDAY code and offset from
// Monday.
type weekday struct {
	code   string
	offset int
}

var weekdays = map[string]weekday{
	"M":  {"MO", 0},
	"Tu": {"TU", 1},
	"W":  {"WE", 2},
	"Th": {"TH", 3},
	"F":  {"FR", 4},
}

// SplitDays splits a days token like "MWF" or "TuTh" into weekday tokens.
// It reports false when the token contains anything that is not a weekday
// abbreviation.
func SplitDays(days string) ([]string, bool) {
	tokens := make([]string, 0, len(days))
	for i := 0; i < len(days); {
		if i+1 < len(days) {
			if two := days[i : i+2]; two == "Tu" || two == "Th" {
				tokens = append(tokens, two)
				i += 2
				continue
			}
		}
		one := days[i : i+1]
		if _, ok := weekdays[one]; !ok {
			return nil, false
		}
		tokens = append(tokens, one)
		i++
	}
	return tokens, true
}

// Calendar builds an iCalendar with one weekly recurring event per meeting
// time, anchored to the week containing weekStart. Meetings whose day or
// clock tokens cannot be interpreted are skipped.
func Calendar(courses []catalog.Course, weekStart time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	monday := startOfWeek(weekStart)
	for _, c := range courses {
		for _, s := range c.Sections {
			for i, m := range s.Meetings {
				days, ok := SplitDays(m.Days)
				if !ok || len(days) == 0 {
					continue
				}
				start, err := time.Parse("3:04pm", m.StartTime)
				if err != nil {
					continue
				}
				end, err := time.Parse("3:04pm", m.EndTime)
				if err != nil {
					continue
				}

				day := monday.AddDate(0, 0, weekdays[days[0]].offset)
				dtStart := time.Date(day.Year(), day.Month(), day.Day(),
					start.Hour(), start.Minute(), 0, 0, monday.Location())
				dtEnd := time.Date(day.Year(), day.Month(), day.Day(),
					end.Hour(), end.Minute(), 0, 0, monday.Location())

				codes := make([]string, 0, len(days))
				for _, d := range days {
					codes = append(codes, weekdays[d].code)
				}

				evt := cal.AddEvent(fmt.Sprintf("%s-%s-%d@testudo", c.Code, s.Number, i))
				evt.SetDtStampTime(time.Now().UTC())
				evt.SetStartAt(dtStart)
				evt.SetEndAt(dtEnd)
				evt.SetSummary(fmt.Sprintf("%s %s", c.Code, s.Number))
				if s.Teacher != "" {
					evt.SetDescription(fmt.Sprintf("%s (%s)", c.Title, s.Teacher))
				}
				evt.AddRrule("FREQ=WEEKLY;BYDAY=" + strings.Join(codes, ","))
			}
		}
	}

	return cal
}

// WriteICS serializes the meeting calendar for courses to w.
func WriteICS(w io.Writer, courses []catalog.Course, weekStart time.Time) error {
	if _, err := io.WriteString(w, Calendar(courses, weekStart).Serialize()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

// startOfWeek returns midnight on the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	t = t.AddDate(0, 0, -offset)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
