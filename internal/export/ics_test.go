package export

import (
	"strings"
	"testing"
	"time"
)

func TestSplitDays(t *testing.T) {
	tests := []struct {
		days     string
		expected []string
		ok       bool
	}{
		{"MWF", []string{"M", "W", "F"}, true},
		{"TuTh", []string{"Tu", "Th"}, true},
		{"MTuWThF", []string{"M", "Tu", "W", "Th", "F"}, true},
		{"F", []string{"F"}, true},
		{"TBA", nil, false},
		{"", []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.days, func(t *testing.T) {
			got, ok := SplitDays(tt.days)
			if ok != tt.ok {
				t.Fatalf("SplitDays(%q) ok = %v, expected %v", tt.days, ok, tt.ok)
			}
			if !ok {
				return
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("SplitDays(%q) = %v, expected %v", tt.days, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("SplitDays(%q)[%d] = %q, expected %q", tt.days, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCalendarEvents(t *testing.T) {
	weekStart := time.Date(2011, time.January, 26, 12, 0, 0, 0, time.UTC)
	cal := Calendar(sampleCourses(), weekStart)

	// Two parsable meetings, both on section 0101; section 0201 has none.
	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	serialized := cal.Serialize()
	if !strings.Contains(serialized, "FREQ=WEEKLY;BYDAY=MO,WE,FR") {
		t.Error("expected MWF recurrence rule in serialized calendar")
	}
	if !strings.Contains(serialized, "FREQ=WEEKLY;BYDAY=MO,WE") {
		t.Error("expected MW recurrence rule in serialized calendar")
	}
	if !strings.Contains(serialized, "CMSC131 0101") {
		t.Error("expected course and section in event summary")
	}
}

func TestCalendarSkipsUnparsableMeetings(t *testing.T) {
	courses := sampleCourses()
	courses[0].Sections[0].Meetings[0].Days = "TBA"
	courses[0].Sections[0].Meetings[1].StartTime = "25:99xx"

	cal := Calendar(courses, time.Date(2011, time.January, 24, 0, 0, 0, 0, time.UTC))
	if got := len(cal.Events()); got != 0 {
		t.Errorf("expected unparsable meetings to be skipped, got %d events", got)
	}
}

func TestWriteICS(t *testing.T) {
	var buf strings.Builder
	err := WriteICS(&buf, sampleCourses(), time.Date(2011, time.January, 24, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "BEGIN:VCALENDAR") {
		t.Errorf("unexpected calendar prefix: %q", out[:min(40, len(out))])
	}
	if !strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("expected at least one VEVENT")
	}
}
