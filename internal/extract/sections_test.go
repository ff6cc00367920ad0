package extract

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

func loadSectionBlock(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/cmsc131_sections.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(data)
}

func TestSectionsFullBlock(t *testing.T) {
	sections := Sections(loadSectionBlock(t))

	if len(sections) != 8 {
		t.Fatalf("expected 8 sections, got %d", len(sections))
	}

	first := sections[0]
	if first.Number != "0101" {
		t.Errorf("expected section 0101, got %q", first.Number)
	}
	if first.CourseID != "16141" {
		t.Errorf("expected course id 16141, got %q", first.CourseID)
	}
	if first.Teacher != "D. Jacobs" {
		t.Errorf("expected teacher D. Jacobs, got %q", first.Teacher)
	}
	if first.Seats != "25" || first.Open != "0" || first.Waitlist != "7" {
		t.Errorf("unexpected capacity: seats=%q open=%q waitlist=%q",
			first.Seats, first.Open, first.Waitlist)
	}
	if len(first.Meetings) != 2 {
		t.Fatalf("expected 2 meetings, got %d", len(first.Meetings))
	}
	if first.Meetings[0].Days != "MWF" || first.Meetings[0].StartTime != "10:00am" {
		t.Errorf("unexpected first meeting: %+v", first.Meetings[0])
	}

	// Source order, leading zeros preserved.
	numbers := make([]string, 0, len(sections))
	for _, s := range sections {
		numbers = append(numbers, s.Number)
	}
	want := []string{"0101", "0102", "0201", "0202", "0301", "0302", "0401", "0402"}
	if !reflect.DeepEqual(numbers, want) {
		t.Errorf("unexpected section order: %v", numbers)
	}
}

func TestSectionsWithoutFullMarker(t *testing.T) {
	block := `<dl>
0201(16143)
N. Padua-Perez (Seats=30, Open=12, Waitlist=0)
<dd>MWF.......11:00am-11:50am (CSI 2117)</dd>
</dl>`
	sections := Sections(block)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	s := sections[0]
	if s.Teacher != "N. Padua-Perez" {
		t.Errorf("expected unlinked teacher name, got %q", s.Teacher)
	}
	if s.Seats != "30" || s.Open != "12" || s.Waitlist != "0" {
		t.Errorf("unexpected capacity: %+v", s)
	}
}

func TestSectionsMalformedCapacitySkipped(t *testing.T) {
	block := `<dl>
0101(16141)
D. Jacobs (Seats=25, Open=0, Waitlist=7)
<dd>MWF.......10:00am-10:50am</dd>
</dl>
<dl>
0102(16142)
E. Golub (Seats=25, Open=full)
<dd>MWF.......11:00am-11:50am</dd>
</dl>
<dl>
0103(16149)
N. Padua-Perez
<dd>MWF.......12:00pm-12:50pm</dd>
</dl>`
	sections := Sections(block)
	if len(sections) != 1 {
		t.Fatalf("expected only the well-formed section, got %d", len(sections))
	}
	if sections[0].Number != "0101" {
		t.Errorf("expected section 0101, got %q", sections[0].Number)
	}
}

func TestSectionsZeroMeetings(t *testing.T) {
	block := `<dl>
0101(16141)
D. Jacobs (Seats=25, Open=0, Waitlist=7)
</dl>`
	sections := Sections(block)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Meetings == nil {
		t.Fatal("expected non-nil meetings")
	}
	if len(sections[0].Meetings) != 0 {
		t.Errorf("expected 0 meetings, got %d", len(sections[0].Meetings))
	}
}

func TestSectionsCountBoundedByDelimiters(t *testing.T) {
	block := loadSectionBlock(t)
	openers := strings.Count(block, "<dl>")
	if got := len(Sections(block)); got > openers {
		t.Errorf("%d sections exceeds %d opening delimiters", got, openers)
	}
}

func TestSectionsEmptyInput(t *testing.T) {
	if got := Sections(""); len(got) != 0 {
		t.Errorf("expected no sections for empty input, got %d", len(got))
	}
}
