package extract

import (
	"regexp"

	"github.com/soc-tools/testudo/internal/catalog"
)

// meetingPattern matches one <dd> meeting line: a run of weekday
// abbreviation characters, dot/space filler, then the start and end clock
// tokens separated by a hyphen. The feed pads some times with a leading
// space ("MW........ 1:00pm- 1:50pm"), which the filler and the \s* after
// the hyphen absorb. Trailing building/room annotations and type markers
// like "Dis" are discarded.
var meetingPattern = regexp.MustCompile(`(?i)` +
	`<dd>` +
	`(?P<days>[MWFTuh]+)` +
	`[.\s]*` +
	`(?P<start_time>\d{1,2}:\d{2}[apm]{2})-\s*` +
	`(?P<end_time>\d{1,2}:\d{2}[apm]{2})` +
	`.*?</dd>`)

var (
	meetingDays  = meetingPattern.SubexpIndex("days")
	meetingStart = meetingPattern.SubexpIndex("start_time")
	meetingEnd   = meetingPattern.SubexpIndex("end_time")
)

// Meetings extracts every meeting line from a section's raw meeting-time
// text, in source order. Lines with malformed time tokens are skipped.
func Meetings(block string) []catalog.Meeting {
	meetings := make([]catalog.Meeting, 0)

	for _, m := range meetingPattern.FindAllStringSubmatch(block, -1) {
		meetings = append(meetings, catalog.Meeting{
			Days:      m[meetingDays],
			StartTime: m[meetingStart],
			EndTime:   m[meetingEnd],
		})
	}

	return meetings
}
