package normalize

import (
	"strings"

	"github.com/mkrenn/courseflow/catalog"
)

// Resolver maps a parsed instructor name to directory contact info.
// The directory matcher satisfies this; tests can plug anything in.
type Resolver interface {
	Resolve(name catalog.InstructorName) catalog.ResolvedInstructor
}

// Section normalizes one raw section row. Day groups and time ranges are
// zipped positionally; a hole in the time ranges skips meeting construction
// for that pattern without giving up on the rest of the section.
func Section(raw catalog.RawSection, term string, resolver Resolver) catalog.NormalizedSection {
	dayGroups := DayGroups(raw.Days)
	timeRanges := TimeRanges(raw.Time)

	var meetings []catalog.NormalizedMeeting
	for i, days := range dayGroups {
		if i >= len(timeRanges) || timeRanges[i] == nil {
			continue
		}
		for _, day := range days {
			meetings = append(meetings, catalog.NormalizedMeeting{
				Day:       day,
				StartTime: timeRanges[i].StartTime,
				EndTime:   timeRanges[i].EndTime,
				Location:  raw.Location,
			})
		}
	}

	names := InstructorNames(raw.Instructor)
	instructors := make([]catalog.ResolvedInstructor, len(names))
	for i, name := range names {
		instructors[i] = resolver.Resolve(name)
	}

	return catalog.NormalizedSection{
		SectionNumber: raw.Section,
		ClassNumber:   raw.ClassNumber,
		Term:          term,
		Type:          sectionType(raw.Section),
		IsAsync:       len(meetings) == 0,
		Instructors:   instructors,
		Meetings:      meetings,
	}
}

// sectionType is total: a trailing discussion marker means DISCUSSION and
// everything else, including an empty section number, is a LECTURE.
func sectionType(sectionNumber string) catalog.SectionType {
	if strings.HasSuffix(strings.ToUpper(sectionNumber), "D") {
		return catalog.SectionTypeDiscussion
	}
	return catalog.SectionTypeLecture
}
