package normalize

import (
	"testing"

	"github.com/mkrenn/courseflow/catalog"
)

// nullResolver hands back the parsed name with no contact info, standing in
// for the directory matcher.
type nullResolver struct{}

func (nullResolver) Resolve(name catalog.InstructorName) catalog.ResolvedInstructor {
	return catalog.ResolvedInstructor{FirstName: name.FirstName, LastName: name.LastName}
}

func TestSectionZipsDayGroupsWithTimeRanges(t *testing.T) {
	raw := catalog.RawSection{
		Section:     "01",
		ClassNumber: "10001",
		Days:        "M|W",
		Time:        "10:00 - 11:15 am|1:00 - 2:15 pm",
		Instructor:  "Smith, John",
		Location:    "Hall 101",
	}
	section := Section(raw, "FALL2025", nullResolver{})

	if len(section.Meetings) != 2 {
		t.Fatalf("expected 2 meetings got %d", len(section.Meetings))
	}
	first := section.Meetings[0]
	if first.Day != catalog.DayMonday || first.StartTime != "10:00:00" || first.EndTime != "11:15:00" {
		t.Errorf("unexpected first meeting %+v", first)
	}
	second := section.Meetings[1]
	if second.Day != catalog.DayWednesday || second.StartTime != "13:00:00" || second.EndTime != "14:15:00" {
		t.Errorf("unexpected second meeting %+v", second)
	}
	for _, meeting := range section.Meetings {
		if meeting.Location != "Hall 101" {
			t.Errorf("meeting lost its location: %+v", meeting)
		}
	}
	if section.IsAsync {
		t.Error("section with meetings must not be async")
	}
	if section.Term != "FALL2025" {
		t.Errorf("term not carried onto section: %q", section.Term)
	}
}

func TestSectionMultipleDaysShareOneRange(t *testing.T) {
	raw := catalog.RawSection{
		Section:     "02",
		ClassNumber: "10002",
		Days:        "M W F",
		Time:        "9:05 - 9:55 am",
		Instructor:  "Smith, John",
		Location:    "Hall 2",
	}
	section := Section(raw, "FALL2025", nullResolver{})
	if len(section.Meetings) != 3 {
		t.Fatalf("expected 3 meetings got %d", len(section.Meetings))
	}
	wantDays := []catalog.DayCode{catalog.DayMonday, catalog.DayWednesday, catalog.DayFriday}
	for i, meeting := range section.Meetings {
		if meeting.Day != wantDays[i] {
			t.Errorf("meeting %d day = %s, want %s", i, meeting.Day, wantDays[i])
		}
		if meeting.StartTime != "09:05:00" || meeting.EndTime != "09:55:00" {
			t.Errorf("meeting %d carries wrong range: %+v", i, meeting)
		}
	}
}

func TestSectionTimeHoleSkipsThatPatternOnly(t *testing.T) {
	raw := catalog.RawSection{
		Section:     "03",
		ClassNumber: "10003",
		Days:        "M|W",
		Time:        "garbage|1:00 - 2:15 pm",
		Instructor:  "Smith, John",
		Location:    "Hall 3",
	}
	section := Section(raw, "FALL2025", nullResolver{})
	if len(section.Meetings) != 1 {
		t.Fatalf("expected 1 meeting got %d", len(section.Meetings))
	}
	if section.Meetings[0].Day != catalog.DayWednesday {
		t.Errorf("surviving meeting should be the wednesday one: %+v", section.Meetings[0])
	}
	if section.IsAsync {
		t.Error("a section with one surviving meeting is not async")
	}
}

func TestSectionAsyncWhenNothingParses(t *testing.T) {
	raw := catalog.RawSection{
		Section:     "04",
		ClassNumber: "10004",
		Days:        "TBA",
		Time:        "TBA",
		Instructor:  "TBA",
	}
	section := Section(raw, "FALL2025", nullResolver{})
	if len(section.Meetings) != 0 {
		t.Fatalf("expected no meetings got %d", len(section.Meetings))
	}
	if !section.IsAsync {
		t.Error("section without meetings must be async")
	}
	if len(section.Instructors) != 1 {
		t.Fatalf("expected the placeholder instructor got %d entries", len(section.Instructors))
	}
	if section.Instructors[0].FirstName != "-" || section.Instructors[0].LastName != "-" {
		t.Errorf("unexpected placeholder %+v", section.Instructors[0])
	}
}

func TestSectionType(t *testing.T) {
	tests := []struct {
		sectionNumber string
		want          catalog.SectionType
	}{
		{"01D", catalog.SectionTypeDiscussion},
		{"01d", catalog.SectionTypeDiscussion},
		{"01", catalog.SectionTypeLecture},
		{"D1", catalog.SectionTypeLecture},
		{"", catalog.SectionTypeLecture},
	}
	for _, tt := range tests {
		raw := catalog.RawSection{Section: tt.sectionNumber, Instructor: "TBA"}
		section := Section(raw, "FALL2025", nullResolver{})
		if section.Type != tt.want {
			t.Errorf("section number %q type = %s, want %s", tt.sectionNumber, section.Type, tt.want)
		}
	}
}

func TestSectionNeverHasZeroInstructors(t *testing.T) {
	for _, raw := range []string{"TBA", ",", "", "99, 42", "Smith, John"} {
		section := Section(catalog.RawSection{Instructor: raw}, "FALL2025", nullResolver{})
		if len(section.Instructors) < 1 {
			t.Errorf("instructor cell %q left the section with zero instructors", raw)
		}
	}
}
