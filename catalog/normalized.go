package catalog

import "github.com/jackc/pgx/v5/pgtype"

// DayCode values match the day_of_week enum in the database.
type DayCode string

const (
	DayMonday    DayCode = "MONDAY"
	DayTuesday   DayCode = "TUESDAY"
	DayWednesday DayCode = "WEDNESDAY"
	DayThursday  DayCode = "THURSDAY"
	DayFriday    DayCode = "FRIDAY"
	DaySaturday  DayCode = "SATURDAY"
	DaySunday    DayCode = "SUNDAY"

	// DayTBA stands in for day tokens the scraper picked up that do not
	// name a weekday, keeping day groups aligned with their time ranges.
	DayTBA DayCode = "TBA"
)

type SectionType string

const (
	SectionTypeLecture    SectionType = "LECTURE"
	SectionTypeDiscussion SectionType = "DISCUSSION"
)

// TimeRange carries 24-hour HH:MM:SS clock strings with StartTime < EndTime.
type TimeRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type InstructorName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PlaceholderInstructor is the sentinel used when a section lists no
// instructor or every scraped fragment was unusable. A section always has
// at least one instructor entry.
var PlaceholderInstructor = InstructorName{FirstName: "-", LastName: "-"}

type ResolvedInstructor struct {
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Title     pgtype.Text `json:"title"`
	Email     pgtype.Text `json:"email"`
	Phone     pgtype.Text `json:"phone"`
}

type NormalizedMeeting struct {
	Day       DayCode `json:"day"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Location  string  `json:"location"`
}

type NormalizedSection struct {
	SectionNumber string               `json:"sectionNumber"`
	ClassNumber   string               `json:"classNumber"`
	Term          string               `json:"term"`
	Type          SectionType          `json:"type"`
	IsAsync       bool                 `json:"isAsync"`
	Instructors   []ResolvedInstructor `json:"instructors"`
	Meetings      []NormalizedMeeting  `json:"meetings"`
}

type NormalizedCourse struct {
	Code        string              `json:"code"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Sections    []NormalizedSection `json:"sections"`
}

type NormalizedDepartment struct {
	Code    string             `json:"code"`
	Title   string             `json:"title"`
	Courses []NormalizedCourse `json:"courses"`
}
