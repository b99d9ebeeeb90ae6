package normalize

import (
	"regexp"
	"strings"

	"github.com/mkrenn/courseflow/catalog"
)

// noInstructorSentinel is what the schedule pages show when staffing is
// not settled yet.
const noInstructorSentinel = "TBA"

const nameDelimiter = ","

var numericOnly = regexp.MustCompile(`^[0-9]+$`)

// InstructorNames parses a raw instructor cell into structured name pairs.
// Multiple instructors are `|` separated; each fragment is "Last, First".
// Fragments with an empty or purely numeric half are scraping artifacts and
// are discarded. When nothing usable remains the placeholder instructor is
// returned so a section never ends up with zero instructors.
func InstructorNames(raw string) []catalog.InstructorName {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, noInstructorSentinel) {
		return []catalog.InstructorName{catalog.PlaceholderInstructor}
	}

	var names []catalog.InstructorName
	for _, fragment := range strings.Split(trimmed, GroupDelimiter) {
		idx := strings.LastIndex(fragment, nameDelimiter)
		if idx < 0 {
			continue
		}
		last := strings.TrimSpace(fragment[:idx])
		first := strings.TrimSpace(fragment[idx+1:])
		if last == "" || first == "" {
			continue
		}
		if numericOnly.MatchString(last) || numericOnly.MatchString(first) {
			continue
		}
		names = append(names, catalog.InstructorName{FirstName: first, LastName: last})
	}

	if len(names) == 0 {
		return []catalog.InstructorName{catalog.PlaceholderInstructor}
	}
	return names
}
