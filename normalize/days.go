package normalize

import (
	"strings"
	"unicode"

	"github.com/mkrenn/courseflow/catalog"
)

// GroupDelimiter separates independent meeting patterns inside both the
// day string and the time string, e.g. "M W|F" paired with
// "10:00 - 11:15 am|1:00 - 2:15 pm".
const GroupDelimiter = "|"

var dayTokens = map[string]catalog.DayCode{
	"m":         catalog.DayMonday,
	"mon":       catalog.DayMonday,
	"monday":    catalog.DayMonday,
	"t":         catalog.DayTuesday,
	"tu":        catalog.DayTuesday,
	"tue":       catalog.DayTuesday,
	"tues":      catalog.DayTuesday,
	"tuesday":   catalog.DayTuesday,
	"w":         catalog.DayWednesday,
	"wed":       catalog.DayWednesday,
	"wednesday": catalog.DayWednesday,
	"th":        catalog.DayThursday,
	"r":         catalog.DayThursday,
	"thu":       catalog.DayThursday,
	"thur":      catalog.DayThursday,
	"thurs":     catalog.DayThursday,
	"thursday":  catalog.DayThursday,
	"f":         catalog.DayFriday,
	"fri":       catalog.DayFriday,
	"friday":    catalog.DayFriday,
	"s":         catalog.DaySaturday,
	"sa":        catalog.DaySaturday,
	"sat":       catalog.DaySaturday,
	"saturday":  catalog.DaySaturday,
	"su":        catalog.DaySunday,
	"u":         catalog.DaySunday,
	"sun":       catalog.DaySunday,
	"sunday":    catalog.DaySunday,
}

// DayGroups parses a raw day string into ordered groups of day codes. The
// group count always equals the number of `|` separated segments so groups
// zip positionally with TimeRanges output for the same section. Tokens that
// do not name a weekday become DayTBA in place instead of being dropped.
func DayGroups(raw string) [][]catalog.DayCode {
	segments := strings.Split(raw, GroupDelimiter)
	groups := make([][]catalog.DayCode, len(segments))
	for i, segment := range segments {
		tokens := strings.FieldsFunc(segment, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		days := make([]catalog.DayCode, 0, len(tokens))
		for _, token := range tokens {
			day, ok := dayTokens[strings.ToLower(token)]
			if !ok {
				day = catalog.DayTBA
			}
			days = append(days, day)
		}
		if len(days) == 0 {
			// a group is never empty, otherwise zipping would slip
			days = append(days, catalog.DayTBA)
		}
		groups[i] = days
	}
	return groups
}
