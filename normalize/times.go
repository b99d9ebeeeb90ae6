package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mkrenn/courseflow/catalog"
)

var timeRangePattern = regexp.MustCompile(
	`^\s*(\d{1,2}):(\d{2})\s*([AaPp][Mm])?\s*-\s*(\d{1,2}):(\d{2})\s*([AaPp][Mm])?\s*$`,
)

// TimeRanges parses a raw time string into ordered ranges of 24-hour
// HH:MM:SS clocks. The slice always has one entry per `|` separated
// segment; a segment that cannot be parsed yields a nil hole at that
// position so positional alignment with DayGroups survives bad rows.
func TimeRanges(raw string) []*catalog.TimeRange {
	segments := strings.Split(raw, GroupDelimiter)
	ranges := make([]*catalog.TimeRange, len(segments))
	for i, segment := range segments {
		ranges[i] = parseRange(segment)
	}
	return ranges
}

func parseRange(segment string) *catalog.TimeRange {
	match := timeRangePattern.FindStringSubmatch(segment)
	if match == nil {
		return nil
	}
	startMarker := strings.ToLower(match[3])
	endMarker := strings.ToLower(match[6])
	// a single-sided am/pm marker covers both times, e.g. "10:00 - 11:15 am"
	if startMarker == "" {
		startMarker = endMarker
	}
	if endMarker == "" {
		endMarker = startMarker
	}

	start, ok := toMinutes(match[1], match[2], startMarker)
	if !ok {
		return nil
	}
	end, ok := toMinutes(match[4], match[5], endMarker)
	if !ok {
		return nil
	}
	if start >= end {
		return nil
	}
	return &catalog.TimeRange{
		StartTime: clockString(start),
		EndTime:   clockString(end),
	}
}

// toMinutes converts one side of a range to minutes since midnight. With
// no marker anywhere only hour 0 and hours >= 13 are accepted; hours 1-12
// without am/pm are ambiguous and are never guessed at.
func toMinutes(hourStr, minuteStr, marker string) (int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, false
	}
	if minute > 59 {
		return 0, false
	}
	switch marker {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour >= 1 && hour <= 12 {
			return 0, false
		}
		if hour > 23 {
			return 0, false
		}
	}
	return hour*60 + minute, true
}

func clockString(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}
