package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	hourToMicro   int64 = 3_600_000_000
	minuteToMicro int64 = 60_000_000
	secondToMicro int64 = 1_000_000
)

// ClockToTime converts a normalized HH:MM:SS clock string into a pgtype
// time-of-day value. Anything malformed comes back invalid rather than
// erroring; the normalizers only ever hand over well-formed clocks.
func ClockToTime(clock string) pgtype.Time {
	pgTime := pgtype.Time{}
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return pgTime
	}
	hours, err1 := strconv.Atoi(parts[0])
	minutes, err2 := strconv.Atoi(parts[1])
	seconds, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return pgTime
	}
	pgTime.Microseconds = int64(hours)*hourToMicro +
		int64(minutes)*minuteToMicro +
		int64(seconds)*secondToMicro
	pgTime.Valid = true
	return pgTime
}

// TimeToClock is the inverse for responses read back out of the store.
func TimeToClock(pgTime pgtype.Time) string {
	if !pgTime.Valid {
		return ""
	}
	total := pgTime.Microseconds / secondToMicro
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
