package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// FormatError reports a time token that does not match the schedule's
// 12-hour shorthand ("h:mma" / "h:mmp").
type FormatError struct {
	Token string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed time token %q, want h:mm followed by a or p", e.Token)
}

var militaryRegexp = regexp.MustCompile(`^(\d{1,2}):(\d{2})([ap])$`)

// ToMilitary converts a 12-hour token like "6:30p" to "18:30:00".
// "12:00a" is midnight and "12:00p" is noon; all other p-hours gain 12.
func ToMilitary(token string) (string, error) {
	m := militaryRegexp.FindStringSubmatch(token)
	if m == nil {
		return "", &FormatError{Token: token}
	}

	hour, _ := strconv.Atoi(m[1])
	minute := m[2]
	meridiem := m[3]

	switch {
	case meridiem == "a" && hour == 12:
		hour = 0
	case meridiem == "p" && hour != 12:
		hour += 12
	}

	return fmt.Sprintf("%02d:%s:00", hour, minute), nil
}

var dayOffsets = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// DateForDay resolves a day-of-week name to its calendar date within the
// week starting at weekStart (a Monday).
func DateForDay(weekStart time.Time, dayName string) (string, error) {
	offset, ok := dayOffsets[dayName]
	if !ok {
		return "", fmt.Errorf("unknown day name %q", dayName)
	}
	return weekStart.AddDate(0, 0, offset).Format("2006-01-02"), nil
}
