package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ClockTime is a wall-clock time of day in 24-hour form.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

var twelveHourClock = regexp.MustCompile(`^(\d{1,2})(?:[:.h](\d{2}))?\s*(\S+)$`)

// dayHalf maps meridiem markers, including the localized ones shown by the
// booking screens, to whether they denote the afternoon half of the day.
var dayHalf = map[string]bool{
	"am":    false,
	"a.m.":  false,
	"sa":    false,
	"sáng":  false,
	"pm":    true,
	"p.m.":  true,
	"ch":    true,
	"chiều": true,
	"tối":   true,
}

// ParseTime parses a 12-hour clock expression such as "9:30 PM", "12 a.m."
// or "7:15 CH" into 24-hour form. Unrecognized input returns
// ErrUnrecognizedTime rather than a midnight value.
func ParseTime(text string) (ClockTime, error) {
	m := twelveHourClock.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrUnrecognizedTime, text)
	}

	pm, ok := dayHalf[strings.ToLower(m[3])]
	if !ok {
		return ClockTime{}, fmt.Errorf("%w: unknown marker %q", ErrUnrecognizedTime, m[3])
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q out of range", ErrUnrecognizedTime, text)
	}

	hour %= 12
	if pm {
		hour += 12
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}
