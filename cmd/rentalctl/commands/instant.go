package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/voltride/rental-core/internal/core/domain"
)

// parseInstant accepts RFC 3339, or a YYYY-MM-DD date optionally followed by
// a clock string: "2026-10-18 9:30 PM".
func parseInstant(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	date, clock, _ := strings.Cut(s, " ")
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: want RFC 3339 or YYYY-MM-DD [h:mm AM|PM]", s)
	}
	if strings.TrimSpace(clock) == "" {
		return day, nil
	}

	ct, err := domain.ParseTime(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), ct.Hour, ct.Minute, 0, 0, loc), nil
}
