package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// offsetRegex matches relative day offsets like "+3d", "-1w", "2d".
var offsetRegex = regexp.MustCompile(`^([+-]?)(\d+)([dw])$`)

// ParseMoment resolves a --date value against now. Accepts:
//   - "" or "today": now
//   - "tomorrow", "yesterday"
//   - offsets: "+3d", "-2w" (days or weeks from now)
//   - dates: "2026-01-17", keeping now's time of day
//   - RFC 3339 timestamps, converted to now's location
func ParseMoment(value string, now time.Time) (time.Time, error) {
	switch value {
	case "", "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	if matches := offsetRegex.FindStringSubmatch(value); len(matches) == 4 {
		return applyOffset(now, matches[1], matches[2], matches[3])
	}

	if d, err := time.ParseInLocation("2006-01-02", value, now.Location()); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(),
			now.Hour(), now.Minute(), now.Second(), 0, now.Location()), nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(now.Location()), nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q; use today, +3d, 2026-01-17 or an RFC 3339 timestamp", value)
}

// applyOffset shifts now by a signed count of days or weeks.
func applyOffset(now time.Time, sign, numStr, unit string) (time.Time, error) {
	num, err := strconv.Atoi(numStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid offset number: %s", numStr)
	}
	if sign == "-" {
		num = -num
	}
	if unit == "w" {
		num *= 7
	}
	return now.AddDate(0, 0, num), nil
}
