package timeconv

import "strings"

// Period markers for the 12-hour clock.
const (
	PeriodAM = "AM"
	PeriodPM = "PM"
)

// To24Hour converts a 12-hour clock value (1-12 plus AM/PM) to the
// 24-hour form used for scheduling. The period is case-insensitive.
func To24Hour(hour12 int, period string) int {
	if strings.EqualFold(period, PeriodAM) {
		if hour12 == 12 {
			return 0
		}
		return hour12
	}
	if hour12 == 12 {
		return 12
	}
	return hour12 + 12
}

// To12Hour converts a 24-hour clock value (0-23) to the 12-hour form
// shown to users, returning the hour and its AM/PM period.
func To12Hour(hour24 int) (int, string) {
	switch {
	case hour24 == 0:
		return 12, PeriodAM
	case hour24 < 12:
		return hour24, PeriodAM
	case hour24 == 12:
		return 12, PeriodPM
	default:
		return hour24 - 12, PeriodPM
	}
}
