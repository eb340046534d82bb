package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders decimal hours as "Xh Ym", e.g. 2.5 -> "2h 30m".
// Minutes are rounded to the nearest whole minute.
func FormatDuration(hours float64) string {
	totalMinutes := int(math.Round(hours * 60))
	h := totalMinutes / 60
	m := totalMinutes % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatSeconds renders a second count as "Xh Ym".
func FormatSeconds(seconds int64) string {
	return FormatDuration(float64(seconds) / 3600)
}

// TimeStringToDecimalHours converts "HH:MM:SS" (or "HH:MM") into decimal
// hours, e.g. "02:30:00" -> 2.5.
func TimeStringToDecimalHours(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time string %q", s)
	}

	var hms [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time string %q", s)
		}
		hms[i] = n
	}

	if hms[1] > 59 || hms[2] > 59 {
		return 0, fmt.Errorf("invalid time string %q", s)
	}

	return float64(hms[0]) + float64(hms[1])/60 + float64(hms[2])/3600, nil
}

// GenerateTimeSlots produces the 25 boundary labels of a day in "HH:MM"
// form, from "00:00" through "00:00" again (midnight wraps). Used by the
// timesheet time pickers.
func GenerateTimeSlots() []string {
	slots := make([]string, 0, 25)
	for i := 0; i <= 24; i++ {
		slots = append(slots, fmt.Sprintf("%02d:00", i%24))
	}
	return slots
}

// DayBounds returns the [start, end) UTC instants covering the local work
// date in loc.
func DayBounds(workDate time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(workDate.Year(), workDate.Month(), workDate.Day(), 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}
