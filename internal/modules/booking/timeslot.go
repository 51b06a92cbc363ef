package booking

import (
	"strconv"
	"strings"
	"time"
)

// ParseTimeslot interprets the free-text slot the mobile app sends, of the
// form "DD/MM/YYYY HHh" (e.g. "30/10/2025 14h"), in local time with
// minutes and seconds zeroed. It returns nil when the text is not
// understood; the booking is created anyway and keeps the raw text, so a
// typo in the slot never loses a customer.
func ParseTimeslot(s string) *time.Time {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return nil
	}

	dateParts := strings.Split(parts[0], "/")
	if len(dateParts) != 3 {
		return nil
	}

	hourStr, found := strings.CutSuffix(parts[1], "h")
	if !found || hourStr == "" {
		return nil
	}

	day, err := strconv.Atoi(dateParts[0])
	if err != nil {
		return nil
	}
	month, err := strconv.Atoi(dateParts[1])
	if err != nil {
		return nil
	}
	year, err := strconv.Atoi(dateParts[2])
	if err != nil {
		return nil
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return nil
	}

	if month < 1 || month > 12 || day < 1 || day > 31 || hour < 0 || hour > 23 {
		return nil
	}

	t := time.Date(year, time.Month(month), day, hour, 0, 0, 0, time.Local)
	return &t
}
