package client

import "time"

// FormatDate renders a "YYYY-MM-DD" booking date for display, e.g.
// "Monday, January 2, 2006". Unparseable input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// FormatTime renders an "HH:MM" slot for display, e.g. "9:00 AM".
func FormatTime(slot string) string {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return slot
	}
	return t.Format("3:04 PM")
}
