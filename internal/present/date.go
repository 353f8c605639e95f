// Package present holds helpers shared by the per-module response
// presenters.
package present

import (
	"fmt"
	"time"
)

// FormatDate encodes a timestamp the way clients expect it:
// "April 4th 2023, 2:31:09 pm". Lossy to second precision, fixed
// English locale.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %s %d, %s",
		t.Month().String(), ordinal(t.Day()), t.Year(), t.Format("3:04:05 pm"))
}

func ordinal(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
