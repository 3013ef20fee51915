package util

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration as m:ss.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	m := total / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatSpan formats a visible time span as "start - end / total".
func FormatSpan(start, end, total time.Duration) string {
	return fmt.Sprintf("%s - %s / %s", FormatDuration(start), FormatDuration(end), FormatDuration(total))
}

// FormatZoom formats a magnification factor, dropping the decimal once it
// stops being useful.
func FormatZoom(z float64) string {
	if z >= 100 {
		return fmt.Sprintf("zoom %.0fx", z)
	}
	return fmt.Sprintf("zoom %.1fx", z)
}
