// Package rounding implements the 15-minute billing grid used for time
// entries. All functions normalize to UTC before rounding.
package rounding

import "time"

// Block is the billing granularity.
const Block = 15 * time.Minute

// Down truncates t to the start of its 15-minute block.
func Down(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()-t.Minute()%15, 0, 0, time.UTC)
}

// Up rounds t to the end of its 15-minute block. A time already exactly on
// a block boundary is returned unchanged.
func Up(t time.Time) time.Time {
	t = t.UTC()
	if t.Minute()%15 == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t
	}
	return Down(t).Add(Block)
}

// StopTime computes the rounded stop timestamp for an entry that started at
// start and is being stopped at now. Normally the stop time rounds down, but
// when start and now fall inside the same 15-minute block that would produce
// a zero-length entry, so the stop time rounds up instead. roundedUp reports
// which rule applied.
func StopTime(start, now time.Time) (stop time.Time, roundedUp bool) {
	if Down(start).Equal(Down(now)) {
		return Up(now), true
	}
	return Down(now), false
}

// FormatISO renders t for the Toggl wire format: RFC 3339 with second
// precision in UTC.
func FormatISO(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}
