package utcoffset

import (
	"fmt"
	"time"
)

// Layout is the fixed timestamp layout: always-signed offset, no fractional seconds.
const Layout = "2006-01-02T15:04:05-07:00"

// Formatter renders timestamps at a given offset.
// The zero value uses time.Now.
type Formatter struct {
	Now func() time.Time
}

// FormatNow renders the current instant at o.
func (f Formatter) FormatNow(o Offset) (string, error) {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	return Format(now(), o)
}

// FormatNow renders the current instant at o without touching any cache.
func FormatNow(o Offset) (string, error) {
	return Formatter{}.FormatNow(o)
}

// Format renders t at o using Layout.
//
// It returns ErrDatetimeOverflow when shifting t by o leaves the range of
// time.Time, and ErrTimeFormat when the year does not fit in four digits.
func Format(t time.Time, o Offset) (string, error) {
	shifted := t.UTC()

	if !o.IsUTC() {
		base := shifted
		d := o.Duration()

		shifted = base.Add(d)
		if shifted.Sub(base) != d {
			return "", ErrDatetimeOverflow
		}

		// The wall clock already reflects the shift; only the zone changes.
		shifted = time.Date(
			shifted.Year(), shifted.Month(), shifted.Day(),
			shifted.Hour(), shifted.Minute(), shifted.Second(), shifted.Nanosecond(),
			o.Location(),
		)
	}

	if y := shifted.Year(); y < 0 || y > 9999 {
		return "", fmt.Errorf("%w: year %d does not fit the layout", ErrTimeFormat, y)
	}

	return shifted.Format(Layout), nil
}
