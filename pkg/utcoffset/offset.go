// Package utcoffset resolves, caches and renders the local UTC offset.
//
// The offset is resolved lazily through a fallback chain:
//
//	cache -> host local zone -> platform command -> UTC
//
// and cached in a process-wide slot so later calls skip the chain entirely.
// Timestamps are rendered as
//
//	2006-01-02T15:04:05-07:00
//
// with an always-signed offset and no fractional seconds.
//
// Environmental failures never fail resolution. They are returned as soft
// errors alongside a usable offset. Only caller mistakes (malformed offset
// strings, out-of-range hour/minute pairs) and impossible timestamps are
// returned as hard errors.
package utcoffset

import (
	"fmt"
	"strings"
	"time"
)

// Valid component ranges for an Offset.
const (
	MinHours   = -12
	MaxHours   = 14
	MinMinutes = 0
	MaxMinutes = 59
)

const (
	minTotalMinutes = MinHours*60 - MaxMinutes
	maxTotalMinutes = MaxHours*60 + MaxMinutes
)

// UTC is the zero offset.
//
//nolint:gochecknoglobals // immutable zero value
var UTC = Offset{}

// Offset is a signed displacement from UTC with minute resolution.
// The zero value is UTC. Values can only be built through FromPair, Parse
// and FromSeconds, so hours always lie in [-12,14] and minutes in [0,59].
type Offset struct {
	minutes int
}

// FromPair builds an Offset from whole hours and minutes.
// The sign of hours applies to minutes, so (-3, 30) is -03:30.
func FromPair(hours, minutes int) (Offset, error) {
	if hours < MinHours || hours > MaxHours {
		return UTC, &InvalidOffsetHoursError{Hours: hours}
	}

	if minutes < MinMinutes || minutes > MaxMinutes {
		return UTC, &InvalidOffsetMinutesError{Minutes: minutes}
	}

	if hours < 0 {
		return Offset{minutes: hours*60 - minutes}, nil
	}

	return Offset{minutes: hours*60 + minutes}, nil
}

// FromSeconds builds an Offset from a zone offset in seconds east of UTC,
// as returned by time.Time.Zone. Sub-minute remainders are truncated.
func FromSeconds(seconds int) (Offset, error) {
	total := seconds / 60
	if total < minTotalMinutes || total > maxTotalMinutes {
		return UTC, fmt.Errorf("%w: %d seconds", ErrOffsetOutOfRange, seconds)
	}

	return Offset{minutes: total}, nil
}

// Parse parses an offset of the form [+|-]HH[:]MM.
// Surrounding whitespace, including trailing "\n" or "\r\n", is ignored.
//
// Examples: "+0900", "-0930", "1000", "+09:00", "-09:30", "10:00".
func Parse(input string) (Offset, error) {
	s := strings.TrimSpace(input)

	negative := false

	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	if len(s) == 5 && s[2] == ':' {
		s = s[:2] + s[3:]
	}

	if len(s) != 4 || !allDigits(s) {
		return UTC, ErrInvalidOffsetString
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[2]-'0')*10 + int(s[3]-'0')

	if minutes > MaxMinutes {
		return UTC, ErrInvalidOffsetString
	}

	total := hours*60 + minutes
	if negative {
		total = -total
	}

	if total < minTotalMinutes || total > maxTotalMinutes {
		return UTC, ErrInvalidOffsetString
	}

	return Offset{minutes: total}, nil
}

func allDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Hours returns the whole hours of the offset, truncated toward zero.
func (o Offset) Hours() int {
	return o.minutes / 60
}

// Minutes returns the minutes past the whole hour, always in [0,59].
func (o Offset) Minutes() int {
	if o.minutes < 0 {
		return -o.minutes % 60
	}

	return o.minutes % 60
}

// WholeMinutes returns the signed total offset in minutes.
func (o Offset) WholeMinutes() int {
	return o.minutes
}

// Duration returns the offset as a time.Duration.
func (o Offset) Duration() time.Duration {
	return time.Duration(o.minutes) * time.Minute
}

// IsUTC reports whether the offset is zero.
func (o Offset) IsUTC() bool {
	return o.minutes == 0
}

// IsNegative reports whether the offset lies west of UTC.
func (o Offset) IsNegative() bool {
	return o.minutes < 0
}

// Location returns a fixed zone carrying the offset.
func (o Offset) Location() *time.Location {
	return time.FixedZone("", o.minutes*60)
}

// String renders the offset as ±HH:MM.
func (o Offset) String() string {
	sign := '+'
	if o.minutes < 0 {
		sign = '-'
	}

	abs := o.minutes
	if abs < 0 {
		abs = -abs
	}

	return fmt.Sprintf("%c%02d:%02d", sign, abs/60, abs%60)
}
