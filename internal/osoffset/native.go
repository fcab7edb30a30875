package osoffset

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// ErrNoLocalZone is returned when the runtime could not determine the host
// zone and silently fell back to UTC.
var ErrNoLocalZone = errors.New("host local zone is not configured")

// LocalZone returns the host zone abbreviation and its offset in seconds
// east of UTC at now.
func LocalZone(now time.Time) (string, int, error) {
	return localZone(now)
}

// zoneFromLocation inspects loc, which the runtime derived from $TZ or
// /etc/localtime. The runtime names it "Local" on success and "UTC" when
// it fell back.
func zoneFromLocation(loc *time.Location, now time.Time) (string, int, error) {
	tz, set := os.LookupEnv("TZ")

	if loc.String() == "UTC" && !requestsUTC(tz, set) {
		if set {
			return "", 0, fmt.Errorf("%w: TZ=%q", ErrNoLocalZone, tz)
		}

		return "", 0, ErrNoLocalZone
	}

	name, offset := now.In(loc).Zone()

	return name, offset, nil
}

// requestsUTC reports whether $TZ explicitly selects UTC.
// An empty $TZ means UTC.
func requestsUTC(tz string, set bool) bool {
	if !set {
		return false
	}

	tz = strings.TrimPrefix(tz, ":")

	return tz == "" || tz == "UTC"
}
