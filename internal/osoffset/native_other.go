//go:build !windows

package osoffset

import "time"

func localZone(now time.Time) (string, int, error) {
	return zoneFromLocation(time.Local, now)
}
