//go:build windows

package osoffset

import (
	"fmt"
	"time"

	"golang.org/x/sys/windows"
)

// Return values of GetTimeZoneInformation.
const (
	timeZoneIDUnknown  = 0
	timeZoneIDStandard = 1
	timeZoneIDDaylight = 2
)

func localZone(_ time.Time) (string, int, error) {
	var tzi windows.Timezoneinformation

	rc, err := windows.GetTimeZoneInformation(&tzi)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrNoLocalZone, err)
	}

	// Bias is minutes west of UTC: UTC = local time + bias.
	bias := tzi.Bias
	name := windows.UTF16ToString(tzi.StandardName[:])

	switch rc {
	case timeZoneIDStandard:
		bias += tzi.StandardBias
	case timeZoneIDDaylight:
		bias += tzi.DaylightBias
		name = windows.UTF16ToString(tzi.DaylightName[:])
	case timeZoneIDUnknown:
	default:
		return "", 0, fmt.Errorf("%w: unexpected zone id %d", ErrNoLocalZone, rc)
	}

	return name, -int(bias) * 60, nil
}
