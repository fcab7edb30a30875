// Package config loads utcoffset settings from an ini file.
//
// The file holds a [default] section and any number of [profile NAME]
// sections:
//
//	[default]
//	timeout = 2s
//
//	[profile tokyo]
//	offset  = +09:00
//	command = date +%z
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/ini.v1"

	"github.com/mpyw/utcoffset/internal/osoffset"
	"github.com/mpyw/utcoffset/pkg/utcoffset"
)

// EnvConfigFile overrides the config file location.
const EnvConfigFile = "UTCOFFSET_CONFIG_FILE"

// DefaultProfile is the section used when no profile is selected.
const DefaultProfile = "default"

// ErrProfileNotFound is returned when the selected profile has no section.
var ErrProfileNotFound = errors.New("profile not found")

// Profile is one resolved config section.
type Profile struct {
	Name string
	// Offset is the explicit offset, or nil to resolve it from the host.
	Offset *utcoffset.Offset
	// Timeout bounds environment lookups. Zero means no limit.
	Timeout time.Duration
	// Command replaces the platform offset command when Name is set.
	Command osoffset.Command
}

// DefaultPath returns $UTCOFFSET_CONFIG_FILE, or utcoffset/config under the
// user config directory.
func DefaultPath() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "utcoffset", "config")
}

// Load reads profile from the file at path. A missing file yields an empty
// profile. An empty profile name selects [default].
func Load(path, profile string) (*Profile, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	p := &Profile{Name: profile}

	if path == "" {
		return p, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if profile != DefaultProfile {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, profile)
		}

		return p, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	section, err := cfg.GetSection(sectionName(profile))
	if err != nil {
		if profile != DefaultProfile {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, profile)
		}

		return p, nil
	}

	if section.HasKey("offset") {
		o, err := utcoffset.Parse(section.Key("offset").String())
		if err != nil {
			return nil, fmt.Errorf("profile %s: offset: %w", profile, err)
		}

		p.Offset = &o
	}

	if section.HasKey("timeout") {
		timeout, err := section.Key("timeout").Duration()
		if err != nil {
			return nil, fmt.Errorf("profile %s: timeout: %w", profile, err)
		}

		p.Timeout = timeout
	}

	if fields := strings.Fields(section.Key("command").String()); len(fields) > 0 {
		p.Command = osoffset.Command{Name: fields[0], Args: fields[1:]}
	}

	return p, nil
}

func sectionName(profile string) string {
	if profile == DefaultProfile {
		return DefaultProfile
	}

	return "profile " + profile
}
