package config

// Optional config-file overrides. Thresholds are baked-in defaults, but a
// user can tune them per mode without recompiling via
// $XDG_CONFIG_HOME/mediasweep/config.json. CLI flags still win over the file.

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"

	"github.com/backmassage/mediasweep/internal/sizes"
)

// fileOverrides mirrors the JSON shape of the optional config file:
//
//	{
//	  "tv":     {"threshold-mb": 100, "extensions": [".mkv", ".mp4"]},
//	  "movies": {"threshold-mb": 100},
//	  "music":  {"threshold-kb": 500}
//	}
type fileOverrides struct {
	TV     *profileOverride `json:"tv"`
	Movies *profileOverride `json:"movies"`
	Music  *profileOverride `json:"music"`
}

type profileOverride struct {
	ThresholdMB int64    `json:"threshold-mb"`
	ThresholdKB int64    `json:"threshold-kb"`
	Extensions  []string `json:"extensions"`
}

const overridesRelPath = "mediasweep/config.json"

// LoadOverrides applies the user's config file to cfg, if one exists. A
// missing file is not an error; a malformed one is.
func LoadOverrides(cfg *Config) error {
	path, err := xdg.SearchConfigFile(overridesRelPath)
	if err != nil {
		return nil // no config file, defaults stand
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	return applyOverrides(cfg, data)
}

func applyOverrides(cfg *Config, data []byte) error {
	var ov fileOverrides
	if err := json.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	applyProfileOverride(cfg, ModeTV, ov.TV)
	applyProfileOverride(cfg, ModeMovies, ov.Movies)
	applyProfileOverride(cfg, ModeMusic, ov.Music)
	return nil
}

func applyProfileOverride(cfg *Config, mode Mode, ov *profileOverride) {
	if ov == nil {
		return
	}
	p := cfg.Profiles[mode]
	if ov.ThresholdMB > 0 {
		p.Threshold = sizes.Bytes(ov.ThresholdMB * 1024 * 1024)
		p.Unit = sizes.UnitMegabytes
	}
	if ov.ThresholdKB > 0 {
		p.Threshold = sizes.Bytes(ov.ThresholdKB * 1024)
		p.Unit = sizes.UnitKilobytes
	}
	if len(ov.Extensions) > 0 {
		p.Extensions = ov.Extensions
	}
	cfg.Profiles[mode] = p
}
