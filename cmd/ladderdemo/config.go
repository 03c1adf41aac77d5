package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"ladder"
)

// config pins the demo's starting platform, overriding host detection.
type config struct {
	Family string `toml:"family"`
	Major  int    `toml:"major"`
	Minor  int    `toml:"minor"`
}

func loadConfig(path string) (ladder.Platform, error) {
	var c config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, err
	}
	f, err := parseFamily(c.Family)
	if err != nil {
		return nil, err
	}
	return ladder.Static{F: f, V: ladder.Version{Major: c.Major, Minor: c.Minor}}, nil
}

func parseFamily(s string) (ladder.Family, error) {
	switch s {
	case "darwin":
		return ladder.FamilyDarwin, nil
	case "linux":
		return ladder.FamilyLinux, nil
	case "windows":
		return ladder.FamilyWindows, nil
	}
	return 0, fmt.Errorf("unknown platform family %q", s)
}
