package store

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	eventsFile = "events.json"
	assetsFile = "assets.json"
)

// ResolveDataDir determines where almanac keeps its documents. ALMANAC_HOME
// wins, then XDG_DATA_HOME/almanac, then ~/.local/share/almanac.
func ResolveDataDir() (string, error) {
	if override, ok := os.LookupEnv("ALMANAC_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return expandHome(override)
		}
	}

	if xdg := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); xdg != "" {
		return filepath.Join(xdg, "almanac"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "almanac"), nil
}

func expandHome(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return filepath.Abs(input)
}
