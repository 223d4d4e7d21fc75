package director

import (
	"github.com/ivlev/scenegen/internal/system"
)

// TracksDir is where md5camera looks for scripts and writes tracks by default
const TracksDir = "tracks"

// GenerateTrackPath creates a timestamped track filename
func GenerateTrackPath() string {
	return system.GenerateOutputPath(TracksDir, "track", ".txt")
}

// FindLatestScript finds the most recent script file in the tracks directory
func FindLatestScript() (string, error) {
	return system.FindLatest(TracksDir, ".yaml", ".yml", ".toml")
}
