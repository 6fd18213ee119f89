package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version, set via ldflags at release time.
	Version = "dev"

	// Revision is the VCS revision the binary was built from.
	Revision = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			Revision = setting.Value
		}
	}
}

// GetVersionString returns the full version identifier.
func GetVersionString() string {
	return fmt.Sprintf("%s+%s", Version, Revision)
}
