package helploader

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/MacroPower/nimbus/pkg/help"
)

// Loader loads versioned external help content into a [help.File].
//
// VersionedLoad is the entry point: it loads raw data for the command
// and, only when that data's version matches the loader's own, merges
// body, parameter, and example content in that fixed order. Later
// stages may rely on earlier ones having run.
type Loader interface {
	// Version is the document version this loader handles.
	Version() int

	// LoadRawData locates and parses the help document for the command
	// identified by cmd, keeping the result as internal state. A missing
	// document is not an error; a malformed or empty one is.
	LoadRawData(f *help.File, cmd *cobra.Command) error

	LoadBody(f *help.File)
	LoadParameters(f *help.File)
	LoadExamples(f *help.File)

	// VersionedLoad orchestrates the staged load.
	VersionedLoad(f *help.File, cmd *cobra.Command) error
}

// Loaders returns every loader implementation, ordered by ascending
// version so that later versions overlay the output of earlier ones.
func Loaders(reg *Registry) []Loader {
	return []Loader{
		NewV0(),
		NewV1(reg),
	}
}

// Load runs every loader against the help file. At most one versioned
// loader finds applicable data for a given document; the others leave
// the file untouched.
func Load(f *help.File, cmd *cobra.Command, loaders []Loader) error {
	for _, l := range loaders {
		if err := l.VersionedLoad(f, cmd); err != nil {
			return err
		}
	}

	return nil
}

// dataIsApplicable reports whether raw data exists and carries the
// loader's version. This is informational-only logic: mismatches and
// absent data are traced, never treated as errors.
func dataIsApplicable(name string, version int, data map[string]any) bool {
	if data == nil {
		slog.Debug("no applicable help data for loader", "loader", name)

		return false
	}

	dataVersion, ok := data["version"].(int)
	if ok && dataVersion == version {
		slog.Debug("help data version matches loader version",
			"loader", name, "version", version)

		return true
	}

	slog.Debug("help data version does not match loader version",
		"loader", name, "loader_version", version, "data_version", data["version"])

	return false
}
