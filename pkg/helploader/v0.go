package helploader

import (
	"github.com/spf13/cobra"

	"github.com/MacroPower/nimbus/pkg/help"
)

// V0 is the legacy loader: it has no external data source and populates
// the help file straight from the command tree, exactly as help worked
// before versioned documents existed.
type V0 struct{}

// NewV0 returns the version 0 loader.
func NewV0() *V0 {
	return &V0{}
}

func (*V0) Version() int {
	return 0
}

func (*V0) LoadRawData(*help.File, *cobra.Command) error {
	return nil
}

func (*V0) LoadBody(*help.File) {}

func (*V0) LoadParameters(*help.File) {}

func (*V0) LoadExamples(*help.File) {}

// VersionedLoad bypasses the staged orchestration entirely and delegates
// to the legacy population routine.
func (*V0) VersionedLoad(f *help.File, cmd *cobra.Command) error {
	f.LoadFromParser(cmd)

	return nil
}
