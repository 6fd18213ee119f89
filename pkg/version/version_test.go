package version_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MacroPower/nimbus/pkg/version"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, version.Revision)
	require.Contains(t, version.GetVersionString(), version.Version)
}
