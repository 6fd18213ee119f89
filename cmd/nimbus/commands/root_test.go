package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/nimbus/cmd/nimbus/commands"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := commands.NewRootCmd("nimbus", "The Nimbus CLI.", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "version")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "+")
}

func TestCommandHelpUsesHelpDocument(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "iot", "hub", "create", "--help")
	require.NoError(t, err)
	assert.Empty(t, stderr, "stderr should be empty")

	// Body and argument summaries come from the YAML help document, not
	// the command definitions.
	assert.Contains(t, stdout, "Create an IoT hub.")
	assert.Contains(t, stdout, "--name -n")
	assert.Contains(t, stdout, "[Required]")
	assert.Contains(t, stdout, "Name for the new hub.")
	assert.Contains(t, stdout, "Must be unique within the target region.")

	// The typed-hub example is profile gated and the default profile is
	// in its supported list.
	assert.Contains(t, stdout, "Create a typed hub.")
	assert.Contains(t, stdout, "nimbus iot hub create --name my-hub --type gateway")
}

func TestGroupHelpUsesHelpDocument(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "iot", "--help")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Contains(t, stdout, "Group")
	assert.Contains(t, stdout, "Manage cloud IoT resources.")
}

func TestRootHelpFallsBackToCommandTree(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	// No help document covers the root; the legacy loader populates it
	// from the command definitions.
	assert.Contains(t, stdout, "The Nimbus CLI.")
}
