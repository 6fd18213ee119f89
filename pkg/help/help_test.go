package help_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/nimbus/pkg/help"
)

func TestNewExample(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		data map[string]any
		want help.Example
	}{
		"current style": {
			data: map[string]any{
				"name":    "ex1",
				"summary": "Create a resource.",
				"command": "nimbus thing create",
			},
			want: help.Example{
				Name:    "ex1",
				Summary: "Create a resource.",
				Command: "nimbus thing create",
			},
		},
		"legacy text field": {
			data: map[string]any{
				"name": "ex2",
				"text": "nimbus thing show",
			},
			want: help.Example{
				Name:    "ex2",
				Command: "nimbus thing show",
			},
		},
		"command wins over text": {
			data: map[string]any{
				"command": "nimbus a",
				"text":    "nimbus b",
			},
			want: help.Example{
				Command: "nimbus a",
			},
		},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, help.NewExample(tc.data))
		})
	}
}

func TestShouldIncludeExample(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		data    map[string]any
		profile string
		want    bool
	}{
		"no profile restriction": {
			data:    map[string]any{"name": "ex"},
			profile: "latest",
			want:    true,
		},
		"supported includes profile": {
			data:    map[string]any{"supported-profiles": "latest, 2020-09-01"},
			profile: "latest",
			want:    true,
		},
		"supported excludes profile": {
			data:    map[string]any{"supported-profiles": "2020-09-01"},
			profile: "latest",
			want:    false,
		},
		"unsupported includes profile": {
			data:    map[string]any{"unsupported-profiles": "latest"},
			profile: "latest",
			want:    false,
		},
		"unsupported excludes profile": {
			data:    map[string]any{"unsupported-profiles": "2020-09-01"},
			profile: "latest",
			want:    true,
		},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := &help.File{Profile: tc.profile}
			assert.Equal(t, tc.want, f.ShouldIncludeExample(tc.data))
		})
	}
}

func TestLoadFromParser(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "nimbus"}
	group := &cobra.Command{Use: "thing", Short: "Manage things"}
	create := &cobra.Command{Use: "create", Short: "Create a thing", Long: "Creates a new thing."}
	create.Flags().StringP("name", "n", "", "Name of the thing")
	create.Flags().String("size", "small", "Size of the thing")
	require.NoError(t, create.MarkFlagRequired("name"))

	root.AddCommand(group)
	group.AddCommand(create)

	f := &help.File{}
	f.LoadFromParser(create)

	assert.Equal(t, help.TypeCommand, f.Type)
	assert.Equal(t, "thing create", f.Command)
	assert.Equal(t, "Create a thing", f.ShortSummary)
	assert.Equal(t, "Creates a new thing.", f.LongSummary)

	require.Len(t, f.Parameters, 2)
	assert.Equal(t, "--name -n", f.Parameters[0].Name)
	assert.True(t, f.Parameters[0].Required)
	assert.Equal(t, "--size", f.Parameters[1].Name)
	assert.Equal(t, "small", f.Parameters[1].DefaultValue)
	assert.False(t, f.Parameters[1].Required)

	g := &help.File{}
	g.LoadFromParser(group)

	assert.Equal(t, help.TypeGroup, g.Type)
	assert.Equal(t, "thing", g.Command)
}

func TestCommandName(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "nimbus"}
	sub := &cobra.Command{Use: "thing"}
	leaf := &cobra.Command{Use: "show"}
	root.AddCommand(sub)
	sub.AddCommand(leaf)

	assert.Equal(t, "", help.CommandName(root))
	assert.Equal(t, "thing show", help.CommandName(leaf))
}
