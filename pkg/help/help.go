package help

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// TypeCommand marks help for a runnable command.
	TypeCommand = "command"
	// TypeGroup marks help for a command group.
	TypeGroup = "group"
)

// File is the in-memory help text for a single command or group. It is
// mutated in place by help loaders and discarded after rendering.
type File struct {
	// Type is either [TypeCommand] or [TypeGroup].
	Type string
	// Command is the fully-qualified command name, without the program
	// name (e.g. "iot hub create").
	Command string
	// Profile is the CLI profile the help text is rendered for. It
	// drives example inclusion.
	Profile string

	ShortSummary string
	LongSummary  string
	Links        []Link
	Parameters   []*Parameter
	Examples     []Example
}

// Link is a reference to external documentation.
type Link struct {
	Title string
	URL   string
}

// Parameter is the help entry for a single argument. For optional flags,
// Name holds all aliases separated by spaces (e.g. "--name -n"); for
// positionals it is the bare argument name.
type Parameter struct {
	Name         string
	ShortSummary string
	LongSummary  string
	DefaultValue string
	Required     bool

	// ValueSources describes where valid values can come from. The
	// records are authored in the help document and passed through to
	// the renderer untyped.
	ValueSources []any
}

// Example is a usage example shown at the bottom of a command's help.
type Example struct {
	Name                string
	Summary             string
	Command             string
	SupportedProfiles   string
	UnsupportedProfiles string
}

// NewExample constructs an [Example] from a raw help-document record.
// Both the current ("summary"/"command") and the legacy ("name"/"text")
// field names are accepted.
func NewExample(data map[string]any) Example {
	ex := Example{
		Name:                stringField(data, "name"),
		Summary:             stringField(data, "summary"),
		Command:             stringField(data, "command"),
		SupportedProfiles:   stringField(data, "supported-profiles"),
		UnsupportedProfiles: stringField(data, "unsupported-profiles"),
	}
	if ex.Command == "" {
		ex.Command = stringField(data, "text")
	}

	return ex
}

// ShouldIncludeExample reports whether a raw example record applies to
// the file's current profile. A record listing supported profiles is
// included only when the profile is among them; a record listing
// unsupported profiles is excluded when the profile is among those.
// Records listing neither always apply.
func (f *File) ShouldIncludeExample(data map[string]any) bool {
	if supported := stringField(data, "supported-profiles"); supported != "" {
		return slices.Contains(splitProfiles(supported), f.Profile)
	}
	if unsupported := stringField(data, "unsupported-profiles"); unsupported != "" {
		return !slices.Contains(splitProfiles(unsupported), f.Profile)
	}

	return true
}

// LoadFromParser populates the file from the command tree itself. This
// is the original help source, kept as the version 0 behavior: short and
// long summaries come from the command's own descriptions and one
// parameter is recorded per defined flag.
func (f *File) LoadFromParser(cmd *cobra.Command) {
	f.Command = CommandName(cmd)
	if cmd.HasSubCommands() {
		f.Type = TypeGroup
	} else {
		f.Type = TypeCommand
	}

	f.ShortSummary = cmd.Short
	f.LongSummary = cmd.Long

	f.Parameters = nil
	addFlags := func(flag *pflag.Flag) {
		name := "--" + flag.Name
		if flag.Shorthand != "" {
			name += " -" + flag.Shorthand
		}

		_, required := flag.Annotations[cobra.BashCompOneRequiredFlag]

		f.Parameters = append(f.Parameters, &Parameter{
			Name:         name,
			ShortSummary: flag.Usage,
			DefaultValue: flag.DefValue,
			Required:     required,
		})
	}
	cmd.NonInheritedFlags().VisitAll(addFlags)
	cmd.InheritedFlags().VisitAll(addFlags)
}

// CommandName returns a command's fully-qualified name without the
// program name, e.g. "iot hub create".
func CommandName(cmd *cobra.Command) string {
	nouns := strings.Fields(cmd.CommandPath())
	if len(nouns) < 2 {
		return ""
	}

	return strings.Join(nouns[1:], " ")
}

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)

	return s
}

func splitProfiles(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
}
