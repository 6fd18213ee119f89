package helploader

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/MacroPower/nimbus/pkg/help"
)

// V1 reads version 1 help documents: `*help.yaml` files placed beside
// the command module, holding a `content` sequence of per-command
// entries.
type V1 struct {
	reg  *Registry
	data map[string]any
}

// NewV1 returns a version 1 loader resolving documents through reg.
func NewV1(reg *Registry) *V1 {
	return &V1{reg: reg}
}

func (*V1) Version() int {
	return 1
}

// VersionedLoad loads raw data for the command and, only when the data's
// version matches, merges body, parameters, and examples in that order.
func (l *V1) VersionedLoad(f *help.File, cmd *cobra.Command) error {
	if err := l.LoadRawData(f, cmd); err != nil {
		return err
	}

	if dataIsApplicable("V1", l.Version(), l.data) {
		l.LoadBody(f)
		l.LoadParameters(f)
		l.LoadExamples(f)
	}

	return nil
}

// LoadRawData locates the command's help document and extracts the entry
// for this exact command, stamping the document version onto it. When no
// document or entry exists the loader is left without data, making it
// inapplicable.
func (l *V1) LoadRawData(f *help.File, cmd *cobra.Command) error {
	l.data = nil

	nouns := strings.Fields(cmd.CommandPath())[1:]

	doc, err := yamlHelpForNouns(l.reg, nouns)
	if err != nil {
		return err
	}

	l.data = entryData(f.Command, doc)

	return nil
}

// LoadBody merges summary, description, and links into the help file.
// LongSummary is cleared first to mirror the legacy default, even when
// the merge leaves it empty.
func (l *V1) LoadBody(f *help.File) {
	f.LongSummary = ""
	updateFromData(l.data, []fieldBinding{
		{key: "summary", attr: "short_summary", assign: assignString(&f.ShortSummary)},
		{key: "description", attr: "long_summary", assign: assignString(&f.LongSummary)},
		{key: "links", attr: "links", assign: assignLinks(&f.Links)},
	})
}

// LoadParameters merges argument records onto the file's existing
// parameters, first match wins per record. Group help has no parameters
// to merge.
func (l *V1) LoadParameters(f *help.File) {
	if f.Type != help.TypeCommand {
		return
	}

	records, ok := l.data["arguments"].([]any)
	if !ok || len(records) == 0 {
		return
	}

	for _, p := range f.Parameters {
		record := firstMatch(p, records)
		if record == nil {
			continue
		}

		updateFromData(record, []fieldBinding{
			{key: "summary", attr: "short_summary", assign: assignString(&p.ShortSummary)},
			{key: "description", attr: "long_summary", assign: assignString(&p.LongSummary)},
			{key: "value-sources", attr: "value_sources", assign: assignValueSources(&p.ValueSources)},
		})
	}
}

// LoadExamples replaces the file's examples with the document's,
// filtered through the file's own inclusion predicate and kept in
// document order.
func (l *V1) LoadExamples(f *help.File) {
	if f.Type != help.TypeCommand {
		return
	}

	records, ok := l.data["examples"].([]any)
	if !ok || len(records) == 0 {
		return
	}

	examples := []help.Example{}
	for _, r := range records {
		record, ok := r.(map[string]any)
		if !ok {
			continue
		}

		if f.ShouldIncludeExample(record) {
			examples = append(examples, help.NewExample(record))
		}
	}

	f.Examples = examples
}

func firstMatch(p *help.Parameter, records []any) map[string]any {
	for _, r := range records {
		record, ok := r.(map[string]any)
		if !ok {
			continue
		}

		if paramMatches(p, record) {
			return record
		}
	}

	return nil
}

// entryData scans a document's content sequence for the entry naming
// cmdName and returns it with the document version attached. The content
// entries are single-key mappings whose value carries a `name` field.
func entryData(cmdName string, doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}

	content, ok := doc["content"].([]any)
	if !ok {
		return nil
	}

	for _, elem := range content {
		mapping, ok := elem.(map[string]any)
		if !ok {
			continue
		}

		for _, value := range mapping {
			entry, ok := value.(map[string]any)
			if !ok {
				continue
			}

			if name, _ := entry["name"].(string); name == cmdName {
				entry["version"] = doc["version"]

				return entry
			}
		}
	}

	return nil
}
