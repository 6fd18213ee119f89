package helploader

import (
	"slices"
	"strings"

	"github.com/MacroPower/nimbus/pkg/help"
)

// fieldBinding ties a raw-document key to a help-object field. assign
// receives the document value, or the attribute name itself when the key
// is present but holds an empty value. The attribute-name fallback is a
// legacy behavior, kept as-is.
type fieldBinding struct {
	key    string
	attr   string
	assign func(v any)
}

// updateFromData applies each binding whose key exists in data. Missing
// keys leave the target field unchanged.
func updateFromData(data map[string]any, bindings []fieldBinding) {
	for _, b := range bindings {
		v, ok := data[b.key]
		if !ok {
			continue
		}

		if isEmptyValue(v) {
			b.assign(b.attr)

			continue
		}

		b.assign(v)
	}
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case int:
		return t == 0
	case float64:
		return t == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}

	return false
}

// paramMatches implements the name-matching rule between a raw argument
// record and a parameter: an optional flag ("--x") matches when it
// appears verbatim among the parameter's space-separated aliases, a
// positional matches on exact name equality.
func paramMatches(p *help.Parameter, record map[string]any) bool {
	name, _ := record["name"].(string)
	if name == "" {
		return false
	}

	if strings.HasPrefix(name, "--") {
		return slices.Contains(strings.Fields(p.Name), name)
	}

	return name == p.Name
}

// assignString converts a merged value into a plain string assignment.
// Non-string document values are ignored.
func assignString(dst *string) func(v any) {
	return func(v any) {
		if s, ok := v.(string); ok {
			*dst = s
		}
	}
}

// assignLinks converts a raw links sequence into [help.Link] values. The
// attribute-name fallback does not apply to structured fields; an empty
// sequence leaves the target unchanged.
func assignLinks(dst *[]help.Link) func(v any) {
	return func(v any) {
		records, ok := v.([]any)
		if !ok {
			return
		}

		links := make([]help.Link, 0, len(records))
		for _, r := range records {
			record, ok := r.(map[string]any)
			if !ok {
				continue
			}

			title, _ := record["title"].(string)
			url, _ := record["url"].(string)
			links = append(links, help.Link{Title: title, URL: url})
		}

		*dst = links
	}
}

// assignValueSources stores the raw value-sources sequence untyped.
func assignValueSources(dst *[]any) func(v any) {
	return func(v any) {
		if records, ok := v.([]any); ok {
			*dst = records
		}
	}
}
