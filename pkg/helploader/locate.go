package helploader

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyHelpFile indicates a help document exists but parsed to
	// nothing.
	ErrEmptyHelpFile = errors.New("help file is empty")

	// ErrParseHelpFile indicates a help document contains malformed YAML.
	ErrParseHelpFile = errors.New("parse help file")
)

// Module is a command module that may carry a help document beside it.
// FS is the document source, injected so tests can substitute in-memory
// documents; Dir is the module's directory within that filesystem.
type Module struct {
	Name string
	Dir  string
	FS   fs.FS
}

// Group is a registered command group. Module is nil for groups that
// were never registered with an owning module.
type Group struct {
	Name   string
	Module *Module
}

// Registry holds the collaborator mappings the locator resolves against:
// fully-qualified command names to their owning modules, and group names
// to group objects.
type Registry struct {
	CommandModules map[string][]*Module
	Groups         map[string]*Group
}

// NewRegistry returns an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{
		CommandModules: make(map[string][]*Module),
		Groups:         make(map[string]*Group),
	}
}

// AddCommand registers a command name with its owning module.
func (r *Registry) AddCommand(name string, mod *Module) {
	r.CommandModules[name] = append(r.CommandModules[name], mod)
}

// AddGroup registers a group name with its owning module, which may be
// nil.
func (r *Registry) AddGroup(name string, mod *Module) {
	r.Groups[name] = &Group{Name: name, Module: mod}
}

// yamlHelpForNouns resolves the module owning the command described by
// nouns and parses the help document found beside it. The module lookup
// is three-tiered: an exact command match, then the owning group object,
// then a prefix match against any registered command. A missing module
// or document yields (nil, nil); a document that exists but cannot be
// parsed is a user-facing configuration error.
func yamlHelpForNouns(reg *Registry, nouns []string) (map[string]any, error) {
	commandNouns := strings.Join(nouns, " ")

	var mod *Module
	if mods := reg.CommandModules[commandNouns]; len(mods) > 0 {
		mod = mods[0]
	}

	// Likely a group; find the module through the command group object.
	if mod == nil {
		if grp, ok := reg.Groups[commandNouns]; ok && grp != nil {
			mod = grp.Module
		}
	}

	// Some groups carry no module; fall back to any command sharing the
	// group prefix.
	if mod == nil {
		cmdNames := make([]string, 0, len(reg.CommandModules))
		for cmdName := range reg.CommandModules {
			cmdNames = append(cmdNames, cmdName)
		}
		slices.Sort(cmdNames)

		for _, cmdName := range cmdNames {
			if strings.HasPrefix(cmdName, commandNouns+" ") {
				mod = reg.CommandModules[cmdName][0]

				break
			}
		}
	}

	if mod == nil || mod.FS == nil {
		return nil, nil
	}

	entries, err := fs.ReadDir(mod.FS, mod.Dir)
	if err != nil {
		return nil, nil
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, "help.yaml") || strings.HasSuffix(name, "help.yml") {
			helpPath := path.Join(mod.Dir, name)

			text, err := fs.ReadFile(mod.FS, helpPath)
			if err != nil {
				return nil, nil
			}

			return parseHelpYAML(text, helpPath)
		}
	}

	return nil, nil
}

// parseHelpYAML parses a help document, reporting failures against the
// file's parent-relative path.
func parseHelpYAML(text []byte, helpPath string) (map[string]any, error) {
	prettyPath := path.Join(path.Base(path.Dir(helpPath)), path.Base(helpPath))

	var doc map[string]any
	if err := yaml.Unmarshal(text, &doc); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrParseHelpFile, prettyPath, err)
	}

	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyHelpFile, prettyPath)
	}

	return doc, nil
}
