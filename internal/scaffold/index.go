package scaffold

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed index.yaml
var indexRaw []byte

// IndexEntry describes one installable action module.
type IndexEntry struct {
	Description   string `yaml:"description"`
	Version       string `yaml:"version"`
	Module        string `yaml:"module"`
	ModuleVersion string `yaml:"module_version"`
}

// ModuleIndex is the registry of action modules the add command can
// resolve.
type ModuleIndex struct {
	Modules map[string]IndexEntry `yaml:"modules"`
}

// LoadIndex parses the embedded module index.
func LoadIndex() (*ModuleIndex, error) {
	var index ModuleIndex
	if err := yaml.Unmarshal(indexRaw, &index); err != nil {
		return nil, fmt.Errorf("parse module index: %w", err)
	}
	return &index, nil
}

// Resolve looks up a module by name.
func (i *ModuleIndex) Resolve(name string) (IndexEntry, error) {
	entry, ok := i.Modules[name]
	if !ok {
		return IndexEntry{}, fmt.Errorf("unknown module %q (try `barley add` with one of: %s)", name, i.names())
	}
	return entry, nil
}

func (i *ModuleIndex) names() string {
	names := make([]string, 0, len(i.Modules))
	for name := range i.Modules {
		names = append(names, name)
	}
	sort.Strings(names)

	out := ""
	for idx, name := range names {
		if idx > 0 {
			out += ", "
		}
		out += name
	}
	return out
}
