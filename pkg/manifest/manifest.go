package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry records one converted source file.
type Entry struct {
	Source   string `yaml:"source" json:"source"`
	Output   string `yaml:"output" json:"output"`
	JSX      bool   `yaml:"jsx,omitempty" json:"jsx,omitempty"`
	Bytes    int    `yaml:"bytes" json:"bytes"`
	Warnings int    `yaml:"warnings,omitempty" json:"warnings,omitempty"`
	Deleted  bool   `yaml:"deleted,omitempty" json:"deleted,omitempty"`
}

// Manifest tracks which source files were converted and where their output
// was written.
type Manifest struct {
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
// Entries are written sorted by source path.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	slices.SortFunc(m.Entries, func(a, b Entry) int {
		return strings.Compare(a.Source, b.Source)
	})
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// Add records a conversion, replacing an existing entry for the same source.
func (m *Manifest) Add(e Entry) {
	e.Source = filepath.Clean(e.Source)
	for i := range m.Entries {
		if m.Entries[i].Source == e.Source {
			m.Entries[i] = e
			return
		}
	}

	m.Entries = append(m.Entries, e)
}

// Output returns the output path recorded for source, if present.
func (m *Manifest) Output(source string) string {
	source = filepath.Clean(source)
	for _, e := range m.Entries {
		if e.Source == source {
			return e.Output
		}
	}
	return ""
}
