package splitfs

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/gdcore/serializer/format"
	"github.com/gdcore/serializer/splitter"
)

// Layout describes how a project is laid out on disk.
type Layout struct {
	// Split enables writing units to their own files.
	Split bool `json:"split"`
	// Format is the format of the main file and of the units.
	Format format.Format `json:"format"`
	// Patterns are the split patterns.
	Patterns []string `json:"patterns,omitempty"`
}

func DefaultLayout() *Layout {
	return &Layout{
		Split:    true,
		Format:   format.JSONFormat,
		Patterns: append([]string(nil), splitter.DefaultPatterns...),
	}
}

// ParseLayout reads a YAML layout.  Fields missing from d keep their
// default value.
func ParseLayout(d []byte) (*Layout, error) {
	l := DefaultLayout()
	if err := yaml.Unmarshal(d, l); err != nil {
		return nil, fmt.Errorf("could not decode layout: %w", err)
	}
	return l, nil
}

func LoadLayout(path string) (*Layout, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read layout %q: %w", path, err)
	}
	l, err := ParseLayout(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

func (l *Layout) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}

func (l *Layout) Splitter() *splitter.Splitter {
	return splitter.New(l.Patterns...)
}
