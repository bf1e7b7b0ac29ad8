package splitfs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gdcore/serializer/ir"
	"github.com/gdcore/serializer/parse"
)

// Save writes root to filename.  When the layout splits, the units are
// written next to filename and the main file holds markers.
func Save(filename string, root *ir.Element, layout *Layout, logger *slog.Logger) error {
	if layout == nil {
		layout = DefaultLayout()
	}
	main := root
	if layout.Split {
		res, err := layout.Splitter().Split(root)
		if err != nil {
			return err
		}
		store := &Store{Dir: filepath.Dir(filename), Format: layout.Format, Logger: logger}
		if err := store.WriteUnits(res.Units); err != nil {
			return err
		}
		main = res.Root
	}
	return writeElement(filename, main, layout.Format)
}

// Load reads filename and reassembles the units it references.  Units
// which cannot be loaded are left empty; their failures are joined in
// the returned error while the returned tree is complete.  A nil tree
// means the main file itself could not be read.
func Load(filename string, layout *Layout, logger *slog.Logger) (*ir.Element, error) {
	if layout == nil {
		layout = DefaultLayout()
	}
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	root, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	s := layout.Splitter()
	s.Logger = logger
	store := &Store{Dir: filepath.Dir(filename), Format: layout.Format, Logger: logger}
	return s.Unsplit(root, store)
}
