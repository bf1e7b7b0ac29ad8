package splitfs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gdcore/serializer/encode"
	"github.com/gdcore/serializer/format"
	"github.com/gdcore/serializer/ir"
	"github.com/gdcore/serializer/parse"
	"github.com/gdcore/serializer/splitter"
)

// Store writes and loads the units of a project directory.  It is a
// splitter.Loader.
type Store struct {
	Dir    string
	Format format.Format
	Logger *slog.Logger
}

func (s *Store) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// UnitFile returns the file holding the unit called name under path.
func (s *Store) UnitFile(path, name string) string {
	return UnitPath(s.Dir, path, name) + s.Format.Suffix()
}

// WriteUnits writes every unit to its file, creating directories as
// needed.
func (s *Store) WriteUnits(units []splitter.Unit) error {
	for _, u := range units {
		file := s.UnitFile(u.Path, u.Name)
		if err := writeElement(file, u.Element, s.Format, encode.EncodeRoot("projectPartial")); err != nil {
			return err
		}
		s.logger().Debug("wrote unit", "path", u.Path, "name", u.Name, "file", file)
	}
	return nil
}

// LoadUnit reads the unit called name under path.  The file in the
// store format is preferred; files of other formats are accepted.
func (s *Store) LoadUnit(path, name string) (*ir.Element, error) {
	base := UnitPath(s.Dir, path, name)
	candidates := []string{base + s.Format.Suffix()}
	for _, f := range format.AllFormats() {
		if f != s.Format {
			candidates = append(candidates, base+f.Suffix())
		}
	}
	for _, file := range candidates {
		d, err := os.ReadFile(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		e, err := parse.Parse(d, parse.ParseAnyRoot())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s", fs.ErrNotExist, candidates[0])
}

func writeElement(file string, e *ir.Element, f format.Format, opts ...encode.EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	opts = append(opts, encode.EncodeFormat(f))
	if err := encode.Encode(e, buf, opts...); err != nil {
		return fmt.Errorf("could not encode %s: %w", file, err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	return os.WriteFile(file, buf.Bytes(), 0o644)
}
