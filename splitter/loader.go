package splitter

import (
	"fmt"

	"github.com/gdcore/serializer/ir"
)

// Loader provides the units referenced by markers during Unsplit.
type Loader interface {
	LoadUnit(path, name string) (*ir.Element, error)
}

type LoaderFunc func(path, name string) (*ir.Element, error)

func (f LoaderFunc) LoadUnit(path, name string) (*ir.Element, error) {
	return f(path, name)
}

type unitKey struct {
	path, name string
}

type unitsLoader map[unitKey]*ir.Element

// UnitsLoader returns a Loader serving units, such as those returned
// by Split.  Each load returns a fresh copy.
func UnitsLoader(units []Unit) Loader {
	res := make(unitsLoader, len(units))
	for _, u := range units {
		res[unitKey{NormalizePath(u.Path), u.Name}] = u.Element
	}
	return res
}

func (l unitsLoader) LoadUnit(path, name string) (*ir.Element, error) {
	e, ok := l[unitKey{NormalizePath(path), name}]
	if !ok {
		return nil, fmt.Errorf("%w: %q under %s", ErrUnitNotFound, name, path)
	}
	return e.Clone(), nil
}
