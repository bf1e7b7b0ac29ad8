package splitter

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gdcore/serializer/debug"
	"github.com/gdcore/serializer/ir"
)

// Unit is an element split out of a document, keyed by the pattern
// path and its name.
type Unit struct {
	Path    string
	Name    string
	Element *ir.Element
}

// Result is the outcome of Split: the pruned root and the units taken
// from it, grouped by pattern in the order the patterns were given.
type Result struct {
	Root  *ir.Element
	Units []Unit
}

type Splitter struct {
	patterns []pattern
	// Logger receives unit load failures.  slog.Default() is used when
	// nil.
	Logger *slog.Logger
}

// New returns a splitter for patterns.  A leading slash in a pattern
// is optional.
func New(patterns ...string) *Splitter {
	s := &Splitter{}
	for _, p := range patterns {
		s.patterns = append(s.patterns, newPattern(p))
	}
	return s
}

// Patterns returns the normalized patterns of s.
func (s *Splitter) Patterns() []string {
	res := make([]string, len(s.patterns))
	for i := range s.patterns {
		res[i] = s.patterns[i].path
	}
	return res
}

func (s *Splitter) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Splitter) check() error {
	for i := range s.patterns {
		if len(s.patterns[i].parts) == 0 {
			return fmt.Errorf("%w: empty path", ErrBadPattern)
		}
	}
	return nil
}

// order returns the pattern indexes sorted by depth, deepest first when
// deep is set.  Patterns of equal depth keep their order.
func (s *Splitter) order(deep bool) []int {
	idx := make([]int, len(s.patterns))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		c := cmp.Compare(len(s.patterns[a].parts), len(s.patterns[b].parts))
		if deep {
			return -c
		}
		return c
	})
	return idx
}

// Split moves every element matched by a pattern of s into a unit and
// leaves a marker in its place.  root is not modified.  Elements which
// already are markers are left alone, so splitting a split document
// changes nothing.
func (s *Splitter) Split(root *ir.Element) (*Result, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	res := &Result{Root: root.Clone()}
	byPattern := make([][]Unit, len(s.patterns))
	for _, i := range s.order(true) {
		units, err := s.splitPattern(res.Root, &s.patterns[i])
		if err != nil {
			return nil, err
		}
		byPattern[i] = units
	}
	for _, units := range byPattern {
		res.Units = append(res.Units, units...)
	}
	return res, nil
}

func (s *Splitter) splitPattern(root *ir.Element, p *pattern) ([]Unit, error) {
	var units []Unit
	seen := map[string]bool{}
	leaf := p.leaf()
	for _, parent := range p.parents(root) {
		for i := range parent.ChildCount() {
			if !parent.ChildMatches(i, leaf) {
				continue
			}
			c := parent.ChildAt(i).Element
			name := c.StringAttribute(NameAttr, "")
			if seen[name] {
				return nil, &DuplicateNameError{Path: p.path, Name: name}
			}
			seen[name] = true
			if p.isMarker(c) {
				continue
			}
			parent.ReplaceChildAt(i, Marker(p.path, name))
			units = append(units, Unit{Path: p.path, Name: name, Element: c})
			if debug.Split() {
				debug.Logf("split %s %q\n", p.path, name)
			}
		}
	}
	return units, nil
}

// Unsplit replaces the markers in root with the units loaded by loader.
// root is not modified.  A unit which fails to load is replaced by an
// empty element and reported as a *UnitLoadError; the failures are
// joined into the returned error while the returned tree is complete.
func (s *Splitter) Unsplit(root *ir.Element, loader Loader) (*ir.Element, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	res := root.Clone()
	var errs []error
	for _, i := range s.order(false) {
		errs = append(errs, s.unsplitPattern(res, &s.patterns[i], loader)...)
	}
	return res, errors.Join(errs...)
}

func (s *Splitter) unsplitPattern(root *ir.Element, p *pattern, loader Loader) []error {
	var errs []error
	leaf := p.leaf()
	for _, parent := range p.parents(root) {
		for i := range parent.ChildCount() {
			if !parent.ChildMatches(i, leaf) {
				continue
			}
			m := parent.ChildAt(i).Element
			if !p.isMarker(m) {
				continue
			}
			name := m.StringAttribute(NameAttr, "")
			u, err := loader.LoadUnit(p.path, name)
			if err == nil && u == nil {
				err = fmt.Errorf("%w: %q under %s", ErrUnitNotFound, name, p.path)
			}
			if err != nil {
				le := &UnitLoadError{Path: p.path, Name: name, Err: err}
				s.logger().Warn("unit not loaded", "path", p.path, "name", name, "err", err)
				errs = append(errs, le)
				u = ir.New()
			}
			parent.ReplaceChildAt(i, u)
			if debug.Split() {
				debug.Logf("unsplit %s %q\n", p.path, name)
			}
		}
	}
	return errs
}
