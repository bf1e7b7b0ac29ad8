package splitter

import (
	"strings"

	"github.com/gdcore/serializer/ir"
)

// DefaultPatterns are the positions split out of a project by default.
var DefaultPatterns = []string{
	"/layouts/layout",
	"/externalEvents/externalEvents",
	"/externalLayouts/externalLayout",
}

const (
	NameAttr        = "name"
	ReferenceToAttr = "referenceTo"
)

type pattern struct {
	path  string
	parts []string
}

// NormalizePath returns path with a single leading slash and no empty
// components.
func NormalizePath(path string) string {
	return "/" + strings.Join(splitPath(path), "/")
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func newPattern(path string) pattern {
	parts := splitPath(path)
	return pattern{path: "/" + strings.Join(parts, "/"), parts: parts}
}

func (p *pattern) leaf() string {
	return p.parts[len(p.parts)-1]
}

// parents returns the elements whose children are matched against the
// last part of p.
func (p *pattern) parents(root *ir.Element) []*ir.Element {
	nodes := []*ir.Element{root}
	for _, part := range p.parts[:len(p.parts)-1] {
		var next []*ir.Element
		for _, n := range nodes {
			next = append(next, n.ChildrenNamed(part)...)
		}
		nodes = next
	}
	return nodes
}

// isMarker reports whether e stands in for a unit of p.
func (p *pattern) isMarker(e *ir.Element) bool {
	ref, ok := e.Attribute(ReferenceToAttr)
	return ok && ref.AsText() == p.path
}

// Marker returns the element left in place of the unit called name
// under path.
func Marker(path, name string) *ir.Element {
	m := ir.New()
	m.SetStringAttribute(NameAttr, name)
	m.SetStringAttribute(ReferenceToAttr, NormalizePath(path))
	return m
}
