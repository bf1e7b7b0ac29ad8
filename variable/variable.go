package variable

import (
	"iter"
	"slices"

	"github.com/gdcore/serializer/ir"
)

// Variable is a number, a text or a structure of named children.  The
// zero Variable is Number(0).
type Variable struct {
	kind     Kind
	number   float64
	text     string
	names    []string
	children map[string]*Variable
}

func New() *Variable {
	return &Variable{}
}

func NewNumber(f float64) *Variable {
	return &Variable{number: f}
}

func NewText(s string) *Variable {
	return &Variable{kind: TextKind, text: s}
}

// NewStructure returns a structure without children.
func NewStructure() *Variable {
	return &Variable{kind: StructureKind, children: map[string]*Variable{}}
}

func (v *Variable) Kind() Kind        { return v.kind }
func (v *Variable) IsNumber() bool    { return v.kind == NumberKind }
func (v *Variable) IsText() bool      { return v.kind == TextKind }
func (v *Variable) IsStructure() bool { return v.kind == StructureKind }

// SetNumber makes v the number f, dropping any children.
func (v *Variable) SetNumber(f float64) *Variable {
	v.reset(NumberKind)
	v.number = f
	return v
}

// SetText makes v the text s, dropping any children.
func (v *Variable) SetText(s string) *Variable {
	v.reset(TextKind)
	v.text = s
	return v
}

func (v *Variable) reset(k Kind) {
	v.kind = k
	v.number = 0
	v.text = ""
	v.names = nil
	v.children = nil
}

// Number returns v as a number.  Text is parsed, falling back to 0;
// structures read as 0.
func (v *Variable) Number() float64 {
	switch v.kind {
	case NumberKind:
		return v.number
	case TextKind:
		return ir.Text(v.text).AsDouble()
	default:
		return 0
	}
}

// Text returns v as a text.  Numbers are formatted in their shortest
// form; structures read as "".
func (v *Variable) Text() string {
	switch v.kind {
	case NumberKind:
		return ir.FormatDouble(v.number)
	case TextKind:
		return v.text
	default:
		return ""
	}
}

// Value returns the scalar content of v as an element value.
func (v *Variable) Value() ir.Value {
	switch v.kind {
	case NumberKind:
		return ir.Double(v.number)
	case TextKind:
		return ir.Text(v.text)
	default:
		return ir.None()
	}
}

func (v *Variable) toStructure() {
	if v.kind == StructureKind {
		return
	}
	v.reset(StructureKind)
	v.children = map[string]*Variable{}
}

// GetChild returns the child called name, making v a structure and
// creating the child as Number(0) when needed.
func (v *Variable) GetChild(name string) *Variable {
	v.toStructure()
	if c, ok := v.children[name]; ok {
		return c
	}
	c := New()
	v.names = append(v.names, name)
	v.children[name] = c
	return c
}

// TryChild returns the child called name without changing v.
func (v *Variable) TryChild(name string) (*Variable, bool) {
	if v.kind != StructureKind {
		return nil, false
	}
	c, ok := v.children[name]
	return c, ok
}

func (v *Variable) HasChild(name string) bool {
	_, ok := v.TryChild(name)
	return ok
}

// SetChild stores a copy of c as the child called name.  An existing
// child keeps its position.
func (v *Variable) SetChild(name string, c *Variable) *Variable {
	v.toStructure()
	cc := c.Clone()
	if _, ok := v.children[name]; !ok {
		v.names = append(v.names, name)
	}
	v.children[name] = cc
	return cc
}

func (v *Variable) RemoveChild(name string) {
	if v.kind != StructureKind {
		return
	}
	if _, ok := v.children[name]; !ok {
		return
	}
	delete(v.children, name)
	v.names = slices.DeleteFunc(v.names, func(n string) bool { return n == name })
}

// RenameChild renames a child in place, replacing any child already
// called newName.  It reports false if there is no child called oldName.
func (v *Variable) RenameChild(oldName, newName string) bool {
	c, ok := v.TryChild(oldName)
	if !ok {
		return false
	}
	if oldName == newName {
		return true
	}
	v.RemoveChild(newName)
	i := slices.Index(v.names, oldName)
	v.names[i] = newName
	delete(v.children, oldName)
	v.children[newName] = c
	return true
}

func (v *Variable) ClearChildren() {
	if v.kind != StructureKind {
		return
	}
	v.names = nil
	v.children = map[string]*Variable{}
}

func (v *Variable) ChildCount() int {
	if v.kind != StructureKind {
		return 0
	}
	return len(v.names)
}

// ChildNames returns the names of the children of v in insertion order.
func (v *Variable) ChildNames() []string {
	if v.kind != StructureKind {
		return nil
	}
	return slices.Clone(v.names)
}

// Children iterates over the children of v in insertion order.
func (v *Variable) Children() iter.Seq2[string, *Variable] {
	return func(yield func(string, *Variable) bool) {
		if v.kind != StructureKind {
			return
		}
		for _, name := range v.names {
			if !yield(name, v.children[name]) {
				return
			}
		}
	}
}

// Contains reports whether a child of v, or with recursive a child at
// any depth, is equal to needle.
func (v *Variable) Contains(needle *Variable, recursive bool) bool {
	for _, c := range v.Children() {
		if Equal(c, needle) {
			return true
		}
		if recursive && c.Contains(needle, true) {
			return true
		}
	}
	return false
}

// RemoveRecursively removes every child equal to needle at any depth.
func (v *Variable) RemoveRecursively(needle *Variable) {
	if v.kind != StructureKind {
		return
	}
	names := v.names[:0]
	for _, name := range v.names {
		c := v.children[name]
		if Equal(c, needle) {
			delete(v.children, name)
			continue
		}
		c.RemoveRecursively(needle)
		names = append(names, name)
	}
	clear(v.names[len(names):])
	v.names = names
}

// Clone returns a deep copy of v.
func (v *Variable) Clone() *Variable {
	res := &Variable{kind: v.kind, number: v.number, text: v.text}
	if v.kind != StructureKind {
		return res
	}
	res.names = slices.Clone(v.names)
	res.children = make(map[string]*Variable, len(v.children))
	for name, c := range v.children {
		res.children[name] = c.Clone()
	}
	return res
}

// Equal reports whether a and b hold the same value.  Structures are
// equal when they have equal children under the same names, in any
// order.
func Equal(a, b *Variable) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NumberKind:
		return a.number == b.number
	case TextKind:
		return a.text == b.text
	}
	if len(a.names) != len(b.names) {
		return false
	}
	for name, ac := range a.children {
		bc, ok := b.children[name]
		if !ok || !Equal(ac, bc) {
			return false
		}
	}
	return true
}

func (v *Variable) String() string {
	return ToJSON(v)
}
