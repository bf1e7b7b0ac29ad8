package ir

import (
	"fmt"
	"slices"
)

// Element is a node of a document tree: ordered attributes, ordered
// and possibly repeated named children, and an optional direct value.
//
// Each Element exclusively owns its attributes and children.  Elements
// keep no reference to their parent.
type Element struct {
	value    Value
	attrs    []Attr
	children []Child

	array    bool
	itemName string
}

// Attr is a named attribute value.
type Attr struct {
	Name  string
	Value Value
}

// Child is a named child element.
type Child struct {
	Name    string
	Element *Element
}

func New() *Element {
	return &Element{}
}

// FromValue returns a new leaf element carrying v.
func FromValue(v Value) *Element {
	return &Element{value: v}
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	res := &Element{
		value:    e.value,
		array:    e.array,
		itemName: e.itemName,
	}
	if len(e.attrs) != 0 {
		res.attrs = slices.Clone(e.attrs)
	}
	if len(e.children) != 0 {
		res.children = make([]Child, len(e.children))
		for i, c := range e.children {
			res.children[i] = Child{Name: c.Name, Element: c.Element.Clone()}
		}
	}
	return res
}

// Value returns the direct value of e.
func (e *Element) Value() Value { return e.value }

func (e *Element) HasValue() bool { return !e.value.IsNone() }

func (e *Element) SetValue(v Value) *Element {
	e.value = v
	return e
}

func (e *Element) SetBoolValue(v bool) *Element      { return e.SetValue(Bool(v)) }
func (e *Element) SetIntValue(v int64) *Element      { return e.SetValue(Int(v)) }
func (e *Element) SetDoubleValue(v float64) *Element { return e.SetValue(Double(v)) }
func (e *Element) SetStringValue(v string) *Element  { return e.SetValue(Text(v)) }

func (e *Element) BoolValue() bool      { return e.value.AsBool() }
func (e *Element) IntValue() int64      { return e.value.AsInt() }
func (e *Element) DoubleValue() float64 { return e.value.AsDouble() }
func (e *Element) StringValue() string  { return e.value.AsText() }

// Attributes

// SetAttribute sets the attribute name to v.  An existing attribute
// keeps its position.
func (e *Element) SetAttribute(name string, v Value) *Element {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = v
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: v})
	return e
}

func (e *Element) SetBoolAttribute(name string, v bool) *Element {
	return e.SetAttribute(name, Bool(v))
}
func (e *Element) SetIntAttribute(name string, v int64) *Element {
	return e.SetAttribute(name, Int(v))
}
func (e *Element) SetDoubleAttribute(name string, v float64) *Element {
	return e.SetAttribute(name, Double(v))
}
func (e *Element) SetStringAttribute(name string, v string) *Element {
	return e.SetAttribute(name, Text(v))
}

// Attribute returns the attribute called name.  When e has no such
// attribute, the direct value of the first child called name is used
// instead: object notation reads every entry as a child.
func (e *Element) Attribute(name string) (Value, bool) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			return e.attrs[i].Value, true
		}
	}
	if c, ok := e.Child(name); ok && c.HasValue() {
		return c.value, true
	}
	return Value{}, false
}

func (e *Element) HasAttribute(name string) bool {
	_, ok := e.Attribute(name)
	return ok
}

func (e *Element) BoolAttribute(name string, def bool) bool {
	if v, ok := e.Attribute(name); ok {
		return v.AsBool()
	}
	return def
}

func (e *Element) IntAttribute(name string, def int64) int64 {
	if v, ok := e.Attribute(name); ok {
		return v.AsInt()
	}
	return def
}

func (e *Element) DoubleAttribute(name string, def float64) float64 {
	if v, ok := e.Attribute(name); ok {
		return v.AsDouble()
	}
	return def
}

func (e *Element) StringAttribute(name string, def string) string {
	if v, ok := e.Attribute(name); ok {
		return v.AsText()
	}
	return def
}

// RemoveAttribute removes the attribute called name, reporting whether
// it was present.
func (e *Element) RemoveAttribute(name string) bool {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs = slices.Delete(e.attrs, i, i+1)
			return true
		}
	}
	return false
}

// Attributes returns the attributes of e in insertion order.  The
// result must not be modified.
func (e *Element) Attributes() []Attr { return e.attrs }

func (e *Element) AttributeCount() int { return len(e.attrs) }

// Arrays

// ConsiderAsArray marks e as an array: object notation writes it with
// brackets and its unnamed children match any child name.
func (e *Element) ConsiderAsArray() *Element {
	e.array = true
	return e
}

// ConsiderAsArrayOf marks e as an array of children called itemName.
func (e *Element) ConsiderAsArrayOf(itemName string) *Element {
	e.array = true
	e.itemName = itemName
	return e
}

func (e *Element) IsArray() bool { return e.array }

// ArrayItemName returns the item name declared with ConsiderAsArrayOf.
func (e *Element) ArrayItemName() string { return e.itemName }

// Children

func (e *Element) matches(c *Child, name string) bool {
	if c.Name == name {
		return true
	}
	return e.array && c.Name == "" && (e.itemName == "" || e.itemName == name)
}

// AddChild appends a new empty child called name and returns it.
func (e *Element) AddChild(name string) *Element {
	c := New()
	e.children = append(e.children, Child{Name: name, Element: c})
	return c
}

// AppendChild appends c under name.  e takes ownership of c.
func (e *Element) AppendChild(name string, c *Element) *Element {
	if c == nil {
		c = New()
	}
	e.children = append(e.children, Child{Name: name, Element: c})
	return c
}

// InsertChild inserts c under name at index i.  Out of range indices
// append.
func (e *Element) InsertChild(i int, name string, c *Element) *Element {
	if c == nil {
		c = New()
	}
	if i < 0 || i > len(e.children) {
		i = len(e.children)
	}
	e.children = slices.Insert(e.children, i, Child{Name: name, Element: c})
	return c
}

// SetChild replaces the first child called name with c, or appends c if
// there is none.
func (e *Element) SetChild(name string, c *Element) *Element {
	if c == nil {
		c = New()
	}
	for i := range e.children {
		if e.matches(&e.children[i], name) {
			e.children[i].Element = c
			return c
		}
	}
	return e.AppendChild(name, c)
}

// Child returns the first child called name.  It never modifies e.
func (e *Element) Child(name string) (*Element, bool) {
	for i := range e.children {
		if e.matches(&e.children[i], name) {
			return e.children[i].Element, true
		}
	}
	return nil, false
}

// RequireChild is Child for callers for which a missing child is an
// error.
func (e *Element) RequireChild(name string) (*Element, error) {
	c, ok := e.Child(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoChild, name)
	}
	return c, nil
}

// GetOrCreateChild returns the first child called name, appending an
// empty one if there is none.
func (e *Element) GetOrCreateChild(name string) *Element {
	if c, ok := e.Child(name); ok {
		return c
	}
	return e.AddChild(name)
}

func (e *Element) HasChild(name string) bool {
	_, ok := e.Child(name)
	return ok
}

// ChildrenNamed returns all children called name in document order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var res []*Element
	for i := range e.children {
		if e.matches(&e.children[i], name) {
			res = append(res, e.children[i].Element)
		}
	}
	return res
}

// Children returns the children of e in document order.  The result
// must not be modified.
func (e *Element) Children() []Child { return e.children }

func (e *Element) ChildCount() int { return len(e.children) }

func (e *Element) ChildAt(i int) Child { return e.children[i] }

// ChildMatches reports whether the child at index i answers to name.
func (e *Element) ChildMatches(i int, name string) bool {
	return e.matches(&e.children[i], name)
}

// ReplaceChildAt replaces the element at index i, keeping its name, and
// returns the element it replaced.
func (e *Element) ReplaceChildAt(i int, c *Element) *Element {
	if c == nil {
		c = New()
	}
	old := e.children[i].Element
	e.children[i].Element = c
	return old
}

// RemoveChildAt removes and returns the child at index i.
func (e *Element) RemoveChildAt(i int) Child {
	c := e.children[i]
	e.children = slices.Delete(e.children, i, i+1)
	return c
}

// RemoveChildren removes every child called name and returns how many
// were removed.
func (e *Element) RemoveChildren(name string) int {
	n := len(e.children)
	e.children = slices.DeleteFunc(e.children, func(c Child) bool {
		return e.matches(&c, name)
	})
	return n - len(e.children)
}

// IsEmpty reports whether e has no value, attributes or children.
func (e *Element) IsEmpty() bool {
	return e.value.IsNone() && len(e.attrs) == 0 && len(e.children) == 0
}
