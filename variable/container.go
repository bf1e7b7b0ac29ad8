package variable

import (
	"github.com/gdcore/serializer/ir"
)

// Named is a variable with its name.
type Named struct {
	Name     string
	Variable *Variable
}

// Container is an ordered list of named variables, as held by a scene
// or an object.  Names are unique.
type Container struct {
	vars []Named
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Count() int { return len(c.vars) }

func (c *Container) Has(name string) bool {
	return c.Position(name) != -1
}

// Position returns the index of the variable called name or -1.
func (c *Container) Position(name string) int {
	for i := range c.vars {
		if c.vars[i].Name == name {
			return i
		}
	}
	return -1
}

// Get returns the variable called name.
func (c *Container) Get(name string) (*Variable, bool) {
	i := c.Position(name)
	if i == -1 {
		return nil, false
	}
	return c.vars[i].Variable, true
}

// At returns the variable at index i.
func (c *Container) At(i int) Named {
	return c.vars[i]
}

// Insert stores a copy of v called name at position i, or at the end
// when i is out of range.  An existing variable of the same name is
// replaced in place and i is ignored.
func (c *Container) Insert(name string, v *Variable, i int) *Variable {
	v = v.Clone()
	if j := c.Position(name); j != -1 {
		c.vars[j].Variable = v
		return v
	}
	n := Named{Name: name, Variable: v}
	if i < 0 || i >= len(c.vars) {
		c.vars = append(c.vars, n)
		return v
	}
	c.vars = append(c.vars, Named{})
	copy(c.vars[i+1:], c.vars[i:])
	c.vars[i] = n
	return v
}

// InsertNew inserts a new Number(0) variable.
func (c *Container) InsertNew(name string, i int) *Variable {
	return c.Insert(name, New(), i)
}

func (c *Container) Remove(name string) {
	if i := c.Position(name); i != -1 {
		c.vars = append(c.vars[:i], c.vars[i+1:]...)
	}
}

// Rename renames a variable.  It does nothing if newName is taken.
func (c *Container) Rename(oldName, newName string) bool {
	if c.Has(newName) {
		return false
	}
	i := c.Position(oldName)
	if i == -1 {
		return false
	}
	c.vars[i].Name = newName
	return true
}

// Swap exchanges the variables at i and j.  Out of range indexes are
// ignored.
func (c *Container) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(c.vars) || j >= len(c.vars) {
		return
	}
	c.vars[i], c.vars[j] = c.vars[j], c.vars[i]
}

func (c *Container) Clear() { c.vars = nil }

// SerializeTo writes the container as an array of "variable" elements.
func (c *Container) SerializeTo(e *ir.Element) {
	e.ConsiderAsArrayOf("variable")
	for _, n := range c.vars {
		ve := e.AddChild("variable")
		ve.SetStringAttribute("name", n.Name)
		n.Variable.SerializeTo(ve)
	}
}

func (c *Container) UnserializeFrom(e *ir.Element) {
	c.Clear()
	for _, ve := range e.ChildrenNamed("variable") {
		v := New()
		v.UnserializeFrom(ve)
		name := ve.StringAttribute("name", "")
		if j := c.Position(name); j != -1 {
			c.vars[j].Variable = v
			continue
		}
		c.vars = append(c.vars, Named{Name: name, Variable: v})
	}
}
