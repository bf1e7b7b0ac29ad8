package variable

import (
	"github.com/gdcore/serializer/ir"
)

// SerializeTo writes v into e.  Scalars are stored in the "value"
// attribute; structures as a "children" array of "variable" elements,
// each naming itself with a "name" attribute.
func (v *Variable) SerializeTo(e *ir.Element) {
	if v.kind != StructureKind {
		e.SetAttribute("value", v.Value())
		return
	}
	children := e.AddChild("children").ConsiderAsArrayOf("variable")
	for name, c := range v.Children() {
		ce := children.AddChild("variable")
		ce.SetStringAttribute("name", name)
		c.SerializeTo(ce)
	}
}

// UnserializeFrom replaces the content of v with what e holds.  Number
// values that went through markup come back as text.
func (v *Variable) UnserializeFrom(e *ir.Element) {
	if children, ok := e.Child("children"); ok && !children.HasValue() {
		v.toStructure()
		v.ClearChildren()
		for _, ce := range children.ChildrenNamed("variable") {
			c := New()
			c.UnserializeFrom(ce)
			name := ce.StringAttribute("name", "")
			if _, ok := v.children[name]; !ok {
				v.names = append(v.names, name)
			}
			v.children[name] = c
		}
		return
	}
	val, _ := e.Attribute("value")
	switch val.Kind() {
	case ir.TextKind:
		v.SetText(val.AsText())
	default:
		v.SetNumber(val.AsDouble())
	}
}
