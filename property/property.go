// Package property describes the editable properties of objects and
// behaviors.
package property

import (
	"slices"

	"github.com/gdcore/serializer/ir"
)

// NamedProperty is a named, typed value with presentation hints.  Type
// is a free form tag such as "number", "string", "boolean" or
// "choice"; ExtraInfo holds tag specific data, like the choices of a
// "choice".
type NamedProperty struct {
	Name      string
	Value     ir.Value
	Type      string
	Label     string
	ExtraInfo []string
	Hidden    bool
}

func New(name string) *NamedProperty {
	return &NamedProperty{Name: name, Value: ir.Text(""), Type: "string"}
}

func (p *NamedProperty) SetValue(v ir.Value) *NamedProperty {
	p.Value = v
	return p
}
func (p *NamedProperty) SetType(t string) *NamedProperty {
	p.Type = t
	return p
}
func (p *NamedProperty) SetLabel(l string) *NamedProperty {
	p.Label = l
	return p
}
func (p *NamedProperty) AddExtraInfo(s string) *NamedProperty {
	p.ExtraInfo = append(p.ExtraInfo, s)
	return p
}
func (p *NamedProperty) SetHidden(v bool) *NamedProperty {
	p.Hidden = v
	return p
}

func (p *NamedProperty) Clone() *NamedProperty {
	res := *p
	res.ExtraInfo = slices.Clone(p.ExtraInfo)
	return &res
}

// SerializeTo writes p as attributes of e plus an "extraInformation"
// array.
func (p *NamedProperty) SerializeTo(e *ir.Element) {
	e.SetStringAttribute("name", p.Name)
	e.SetAttribute("value", p.Value)
	e.SetStringAttribute("type", p.Type)
	e.SetStringAttribute("label", p.Label)
	e.SetBoolAttribute("hidden", p.Hidden)
	extra := e.AddChild("extraInformation").ConsiderAsArrayOf("extraInformation")
	for _, s := range p.ExtraInfo {
		extra.AddChild("extraInformation").SetStringValue(s)
	}
}

// UnserializeFrom reads what SerializeTo wrote.  Missing attributes
// keep their zero value, except the type which defaults to "string".
func (p *NamedProperty) UnserializeFrom(e *ir.Element) {
	p.Name = e.StringAttribute("name", "")
	p.UnserializeValuesFrom(e)
	p.Type = e.StringAttribute("type", "string")
	p.Label = e.StringAttribute("label", "")
	p.Hidden = e.BoolAttribute("hidden", false)
	p.ExtraInfo = nil
	if extra, ok := e.Child("extraInformation"); ok {
		for _, x := range extra.ChildrenNamed("extraInformation") {
			p.ExtraInfo = append(p.ExtraInfo, x.StringValue())
		}
	}
}

// SerializeValuesTo writes only the value of p, for storing an
// instance's settings apart from the property description.
func (p *NamedProperty) SerializeValuesTo(e *ir.Element) {
	e.SetAttribute("value", p.Value)
}

func (p *NamedProperty) UnserializeValuesFrom(e *ir.Element) {
	v, ok := e.Attribute("value")
	if !ok {
		v = ir.Text("")
	}
	p.Value = v
}

// SerializeList writes props as an array of "property" elements.
func SerializeList(e *ir.Element, props []*NamedProperty) {
	e.ConsiderAsArrayOf("property")
	for _, p := range props {
		p.SerializeTo(e.AddChild("property"))
	}
}

func UnserializeList(e *ir.Element) []*NamedProperty {
	var res []*NamedProperty
	for _, pe := range e.ChildrenNamed("property") {
		p := New("")
		p.UnserializeFrom(pe)
		res = append(res, p)
	}
	return res
}
