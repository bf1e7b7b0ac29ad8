package ir

import (
	"encoding/json"
	"fmt"
)

// The IR is itself representable in plain JSON, which is useful for
// inspecting the exact kinds held by a tree.

type irValue struct {
	Kind   Kind     `json:"kind"`
	Bool   *bool    `json:"bool,omitempty"`
	Int    *int64   `json:"int,omitempty"`
	Double *float64 `json:"double,omitempty"`
	Text   *string  `json:"text,omitempty"`
}

type irAttr struct {
	Name  string  `json:"name"`
	Value irValue `json:"value"`
}

type irChild struct {
	Name    string   `json:"name"`
	Element *Element `json:"element"`
}

type irBase struct {
	Value    *irValue  `json:"value,omitempty"`
	Array    bool      `json:"array,omitempty"`
	ItemName string    `json:"itemName,omitempty"`
	Attrs    []irAttr  `json:"attrs,omitempty"`
	Children []irChild `json:"children,omitempty"`
}

func toIRValue(v Value) irValue {
	res := irValue{Kind: v.kind}
	switch v.kind {
	case BoolKind:
		res.Bool = &v.b
	case IntKind:
		res.Int = &v.i
	case DoubleKind:
		res.Double = &v.f
	case TextKind:
		res.Text = &v.s
	}
	return res
}

func (v irValue) toValue() (Value, error) {
	switch v.Kind {
	case NoneKind:
		return None(), nil
	case BoolKind:
		if v.Bool == nil {
			return Value{}, fmt.Errorf("missing bool for kind %s", v.Kind)
		}
		return Bool(*v.Bool), nil
	case IntKind:
		if v.Int == nil {
			return Value{}, fmt.Errorf("missing int for kind %s", v.Kind)
		}
		return Int(*v.Int), nil
	case DoubleKind:
		if v.Double == nil {
			return Value{}, fmt.Errorf("missing double for kind %s", v.Kind)
		}
		return Double(*v.Double), nil
	case TextKind:
		if v.Text == nil {
			return Value{}, fmt.Errorf("missing text for kind %s", v.Kind)
		}
		return Text(*v.Text), nil
	}
	return Value{}, fmt.Errorf("invalid kind %s", v.Kind)
}

func (e *Element) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Array:    e.array,
		ItemName: e.itemName,
	}
	if !e.value.IsNone() {
		v := toIRValue(e.value)
		base.Value = &v
	}
	for _, a := range e.attrs {
		base.Attrs = append(base.Attrs, irAttr{Name: a.Name, Value: toIRValue(a.Value)})
	}
	for _, c := range e.children {
		base.Children = append(base.Children, irChild{Name: c.Name, Element: c.Element})
	}
	return json.Marshal(base)
}

func (e *Element) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	*e = Element{array: tmp.Array, itemName: tmp.ItemName}
	if tmp.Value != nil {
		v, err := tmp.Value.toValue()
		if err != nil {
			return err
		}
		e.value = v
	}
	for _, a := range tmp.Attrs {
		v, err := a.Value.toValue()
		if err != nil {
			return fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		e.SetAttribute(a.Name, v)
	}
	for _, c := range tmp.Children {
		e.AppendChild(c.Name, c.Element)
	}
	return nil
}
