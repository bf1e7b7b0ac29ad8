package variable

import (
	"math"
	"strconv"

	"github.com/gdcore/serializer/encode"
	"github.com/gdcore/serializer/ir"
	"github.com/gdcore/serializer/parse"
)

// FromJSON parses a JSON document into a variable.  Objects become
// structures, arrays become structures named by index, booleans become
// 1 or 0.  null reads like an empty object.  Errors are the
// *parse.ParseError of the JSON codec.
func FromJSON(d []byte) (*Variable, error) {
	e, err := parse.Parse(d, parse.ParseJSON())
	if err != nil {
		return nil, err
	}
	return FromElement(e), nil
}

// FromJSONString is FromJSON for a string.
func FromJSONString(s string) (*Variable, error) {
	return FromJSON([]byte(s))
}

// FromElement converts a parsed JSON element into a variable.
func FromElement(e *ir.Element) *Variable {
	v := New()
	if e.HasValue() {
		val := e.Value()
		switch val.Kind() {
		case ir.TextKind:
			v.SetText(val.AsText())
		default:
			v.SetNumber(val.AsDouble())
		}
		return v
	}
	v.toStructure()
	for i, c := range e.Children() {
		name := c.Name
		if e.IsArray() {
			name = strconv.Itoa(i)
		}
		v.SetChild(name, FromElement(c.Element))
	}
	return v
}

// ToJSON returns the JSON text of v.  Structures are always written as
// objects, including those read from arrays.  Numbers which are not
// finite are written as 0.
func ToJSON(v *Variable) string {
	return encode.MustString(ToElement(v))
}

// ToElement converts v into an element encoding as v's JSON form.
// Integral numbers are held as Int so that they encode without a
// fraction.
func ToElement(v *Variable) *ir.Element {
	switch v.kind {
	case TextKind:
		return ir.FromValue(ir.Text(v.text))
	case NumberKind:
		return ir.FromValue(numberValue(v.number))
	}
	e := ir.New()
	for name, c := range v.Children() {
		e.AppendChild(name, ToElement(c))
	}
	return e
}

func numberValue(f float64) ir.Value {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return ir.Int(0)
	case f == math.Trunc(f) && math.Abs(f) < 1<<53:
		return ir.Int(int64(f))
	default:
		return ir.Double(f)
	}
}
