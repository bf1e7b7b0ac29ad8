package varexpr

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"

	"github.com/gdcore/serializer/variable"
)

// ToAny converts v into the value an expression sees.
func ToAny(v *variable.Variable) any {
	switch v.Kind() {
	case variable.NumberKind:
		return v.Number()
	case variable.TextKind:
		return v.Text()
	}
	res := make(map[string]any, v.ChildCount())
	for name, c := range v.Children() {
		res[name] = ToAny(c)
	}
	return res
}

// FromAny converts an expression result into a variable.  Booleans
// become 1 or 0, nil becomes 0, maps become structures with sorted
// names and slices become structures named by index.
func FromAny(x any) *variable.Variable {
	switch y := x.(type) {
	case nil:
		return variable.New()
	case bool:
		if y {
			return variable.NewNumber(1)
		}
		return variable.NewNumber(0)
	case string:
		return variable.NewText(y)
	case float64:
		return variable.NewNumber(y)
	case *variable.Variable:
		return y.Clone()
	case map[string]any:
		res := variable.NewStructure()
		for _, k := range slices.Sorted(maps.Keys(y)) {
			res.SetChild(k, FromAny(y[k]))
		}
		return res
	case []any:
		res := variable.NewStructure()
		for i, item := range y {
			res.SetChild(strconv.Itoa(i), FromAny(item))
		}
		return res
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return variable.NewNumber(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return variable.NewNumber(float64(rv.Uint()))
	case reflect.Float32:
		return variable.NewNumber(rv.Float())
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return FromAny(items)
	}
	return variable.NewText(fmt.Sprint(x))
}
