package ir

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Value is an immutable scalar: none, bool, int, double or text.
// The zero Value is None.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

func None() Value {
	return Value{}
}

func Bool(v bool) Value {
	return Value{kind: BoolKind, b: v}
}

func Int(v int64) Value {
	return Value{kind: IntKind, i: v}
}

func Double(v float64) Value {
	return Value{kind: DoubleKind, f: v}
}

func Text(v string) Value {
	return Value{kind: TextKind, s: v}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNone() bool { return v.kind == NoneKind }

// AsBool coerces v to a bool. Text is true only for "true" and "1".
func (v Value) AsBool() bool {
	switch v.kind {
	case BoolKind:
		return v.b
	case IntKind:
		return v.i != 0
	case DoubleKind:
		return v.f != 0
	case TextKind:
		return v.s == "true" || v.s == "1"
	case NoneKind:
		return false
	default:
		panic("kind")
	}
}

// AsInt coerces v to an int64. Doubles truncate toward zero and are
// clamped to the int64 range; text that is not a number yields 0.
func (v Value) AsInt() int64 {
	switch v.kind {
	case BoolKind:
		if v.b {
			return 1
		}
		return 0
	case IntKind:
		return v.i
	case DoubleKind:
		return truncate(v.f)
	case TextKind:
		t := strings.TrimSpace(v.s)
		i, err := strconv.ParseInt(t, 10, 64)
		if err == nil {
			return i
		}
		f, ferr := strconv.ParseFloat(t, 64)
		if ferr == nil {
			return truncate(f)
		}
		coercionFailed(v, IntKind, err)
		return 0
	case NoneKind:
		return 0
	default:
		panic("kind")
	}
}

// AsDouble coerces v to a float64; text that is not a number yields 0.
func (v Value) AsDouble() float64 {
	switch v.kind {
	case BoolKind:
		if v.b {
			return 1
		}
		return 0
	case IntKind:
		return float64(v.i)
	case DoubleKind:
		return v.f
	case TextKind:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			coercionFailed(v, DoubleKind, err)
			return 0
		}
		return f
	case NoneKind:
		return 0
	default:
		panic("kind")
	}
}

// AsText coerces v to text. Numbers use the shortest form that parses
// back to the same value.
func (v Value) AsText() string {
	switch v.kind {
	case BoolKind:
		if v.b {
			return "true"
		}
		return "false"
	case IntKind:
		return strconv.FormatInt(v.i, 10)
	case DoubleKind:
		return FormatDouble(v.f)
	case TextKind:
		return v.s
	case NoneKind:
		return ""
	default:
		panic("kind")
	}
}

func (v Value) String() string {
	switch v.kind {
	case TextKind:
		return strconv.Quote(v.s)
	case NoneKind:
		return "<none>"
	default:
		return v.AsText()
	}
}

// Equal reports whether v and o have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case BoolKind:
		return v.b == o.b
	case IntKind:
		return v.i == o.i
	case DoubleKind:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case TextKind:
		return v.s == o.s
	default:
		return true
	}
}

// FormatDouble formats f with the fewest digits that reparse to f,
// avoiding exponents for magnitudes in [1e-6, 1e21).  Exponents are
// written without zero padding, as in 1e-7.
func FormatDouble(f float64) string {
	a := math.Abs(f)
	if a == 0 || (a >= 1e-6 && a < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	i := strings.IndexByte(s, 'e')
	if i == -1 || i+2 >= len(s) || s[i+2] != '0' {
		return s
	}
	return s[:i+2] + strings.TrimLeft(s[i+2:], "0")
}

func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func coercionFailed(v Value, to Kind, err error) {
	l := slog.Default()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("value coercion fell back to default",
		"err", &CoercionError{From: v.kind, To: to, Text: v.s, Err: err})
}
