package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gdcore/serializer/format"
	"github.com/gdcore/serializer/ir"
	"github.com/gdcore/serializer/markup"
	"github.com/gdcore/serializer/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format

	root           string
	declaration    bool
	declarationSet bool

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes e to w.  JSON output has no trailing newline unless
// EncodeIndent is given.
func Encode(e *ir.Element, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsXML() {
		return markup.Encode(e, w, es.markupOpts()...)
	}
	d, err := es.appendElement(nil, e)
	if err != nil {
		return err
	}
	if es.indent > 0 {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

func (es *EncState) color(k ir.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func (es *EncState) appendSep(d []byte, s string) []byte {
	return append(d, es.color(ir.NoneKind, SepColor, s)...)
}

func (es *EncState) appendNL(d []byte) []byte {
	if es.indent == 0 {
		return d
	}
	d = append(d, '\n')
	for range es.depth * es.indent {
		d = append(d, ' ')
	}
	return d
}

func (es *EncState) appendElement(d []byte, e *ir.Element) ([]byte, error) {
	if e == nil {
		return es.appendSep(d, "{}"), nil
	}
	if e.HasValue() {
		return es.appendValue(d, e.Value())
	}
	if e.IsArray() {
		return es.appendArray(d, e)
	}
	return es.appendObject(d, e)
}

func (es *EncState) appendArray(d []byte, e *ir.Element) ([]byte, error) {
	children := e.Children()
	if len(children) == 0 {
		return es.appendSep(d, "[]"), nil
	}
	d = es.appendSep(d, "[")
	es.depth++
	var err error
	for i := range children {
		if i > 0 {
			d = es.appendSep(d, ",")
		}
		d = es.appendNL(d)
		d, err = es.appendElement(d, children[i].Element)
		if err != nil {
			return nil, err
		}
	}
	es.depth--
	d = es.appendNL(d)
	return es.appendSep(d, "]"), nil
}

func (es *EncState) appendObject(d []byte, e *ir.Element) ([]byte, error) {
	attrs, children := e.Attributes(), e.Children()
	if len(attrs)+len(children) == 0 {
		return es.appendSep(d, "{}"), nil
	}
	d = es.appendSep(d, "{")
	es.depth++
	var err error
	n := 0
	for i := range attrs {
		d = es.appendKey(d, n, attrs[i].Name)
		d, err = es.appendValue(d, attrs[i].Value)
		if err != nil {
			return nil, err
		}
		n++
	}
	for i := range children {
		d = es.appendKey(d, n, children[i].Name)
		d, err = es.appendElement(d, children[i].Element)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", children[i].Name, err)
		}
		n++
	}
	es.depth--
	d = es.appendNL(d)
	return es.appendSep(d, "}"), nil
}

func (es *EncState) appendKey(d []byte, n int, key string) []byte {
	if n > 0 {
		d = es.appendSep(d, ",")
	}
	d = es.appendNL(d)
	d = append(d, es.color(ir.NoneKind, FieldColor, token.Quote(key))...)
	return es.appendSep(d, ": ")
}

func (es *EncState) appendValue(d []byte, v ir.Value) ([]byte, error) {
	var s string
	switch v.Kind() {
	case ir.NoneKind:
		return es.appendSep(d, "{}"), nil
	case ir.BoolKind:
		s = strconv.FormatBool(v.AsBool())
	case ir.IntKind:
		s = strconv.FormatInt(v.AsInt(), 10)
	case ir.DoubleKind:
		var err error
		s, err = formatDouble(v.AsDouble())
		if err != nil {
			return nil, err
		}
	case ir.TextKind:
		s = token.Quote(v.AsText())
	default:
		return nil, fmt.Errorf("%w: unknown kind %s", ErrEncoding, v.Kind())
	}
	return append(d, es.color(v.Kind(), ValueColor, s)...), nil
}

func formatDouble(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v has no JSON form", ErrEncoding, f)
	}
	s := ir.FormatDouble(f)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}
