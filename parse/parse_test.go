package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdcore/serializer/encode"
	"github.com/gdcore/serializer/ir"
	"github.com/gdcore/serializer/token"
	"github.com/google/go-cmp/cmp"
)

type parseTest struct {
	in string
	e  error
}

// canonical documents must re-encode byte for byte.
var canonical = []string{
	`""`,
	`123.455`,
	`-1`,
	`0.5`,
	`2.0`,
	`true`,
	`false`,
	`"hello"`,
	`{}`,
	`[]`,
	`[[]]`,
	`[1,2]`,
	`{"a": 1}`,
	`{"a": 1,"b": {"c": 2}}`,
	`{"a": 1,"a": 2}`,
	`{"hello": {"world": [{},[],3,"4"],"world2": [-1,"-2",{"-3": [-4]}]}}`,
	`{"\"hello\"": " \"quote\" ","caret-prop": 1,"special-\b\f\n\r\t\"": "\b\f\n\r\t"}`,
	`{"Ich heiße GDevelop": "Gut!","Bonjour à tout le monde": 1,"Hello 官话 world": "官话"}`,
	`{"ctrl": "\u0001"}`,
	`[1e+100,1e-7,9223372036854775807]`,
}

func TestParseOK(t *testing.T) {
	for _, in := range canonical {
		e, err := Parse([]byte(in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", in, err)
			continue
		}
		got := encode.MustString(e)
		if got != in {
			t.Errorf("round trip:\n  in:  %s\n  out: %s", in, got)
		}
	}
}

func TestParseTree(t *testing.T) {
	e, err := Parse([]byte(`{"a": [1,2.5,"x",true,null],"b": {"c": 2}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.New()
	arr := want.AddChild("a").ConsiderAsArray()
	arr.AppendChild("", ir.FromValue(ir.Int(1)))
	arr.AppendChild("", ir.FromValue(ir.Double(2.5)))
	arr.AppendChild("", ir.FromValue(ir.Text("x")))
	arr.AppendChild("", ir.FromValue(ir.Bool(true)))
	arr.AppendChild("", ir.New())
	want.AddChild("b").AddChild("c").SetIntValue(2)
	if !ir.Equal(want, e) {
		t.Errorf("got %s, want %s", encode.MustString(e), encode.MustString(want))
	}
	if got := e.IntAttribute("b", 0); got != 0 {
		t.Errorf("object child read as attribute: %d", got)
	}
	b, _ := e.Child("b")
	if got := b.IntAttribute("c", 0); got != 2 {
		t.Errorf("attribute fallback to child: got %d", got)
	}
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want ir.Value
	}{
		{"0", ir.Int(0)},
		{"-0", ir.Int(0)},
		{"42", ir.Int(42)},
		{"-9223372036854775808", ir.Int(-9223372036854775808)},
		{"9223372036854775808", ir.Double(9223372036854775808)},
		{"1.0", ir.Double(1)},
		{"1e2", ir.Double(100)},
		{"-2.5E-3", ir.Double(-0.0025)},
	}
	for _, tc := range tests {
		e, err := Parse([]byte(tc.in))
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if !e.Value().Equal(tc.want) {
			t.Errorf("%s: got %v (%s), want %v (%s)", tc.in, e.Value(), e.Value().Kind(), tc.want, tc.want.Kind())
		}
	}
}

func TestNull(t *testing.T) {
	e, err := Parse([]byte(`{"a": null}`))
	if err != nil {
		t.Fatal(err)
	}
	a, ok := e.Child("a")
	if !ok || a.HasValue() {
		t.Fatalf("null should read as an empty element")
	}
	if got := encode.MustString(e); got != `{"a": {}}` {
		t.Errorf("got %s", got)
	}
}

func TestBadParse(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: token.ErrEmptyDoc},
		{in: `{`, e: token.ErrDocBalance},
		{in: `[1,2`, e: token.ErrDocBalance},
		{in: `{"a" 1}`, e: ErrParse},
		{in: `{"a": 1,}`, e: ErrParse},
		{in: `{1: 2}`, e: ErrParse},
		{in: `[1,,2]`, e: ErrParse},
		{in: `[1 2]`, e: ErrParse},
		{in: `{} {}`, e: ErrTrailing},
		{in: `1 2`, e: ErrTrailing},
		{in: `"abc`, e: token.ErrUnterminated},
		{in: `"\q"`, e: token.ErrBadEscape},
		{in: `01`, e: token.ErrNumberLeadingZero},
		{in: `nope`, e: token.ErrLiteral},
		{in: `1e999`, e: ErrRange},
		{in: `'a'`, e: ErrParse},
	}
	for i := range pts {
		pt := &pts[i]
		_, err := Parse([]byte(pt.in), ParseJSON())
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v, want %v", pt.in, err, pt.e)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v does not wrap ErrParse", pt.in, err)
		}
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := Parse([]byte("{\n  \"a\": 1,\n  \"b\" 2\n}"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %T, want *ParseError", err)
	}
	if pe.Line() != 3 || pe.Col() != 3 {
		t.Errorf("got line %d col %d, want 3 3", pe.Line(), pe.Col())
	}
}

func TestImbalancedPosition(t *testing.T) {
	tests := []struct {
		in        string
		line, col int
	}{
		{`{"a": 1`, 1, 1},
		{`[1}`, 1, 3},
		{"1\n]", 2, 1},
	}
	for _, tc := range tests {
		_, err := Parse([]byte(tc.in))
		var pe *ParseError
		if !errors.As(err, &pe) || !errors.Is(err, token.ErrDocBalance) {
			t.Errorf("%q: got %v", tc.in, err)
			continue
		}
		if pe.Line() != tc.line || pe.Col() != tc.col {
			t.Errorf("%q: got line %d col %d, want %d %d", tc.in, pe.Line(), pe.Col(), tc.line, tc.col)
		}
		if n := strings.Count(err.Error(), "at offset"); n != 1 {
			t.Errorf("%q: position written %d times in %q", tc.in, n, err)
		}
	}
}

func TestParseXML(t *testing.T) {
	d := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<project>
    <a b="1">text</a>
</project>
`)
	e, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	a, ok := e.Child("a")
	if !ok {
		t.Fatal("missing child a")
	}
	if diff := cmp.Diff("text", a.StringValue()); diff != "" {
		t.Error(diff)
	}
	if _, err := Parse([]byte(`<other />`), ParseXML()); !errors.Is(err, ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
	if _, err := Parse([]byte(`<other />`), ParseXML(), ParseAnyRoot()); err != nil {
		t.Error(err)
	}
	_, err = Parse([]byte("<project>\n<a>\n</project>"))
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Line() == 0 {
		t.Errorf("got %v, want a positioned *ParseError", err)
	}
}
