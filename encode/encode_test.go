package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/gdcore/serializer/format"
	"github.com/gdcore/serializer/ir"
	"github.com/google/go-cmp/cmp"
)

func sample() *ir.Element {
	e := ir.New()
	e.SetStringAttribute("name", "layout0")
	e.AddChild("n").SetIntValue(3)
	list := e.AddChild("list").ConsiderAsArray()
	list.AppendChild("", ir.FromValue(ir.Double(2)))
	list.AppendChild("", ir.FromValue(ir.Bool(false)))
	list.AppendChild("", ir.New())
	list.AddChild("").ConsiderAsArray()
	return e
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		e    *ir.Element
		want string
	}{
		{"empty", ir.New(), `{}`},
		{"empty array", ir.New().ConsiderAsArray(), `[]`},
		{"text", ir.FromValue(ir.Text("")), `""`},
		{"double", ir.FromValue(ir.Double(123.455)), `123.455`},
		{"integral double", ir.FromValue(ir.Double(-3)), `-3.0`},
		{"large double", ir.FromValue(ir.Double(1e21)), `1e+21`},
		{"small double", ir.FromValue(ir.Double(1e-7)), `1e-7`},
		{"int", ir.FromValue(ir.Int(-42)), `-42`},
		{"sample", sample(), `{"name": "layout0","n": 3,"list": [2.0,false,{},[]]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, MustString(tc.e)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestValueWinsOverChildren(t *testing.T) {
	e := ir.New()
	e.AddChild("hidden").SetIntValue(1)
	e.SetStringAttribute("attr", "x")
	e.SetIntValue(7)
	if got := MustString(e); got != "7" {
		t.Errorf("got %s", got)
	}
}

func TestEncodeNaN(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		e := ir.New()
		e.AddChild("x").SetDoubleValue(f)
		err := Encode(e, bytes.NewBuffer(nil))
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%v: got %v, want ErrEncoding", f, err)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sample(), buf, EncodeIndent(2)); err != nil {
		t.Fatal(err)
	}
	want := `{
  "name": "layout0",
  "n": 3,
  "list": [
    2.0,
    false,
    {},
    []
  ]
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeColorsPlain(t *testing.T) {
	defer func(v bool) { color.NoColor = v }(color.NoColor)
	color.NoColor = true
	buf := bytes.NewBuffer(nil)
	if err := Encode(sample(), buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), MustString(sample()); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestEncodeColors(t *testing.T) {
	defer func(v bool) { color.NoColor = v }(color.NoColor)
	color.NoColor = false
	buf := bytes.NewBuffer(nil)
	if err := Encode(ir.FromValue(ir.Text("100%")), buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected escape sequences in %q", got)
	}
	if !strings.Contains(got, `"100%"`) {
		t.Errorf("percent sign mangled in %q", got)
	}
}

func TestEncodeXML(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := Encode(sample(), buf,
		EncodeFormat(format.XMLFormat),
		EncodeRoot("projectPartial"),
		EncodeDeclaration(false))
	if err != nil {
		t.Fatal(err)
	}
	want := `<projectPartial name="layout0">
    <n>3</n>
    <list>
        <item>2</item>
        <item>false</item>
        <item />
        <item />
    </list>
</projectPartial>
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if f := FormatFromOpts(EncodeFormat(format.XMLFormat)); f != format.XMLFormat {
		t.Errorf("FormatFromOpts = %s", f)
	}
}
