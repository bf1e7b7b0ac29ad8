package variable

import (
	"bytes"
	"testing"

	"github.com/gdcore/serializer/encode"
	"github.com/gdcore/serializer/format"
	"github.com/gdcore/serializer/ir"
	"github.com/gdcore/serializer/parse"
)

func TestSerializeJSONRoundTrip(t *testing.T) {
	v := New()
	v.GetChild("score").SetNumber(10)
	v.GetChild("name").SetText("Bob")
	v.GetChild("inventory").GetChild("sword").SetNumber(1)

	e := ir.New()
	v.SerializeTo(e)
	got := encode.MustString(e)
	want := `{"children": [{"name": "score","value": 10.0},{"name": "name","value": "Bob"},{"name": "inventory","children": [{"name": "sword","value": 1.0}]}]}`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}

	back, err := parse.ParseString(got)
	if err != nil {
		t.Fatal(err)
	}
	w := New()
	w.UnserializeFrom(back)
	if !Equal(v, w) {
		t.Errorf("got %s, want %s", w, v)
	}
}

func TestSerializeMarkup(t *testing.T) {
	c := NewContainer()
	c.Insert("lives", NewNumber(3), -1)
	c.Insert("title", NewText("hi"), -1)

	e := ir.New()
	c.SerializeTo(e.AddChild("variables"))
	s, err := encodeXML(e)
	if err != nil {
		t.Fatal(err)
	}
	back, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	vars, _ := back.Child("variables")
	d := NewContainer()
	d.UnserializeFrom(vars)
	if d.Count() != 2 {
		t.Fatalf("got %d variables", d.Count())
	}
	lives, _ := d.Get("lives")
	if lives.Number() != 3 {
		t.Errorf("lives = %v", lives)
	}
	title, _ := d.Get("title")
	if title.Text() != "hi" {
		t.Errorf("title = %v", title)
	}
}

func encodeXML(e *ir.Element) (string, error) {
	buf := bytes.NewBuffer(nil)
	err := encode.Encode(e, buf, encode.EncodeFormat(format.XMLFormat))
	return buf.String(), err
}
