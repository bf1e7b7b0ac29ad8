package ir

import (
	"encoding/json"
	"errors"
	"testing"
)

func sample() *Element {
	e := New()
	e.AddChild("child1").SetStringValue("value123")
	e.AddChild("child2").SetDoubleValue(45.6)
	e.SetStringAttribute("attr1", "attr123")
	items := e.AddChild("items").ConsiderAsArrayOf("item")
	items.AddChild("item").SetIntValue(1)
	items.AddChild("item").SetIntValue(2)
	return e
}

func TestCloneIndependence(t *testing.T) {
	element := sample()
	copied := element.Clone()
	if !Equal(element, copied) {
		t.Fatal("clone differs from original")
	}

	element.GetOrCreateChild("child1").SetStringValue("value123 modified")
	copied.GetOrCreateChild("child2").SetDoubleValue(45.678)
	copied.SetStringAttribute("attr1", "attr123 modified")
	copied.AddChild("extra")
	element.GetOrCreateChild("items").AddChild("item").SetIntValue(3)

	if got := element.GetOrCreateChild("child1").StringValue(); got != "value123 modified" {
		t.Errorf("original child1 = %q", got)
	}
	if got := element.GetOrCreateChild("child2").DoubleValue(); got != 45.6 {
		t.Errorf("original child2 = %v", got)
	}
	if got := element.StringAttribute("attr1", ""); got != "attr123" {
		t.Errorf("original attr1 = %q", got)
	}
	if element.HasChild("extra") {
		t.Error("original gained child from copy")
	}
	if got := copied.GetOrCreateChild("child1").StringValue(); got != "value123" {
		t.Errorf("copy child1 = %q", got)
	}
	if got := copied.GetOrCreateChild("child2").DoubleValue(); got != 45.678 {
		t.Errorf("copy child2 = %v", got)
	}
	if got := copied.StringAttribute("attr1", ""); got != "attr123 modified" {
		t.Errorf("copy attr1 = %q", got)
	}
	if n := len(copied.GetOrCreateChild("items").ChildrenNamed("item")); n != 2 {
		t.Errorf("copy items = %d", n)
	}
}

func TestAttributesOrderAndOverwrite(t *testing.T) {
	e := New()
	e.SetStringAttribute("b", "1")
	e.SetIntAttribute("a", 2)
	e.SetBoolAttribute("b", true)
	attrs := e.Attributes()
	if len(attrs) != 2 {
		t.Fatalf("got %d attrs", len(attrs))
	}
	if attrs[0].Name != "b" || !attrs[0].Value.Equal(Bool(true)) {
		t.Errorf("attrs[0] = %v", attrs[0])
	}
	if attrs[1].Name != "a" || !attrs[1].Value.Equal(Int(2)) {
		t.Errorf("attrs[1] = %v", attrs[1])
	}
	if !e.RemoveAttribute("b") || e.RemoveAttribute("b") {
		t.Error("RemoveAttribute")
	}
	if got := e.IntAttribute("missing", 7); got != 7 {
		t.Errorf("default = %d", got)
	}
}

func TestAttributeFallsBackToChild(t *testing.T) {
	e := New()
	e.AddChild("name").SetStringValue("Menu")
	e.AddChild("visible").SetIntValue(1)
	if got := e.StringAttribute("name", ""); got != "Menu" {
		t.Errorf("name = %q", got)
	}
	if !e.BoolAttribute("visible", false) {
		t.Error("visible = false")
	}
	e.SetStringAttribute("name", "Attr")
	if got := e.StringAttribute("name", ""); got != "Attr" {
		t.Errorf("attribute should win, got %q", got)
	}
	e.AddChild("container")
	if e.HasAttribute("container") {
		t.Error("child without value answered as attribute")
	}
}

func TestChildLookup(t *testing.T) {
	e := New()
	first := e.AddChild("x")
	first.SetIntValue(1)
	e.AddChild("y")
	e.AddChild("x").SetIntValue(2)

	c, ok := e.Child("x")
	if !ok || c != first {
		t.Fatal("Child did not return the first match")
	}
	if _, ok := e.Child("z"); ok {
		t.Fatal("found missing child")
	}
	if e.ChildCount() != 3 {
		t.Fatal("Child mutated the element")
	}
	if _, err := e.RequireChild("z"); !errors.Is(err, ErrNoChild) {
		t.Errorf("RequireChild error = %v", err)
	}
	z := e.GetOrCreateChild("z")
	if e.ChildCount() != 4 || e.ChildAt(3).Element != z {
		t.Fatal("GetOrCreateChild did not append")
	}
	if e.GetOrCreateChild("z") != z {
		t.Fatal("GetOrCreateChild created twice")
	}
	xs := e.ChildrenNamed("x")
	if len(xs) != 2 || xs[0].IntValue() != 1 || xs[1].IntValue() != 2 {
		t.Errorf("ChildrenNamed = %v", xs)
	}
	if n := e.RemoveChildren("x"); n != 2 {
		t.Errorf("removed %d", n)
	}
	if e.ChildAt(0).Name != "y" {
		t.Errorf("first child = %q", e.ChildAt(0).Name)
	}
}

func TestChildPositions(t *testing.T) {
	e := New()
	e.AddChild("a")
	e.AddChild("c")
	e.InsertChild(1, "b", nil)
	e.InsertChild(99, "d", nil)
	var names []string
	for _, c := range e.Children() {
		names = append(names, c.Name)
	}
	if got := len(names); got != 4 || names[0] != "a" || names[1] != "b" || names[2] != "c" || names[3] != "d" {
		t.Fatalf("names = %v", names)
	}
	repl := FromValue(Text("new"))
	old := e.ReplaceChildAt(1, repl)
	if old == repl || e.ChildAt(1).Name != "b" || e.ChildAt(1).Element != repl {
		t.Error("ReplaceChildAt")
	}
	removed := e.RemoveChildAt(0)
	if removed.Name != "a" || e.ChildCount() != 3 {
		t.Error("RemoveChildAt")
	}
	set := e.SetChild("c", FromValue(Int(3)))
	if got, _ := e.Child("c"); got != set || e.ChildCount() != 3 {
		t.Error("SetChild should replace")
	}
	e.SetChild("e", nil)
	if e.ChildCount() != 4 {
		t.Error("SetChild should append")
	}
}

func TestArrayLookups(t *testing.T) {
	arr := New().ConsiderAsArray()
	arr.AddChild("").SetIntValue(1)
	arr.AddChild("").SetIntValue(2)
	if got := len(arr.ChildrenNamed("layout")); got != 2 {
		t.Errorf("unnamed items match any name in an array: got %d", got)
	}
	typed := New().ConsiderAsArrayOf("layout")
	typed.AddChild("")
	typed.AddChild("layout")
	if got := len(typed.ChildrenNamed("layout")); got != 2 {
		t.Errorf("got %d", got)
	}
	if got := len(typed.ChildrenNamed("other")); got != 0 {
		t.Errorf("got %d", got)
	}
	plain := New()
	plain.AddChild("")
	if got := len(plain.ChildrenNamed("layout")); got != 0 {
		t.Errorf("non-array matched unnamed child: %d", got)
	}
}

func TestIRJSON(t *testing.T) {
	e := sample()
	e.AddChild("flag").SetBoolValue(false)
	e.AddChild("none")
	d, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	back := New()
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !Equal(e, back) {
		t.Errorf("ir json round trip differs:\n%s", d)
	}
}
