package splitfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdcore/serializer/encode"
	"github.com/gdcore/serializer/format"
	"github.com/gdcore/serializer/ir"
	"github.com/gdcore/serializer/parse"
	"github.com/gdcore/serializer/splitter"
	"github.com/google/go-cmp/cmp"
)

const projectJSON = `{"name": "Game","layouts": [{"name": "Intro","x": 1},{"name": "Level 1","x": 2}],"externalEvents": [{"name": "ça/va","events": []}]}`

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", ""},
		{"Level-1", "Level-1"},
		{"Level 1", "Level_321"},
		{"a/b", "a_47b"},
		{"a_b", "a_95b"},
		{"ça", "_231a"},
		{"官", "_23448"},
	}
	for _, tc := range tests {
		if got := Sanitize(tc.in); got != tc.out {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestUnitPath(t *testing.T) {
	got := UnitPath("/games/demo", "/layouts/layout", "Level 1")
	want := filepath.FromSlash("/games/demo/layouts/layout-Level_321")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func mustParse(t *testing.T, s string) *ir.Element {
	t.Helper()
	e, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestSaveLoad(t *testing.T) {
	for _, f := range format.AllFormats() {
		t.Run(f.String(), func(t *testing.T) {
			dir := t.TempDir()
			file := filepath.Join(dir, "game"+f.Suffix())
			root := mustParse(t, projectJSON)
			if f.IsXML() {
				// markup has no anonymous children
				layouts, _ := root.Child("layouts")
				layouts.ConsiderAsArrayOf("layout")
				events, _ := root.Child("externalEvents")
				events.ConsiderAsArrayOf("externalEvents")
			}
			layout := DefaultLayout()
			layout.Format = f
			if err := Save(file, root, layout, nil); err != nil {
				t.Fatal(err)
			}
			for _, unit := range []string{
				"layouts/layout-Intro",
				"layouts/layout-Level_321",
				"externalEvents/externalEvents-_231a_47va",
			} {
				if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(unit)+f.Suffix())); err != nil {
					t.Error(err)
				}
			}
			back, err := Load(file, layout, nil)
			if err != nil {
				t.Fatal(err)
			}
			if f.IsJSON() {
				if diff := cmp.Diff(projectJSON, encode.MustString(back)); diff != "" {
					t.Errorf("(-want +got):\n%s", diff)
				}
				return
			}
			layouts, _ := back.Child("layouts")
			if n := len(layouts.ChildrenNamed("layout")); n != 2 {
				t.Fatalf("got %d layouts", n)
			}
			if got := layouts.ChildAt(1).Element.StringAttribute("name", ""); got != "Level 1" {
				t.Errorf("second layout is %q", got)
			}
		})
	}
}

func TestSaveUnsplit(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "game.json")
	layout := DefaultLayout()
	layout.Split = false
	if err := Save(file, mustParse(t, projectJSON), layout, nil); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != projectJSON {
		t.Errorf("got %s", d)
	}
	if _, err := os.Stat(filepath.Join(dir, "layouts")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("units written without split: %v", err)
	}
}

func TestLoadMissingUnit(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "game.json")
	if err := Save(file, mustParse(t, projectJSON), nil, nil); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(dir, "layouts", "layout-Intro.json")); err != nil {
		t.Fatal(err)
	}
	back, err := Load(file, nil, nil)
	if back == nil {
		t.Fatal("no tree")
	}
	les := splitter.LoadErrors(err)
	if len(les) != 1 || les[0].Name != "Intro" || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
	want := `{"name": "Game","layouts": [{},{"name": "Level 1","x": 2}],"externalEvents": [{"name": "ça/va","events": []}]}`
	if diff := cmp.Diff(want, encode.MustString(back)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestStoreFallbackFormat(t *testing.T) {
	dir := t.TempDir()
	xmlStore := &Store{Dir: dir, Format: format.XMLFormat}
	unit := splitter.Unit{Path: "/layouts/layout", Name: "a", Element: ir.New().SetStringAttribute("name", "a")}
	if err := xmlStore.WriteUnits([]splitter.Unit{unit}); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(xmlStore.UnitFile("/layouts/layout", "a"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(d), "<projectPartial") {
		t.Errorf("unit root: %s", d)
	}
	jsonStore := &Store{Dir: dir, Format: format.JSONFormat}
	e, err := jsonStore.LoadUnit("/layouts/layout", "a")
	if err != nil {
		t.Fatal(err)
	}
	if got := e.StringAttribute("name", ""); got != "a" {
		t.Errorf("name = %q", got)
	}
}

func TestLayout(t *testing.T) {
	l, err := ParseLayout([]byte("format: xml\npatterns:\n  - /scenes/scene\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := &Layout{Split: true, Format: format.XMLFormat, Patterns: []string{"/scenes/scene"}}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := ParseLayout([]byte("format: yaml\n")); err == nil {
		t.Error("unknown format accepted")
	}

	d, err := DefaultLayout().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(file, d, 0o644); err != nil {
		t.Fatal(err)
	}
	back, err := LoadLayout(file)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultLayout(), back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
