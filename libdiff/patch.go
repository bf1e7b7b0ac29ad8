package libdiff

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gdcore/serializer/encode"
	"github.com/gdcore/serializer/ir"
	"github.com/gdcore/serializer/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the JSON merge patch turning the canonical JSON of
// from into that of to.  Children sharing a name collapse to the last
// one, as they do in any JSON object decoder.
func MergePatch(from, to *ir.Element) ([]byte, error) {
	fd, err := encode.EncodeBytes(from)
	if err != nil {
		return nil, err
	}
	td, err := encode.EncodeBytes(to)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, fmt.Errorf("could not create merge patch: %w", err)
	}
	return p, nil
}

// ApplyMergePatch applies a JSON merge patch to doc, returning a new
// tree.  Object keys keep their order in doc; added keys follow them.
func ApplyMergePatch(doc *ir.Element, patch []byte) (*ir.Element, error) {
	d, err := encode.EncodeBytes(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("could not apply merge patch: %w", err)
	}
	return reparse(doc, out)
}

// ApplyPatch applies a JSON patch, a list of operations, to doc.  Key
// order is kept as in ApplyMergePatch.
func ApplyPatch(doc *ir.Element, patch []byte) (*ir.Element, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	d, err := encode.EncodeBytes(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("could not apply patch: %w", err)
	}
	return reparse(doc, out)
}

// reparse parses the output of a patch of doc.  The patch library
// writes objects with sorted keys, so the order of doc is restored.
func reparse(doc *ir.Element, out []byte) (*ir.Element, error) {
	res, err := parse.Parse(out, parse.ParseJSON())
	if err != nil {
		return nil, err
	}
	restoreOrder(doc, res)
	return res, nil
}

// restoreOrder sorts the object children of patched by the position of
// the same name in orig.  Names orig lacks go last, in their order.
func restoreOrder(orig, patched *ir.Element) {
	if orig == nil || patched.HasValue() || orig.IsArray() != patched.IsArray() {
		return
	}
	if patched.IsArray() {
		for i := range min(orig.ChildCount(), patched.ChildCount()) {
			restoreOrder(orig.ChildAt(i).Element, patched.ChildAt(i).Element)
		}
		return
	}
	pos := map[string]int{}
	for i, c := range orig.Children() {
		if _, ok := pos[c.Name]; !ok {
			pos[c.Name] = i
		}
	}
	children := slices.Clone(patched.Children())
	slices.SortStableFunc(children, func(a, b ir.Child) int {
		pa, okA := pos[a.Name]
		pb, okB := pos[b.Name]
		switch {
		case okA && okB:
			return cmp.Compare(pa, pb)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
	for i := patched.ChildCount() - 1; i >= 0; i-- {
		patched.RemoveChildAt(i)
	}
	for _, c := range children {
		patched.AppendChild(c.Name, c.Element)
		if oc, ok := orig.Child(c.Name); ok {
			restoreOrder(oc, c.Element)
		}
	}
}
