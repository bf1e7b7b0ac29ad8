package libdiff

import (
	"strconv"

	"github.com/gdcore/serializer/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Modified
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "ChangeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Change is a difference between two trees.
//
// Path locates the change: child names, or indices for unnamed children,
// separated by '/', with attributes written "@name" and the direct value
// of an element written "#value".  From is nil for additions and To is
// nil for removals.  Value and attribute changes carry their values as
// leaf elements.
type Change struct {
	Path string
	Kind ChangeKind
	From *ir.Element
	To   *ir.Element
	// Text is a word diff of the two texts of a modified text value.
	Text string
}

const valuePart = "#value"

// Diff returns the changes turning from into to, in document order.
// Equal trees give no changes.
func Diff(from, to *ir.Element) []Change {
	var res []Change
	diffElement("", from, to, &res)
	return res
}

func join(path, part string) string {
	return path + "/" + part
}

func diffElement(path string, from, to *ir.Element, res *[]Change) {
	if from.Hash() == to.Hash() && ir.Equal(from, to) {
		return
	}
	fv, tv := from.Value(), to.Value()
	if !fv.Equal(tv) {
		*res = append(*res, valueChange(join(path, valuePart), fv, tv))
	}
	diffAttrs(path, from, to, res)
	diffChildren(path, from, to, res)
}

func valueChange(path string, from, to ir.Value) Change {
	c := Change{Path: path, Kind: Modified}
	switch {
	case from.IsNone():
		c.Kind = Added
	case to.IsNone():
		c.Kind = Removed
	}
	if !from.IsNone() {
		c.From = ir.FromValue(from)
	}
	if !to.IsNone() {
		c.To = ir.FromValue(to)
	}
	if c.Kind == Modified && from.Kind() == ir.TextKind && to.Kind() == ir.TextKind {
		c.Text = WordDiff(from.AsText(), to.AsText())
	}
	return c
}

func diffAttrs(path string, from, to *ir.Element, res *[]Change) {
	for _, a := range from.Attributes() {
		p := join(path, "@"+a.Name)
		tv, ok := attr(to, a.Name)
		if !ok {
			*res = append(*res, valueChange(p, a.Value, ir.None()))
			continue
		}
		if !a.Value.Equal(tv) {
			*res = append(*res, valueChange(p, a.Value, tv))
		}
	}
	for _, a := range to.Attributes() {
		if _, ok := attr(from, a.Name); !ok {
			*res = append(*res, valueChange(join(path, "@"+a.Name), ir.None(), a.Value))
		}
	}
}

// attr looks up an attribute proper, without falling back on children.
func attr(e *ir.Element, name string) (ir.Value, bool) {
	for _, a := range e.Attributes() {
		if a.Name == name {
			return a.Value, true
		}
	}
	return ir.None(), false
}

// diffChildren summarizes every child by its name and hash, diffs the
// two summary sequences and recurses into children which were removed
// and added back under the same name.
func diffChildren(path string, from, to *ir.Element, res *[]Change) {
	fc, tc := from.Children(), to.Children()
	if len(fc) == 0 && len(tc) == 0 {
		return
	}
	m := map[summary]rune{}
	fromRunes := summarize(m, fc)
	toRunes := summarize(m, tc)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var removed []int
	flush := func() {
		for _, i := range removed {
			*res = append(*res, Change{Path: join(path, childPart(fc[i], i)), Kind: Removed, From: fc[i].Element})
		}
		removed = removed[:0]
	}
	for _, d := range diffs {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffEqual:
			flush()
			fi += n
			ti += n
		case diffpatch.DiffDelete:
			for range n {
				removed = append(removed, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				c := tc[ti]
				if len(removed) != 0 && fc[removed[0]].Name == c.Name {
					i := removed[0]
					removed = removed[1:]
					diffElement(join(path, childPart(c, ti)), fc[i].Element, c.Element, res)
				} else {
					flush()
					*res = append(*res, Change{Path: join(path, childPart(c, ti)), Kind: Added, To: c.Element})
				}
				ti++
			}
		}
	}
	flush()
}

type summary struct {
	name string
	hash uint64
}

func summarize(m map[summary]rune, children []ir.Child) []rune {
	rs := make([]rune, len(children))
	for i, c := range children {
		s := summary{name: c.Name, hash: c.Element.Hash()}
		r, ok := m[s]
		if !ok {
			r = rune(len(m) + 1)
			m[s] = r
		}
		rs[i] = r
	}
	return rs
}

func childPart(c ir.Child, i int) string {
	if c.Name == "" {
		return strconv.Itoa(i)
	}
	return c.Name
}
