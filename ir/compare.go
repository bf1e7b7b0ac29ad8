package ir

import (
	"cmp"
	"math"
	"strings"
)

// CompareValues returns an integer comparing two values.
// Order: None < Bool < Int < Double < Text.
func CompareValues(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case BoolKind:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case IntKind:
		return cmp.Compare(a.i, b.i)
	case DoubleKind:
		if math.IsNaN(a.f) && math.IsNaN(b.f) {
			return 0
		}
		return cmp.Compare(a.f, b.f)
	case TextKind:
		return strings.Compare(a.s, b.s)
	}
	return 0
}

// Compare returns an integer comparing two elements structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Element) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := CompareValues(a.value, b.value); c != 0 {
		return c
	}
	if a.array != b.array {
		if !a.array {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.itemName, b.itemName); c != 0 {
		return c
	}
	if c := compareAttrs(a.attrs, b.attrs); c != 0 {
		return c
	}
	return compareChildren(a.children, b.children)
}

func compareAttrs(a, b []Attr) int {
	for i := range min(len(a), len(b)) {
		if c := strings.Compare(a[i].Name, b[i].Name); c != 0 {
			return c
		}
		if c := CompareValues(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareChildren(a, b []Child) int {
	for i := range min(len(a), len(b)) {
		if c := strings.Compare(a[i].Name, b[i].Name); c != 0 {
			return c
		}
		if c := Compare(a[i].Element, b[i].Element); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b *Element) bool {
	return Compare(a, b) == 0
}
