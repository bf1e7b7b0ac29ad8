// Package ir provides the in-memory representation of project documents.
//
// # Overview
//
// Every persisted or transmitted piece of project state is represented as
// a tree of *Element.  Documents parsed from object notation or markup,
// and documents produced by serializing project objects, are all
// ir.Element trees.
//
// # Values
//
// A Value is a closed tagged union of a scalar:
//
//   - NoneKind: no value
//   - BoolKind: boolean
//   - IntKind: 64-bit signed integer
//   - DoubleKind: 64-bit IEEE float
//   - TextKind: string
//
// Values are immutable.  They coerce between kinds with AsBool, AsInt,
// AsDouble and AsText; coercion never fails.  Text which does not parse
// as a number coerces to 0, and the fallback is logged at debug level
// with a *CoercionError.
//
// # Elements
//
// An Element holds
//
//   - attributes: names are unique, insertion order is kept
//   - children: (name, *Element) pairs in order; names may repeat, which
//     is how lists of items are represented
//   - a direct Value, for leaves and array items
//
// Elements are built empty and populated by mutation:
//
//	root := ir.New()
//	root.SetStringAttribute("name", "Level 1")
//	layouts := root.AddChild("layouts").ConsiderAsArrayOf("layout")
//	layouts.AddChild("layout").SetStringAttribute("name", "Menu")
//
// # Lookups
//
// Child returns the first matching child and never mutates.
// GetOrCreateChild appends an empty child when none matches, which is the
// usual way of reading optional fields.  ChildrenNamed returns every
// match.
//
// Attribute lookups fall back to the direct value of a child with the same
// name, since object notation reads every entry as a child.
//
// # Ownership
//
// Each element owns its subtree.  Clone deep-copies; mutating a clone never
// affects the original.  There are no parent pointers.
//
// # Comparison and Hashing
//
//	equal := ir.Equal(a, b)
//	order := ir.Compare(a, b)
//	hash := e.Hash()
//
// # Thread Safety
//
// Elements are not safe for concurrent mutation.  Clone trees to share
// them between goroutines.
//
// # Related Packages
//
//   - github.com/gdcore/serializer/parse - parse text into elements
//   - github.com/gdcore/serializer/encode - encode elements to text
//   - github.com/gdcore/serializer/splitter - split documents into units
package ir
