// Package splitter partitions a document into units and reassembles
// them.
//
// A pattern such as "/layouts/layout" names a repeated child position:
// every "layout" child of every "layouts" child of the root.  Split
// moves each matched element into a Unit and leaves a marker in its
// place,
//
//	{"name": "Level 1","referenceTo": "/layouts/layout"}
//
// Unsplit replaces the markers with units obtained from a Loader, so
// that
//
//	res, _ := s.Split(root)
//	back, _ := s.Unsplit(res.Root, splitter.UnitsLoader(res.Units))
//
// yields a tree equal to root.  Nested patterns compose: a unit may
// itself contain markers of a deeper pattern.
package splitter
