// Package format names the wire formats of project documents.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	f := format.Detect(data)
//
// # Related Packages
//
//   - github.com/gdcore/serializer/parse - Parse text to elements
//   - github.com/gdcore/serializer/encode - Encode elements to text
package format
