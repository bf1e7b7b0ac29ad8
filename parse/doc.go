// Package parse parses project documents into elements.
//
// # Usage
//
//	// Parse JSON, or XML when the document starts with '<'
//	root, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// Force a format
//	root, err := parse.Parse(data, parse.ParseJSON())
//
// JSON objects become elements whose entries are named children, arrays
// become array elements with unnamed children and scalars become
// elements holding a direct value.  Integers outside the int64 range
// are read as doubles.
//
// Errors are *ParseError values carrying a position and wrapping both
// ErrParse and the underlying token error.
//
// # Related Packages
//
//   - github.com/gdcore/serializer/ir - element representation
//   - github.com/gdcore/serializer/encode - encode elements to text
//   - github.com/gdcore/serializer/markup - the XML codec
package parse
