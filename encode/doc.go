// Package encode encodes elements to JSON or XML text.
//
// # Usage
//
//	// Canonical JSON
//	err := encode.Encode(root, w)
//
//	// Human readable, colored JSON
//	err := encode.Encode(root, w, encode.EncodeIndent(2), encode.EncodeColors(encode.NewColors()))
//
//	// XML project file
//	err := encode.Encode(root, w, encode.EncodeFormat(format.XMLFormat))
//
// The canonical JSON form writes ": " after keys and "," between
// members and items, with no other whitespace.  Elements holding a
// direct value are written as that value even when they also have
// children.  Doubles always carry a fraction or an exponent so that
// they read back as doubles.
//
// # Related Packages
//
//   - github.com/gdcore/serializer/ir - element representation
//   - github.com/gdcore/serializer/parse - parse text to elements
package encode
