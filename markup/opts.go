package markup

// RootName is the tag of the root element written by Encode.
const RootName = "project"

// ItemName is the tag written for unnamed children of an element
// without an array item name.
const ItemName = "item"

var roots = map[string]bool{
	RootName:         true,
	"Project":        true,
	"Game":           true,
	"projectPartial": true,
}

// IsRootName reports whether name is accepted as a root tag by Parse.
func IsRootName(name string) bool {
	return roots[name]
}

type parseOpts struct {
	anyRoot bool
}

type ParseOption func(*parseOpts)

// AnyRoot makes Parse accept any root tag.
func AnyRoot() ParseOption {
	return func(o *parseOpts) { o.anyRoot = true }
}

type encodeOpts struct {
	root        string
	declaration bool
}

type EncodeOption func(*encodeOpts)

// Root overrides the root tag written by Encode.
func Root(name string) EncodeOption {
	return func(o *encodeOpts) { o.root = name }
}

// Declaration controls whether Encode writes the xml declaration.
func Declaration(v bool) EncodeOption {
	return func(o *encodeOpts) { o.declaration = v }
}
