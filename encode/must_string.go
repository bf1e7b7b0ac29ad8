package encode

import (
	"bytes"

	"github.com/gdcore/serializer/ir"
)

// MustString returns the canonical JSON text of e and panics if e
// cannot be encoded.
func MustString(e *ir.Element) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(e, buf); err != nil {
		panic(err)
	}
	return buf.String()
}

// EncodeBytes returns e encoded with opts.
func EncodeBytes(e *ir.Element, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(e, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
