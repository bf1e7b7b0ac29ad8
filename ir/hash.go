package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// seeded once per process so that hashes of equal trees agree within
// a process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of e.  Equal elements have equal hashes.
// It panics if e is nil.
func (e *Element) Hash() uint64 {
	if e == nil {
		panic("ir: Hash called on nil element")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var b [8]byte

	hashValue(&h, e.value)
	if e.array {
		h.WriteByte(1)
	} else {
		h.WriteByte(0)
	}
	h.WriteString(e.itemName)
	h.WriteByte(0)
	for _, a := range e.attrs {
		h.WriteString(a.Name)
		h.WriteByte(0)
		hashValue(&h, a.Value)
	}
	h.WriteByte(0xff)
	for _, c := range e.children {
		h.WriteString(c.Name)
		h.WriteByte(0)
		// Writing the child hash into the hasher combines them order-dependently.
		binary.LittleEndian.PutUint64(b[:], c.Element.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}

func hashValue(h *maphash.Hash, v Value) {
	h.WriteByte(byte(v.kind))
	var b [8]byte
	switch v.kind {
	case NoneKind:
	case BoolKind:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntKind:
		binary.LittleEndian.PutUint64(b[:], uint64(v.i))
		h.Write(b[:])
	case DoubleKind:
		f := v.f
		switch {
		case math.IsNaN(f):
			f = math.NaN()
		case f == 0:
			f = 0
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case TextKind:
		h.WriteString(v.s)
		h.WriteByte(0)
	}
}
