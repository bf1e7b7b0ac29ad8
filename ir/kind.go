package ir

import "fmt"

type Kind int

const (
	NoneKind Kind = iota
	BoolKind
	IntKind
	DoubleKind
	TextKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NoneKind:   "None",
		BoolKind:   "Bool",
		IntKind:    "Int",
		DoubleKind: "Double",
		TextKind:   "Text",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"None":   NoneKind,
		"Bool":   BoolKind,
		"Int":    IntKind,
		"Double": DoubleKind,
		"Text":   TextKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NoneKind,
		BoolKind,
		IntKind,
		DoubleKind,
		TextKind,
	}
}

// IsNumber reports whether k is IntKind or DoubleKind.
func (k Kind) IsNumber() bool {
	switch k {
	case IntKind, DoubleKind:
		return true
	default:
		return false
	}
}
