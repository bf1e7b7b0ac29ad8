package variable

type Kind int

const (
	NumberKind Kind = iota
	TextKind
	StructureKind
)

func (k Kind) String() string {
	switch k {
	case NumberKind:
		return "number"
	case TextKind:
		return "text"
	case StructureKind:
		return "structure"
	default:
		return "<unknown>"
	}
}
