package encode

import (
	"github.com/gdcore/serializer/format"
	"github.com/gdcore/serializer/markup"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeIndent writes JSON over several lines indented by n spaces per
// level.  The result is not canonical.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeRoot sets the root tag of XML output.
func EncodeRoot(name string) EncodeOption {
	return func(es *EncState) { es.root = name }
}

// EncodeDeclaration controls the xml declaration of XML output.
func EncodeDeclaration(v bool) EncodeOption {
	return func(es *EncState) {
		es.declaration = v
		es.declarationSet = true
	}
}

func (es *EncState) markupOpts() []markup.EncodeOption {
	var res []markup.EncodeOption
	if es.root != "" {
		res = append(res, markup.Root(es.root))
	}
	if es.declarationSet {
		res = append(res, markup.Declaration(es.declaration))
	}
	return res
}
