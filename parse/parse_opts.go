package parse

import (
	"github.com/gdcore/serializer/format"
	"github.com/gdcore/serializer/markup"
)

type parseOpts struct {
	format    format.Format
	formatSet bool
	anyRoot   bool
}

func (o *parseOpts) markupOpts() []markup.ParseOption {
	if o.anyRoot {
		return []markup.ParseOption{markup.AnyRoot()}
	}
	return nil
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseXML() ParseOption {
	return ParseFormat(format.XMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.formatSet = true
	}
}

// ParseAnyRoot accepts any root tag when parsing markup.
func ParseAnyRoot() ParseOption {
	return func(o *parseOpts) { o.anyRoot = true }
}
