package markup

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/gdcore/serializer/ir"
)

const (
	header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	indent = "    "
)

// Encode writes e as an XML document, one element per line with four
// space indentation.
func Encode(e *ir.Element, w io.Writer, opts ...EncodeOption) error {
	eOpts := &encodeOpts{root: RootName, declaration: true}
	for _, f := range opts {
		f(eOpts)
	}
	bw := bufio.NewWriter(w)
	if eOpts.declaration {
		bw.WriteString(header)
	}
	if err := encodeElement(bw, eOpts.root, e, 0); err != nil {
		return err
	}
	return bw.Flush()
}

func encodeElement(w *bufio.Writer, name string, e *ir.Element, depth int) error {
	if !ValidName(name) {
		return fmt.Errorf("%w %q", ErrName, name)
	}
	writeIndent(w, depth)
	w.WriteByte('<')
	w.WriteString(name)
	for _, a := range e.Attributes() {
		if !ValidName(a.Name) {
			return fmt.Errorf("%w: attribute %q", ErrName, a.Name)
		}
		w.WriteByte(' ')
		w.WriteString(a.Name)
		w.WriteString(`="`)
		if err := xml.EscapeText(w, []byte(a.Value.AsText())); err != nil {
			return err
		}
		w.WriteByte('"')
	}
	children := e.Children()
	if len(children) == 0 && !e.HasValue() {
		w.WriteString(" />\n")
		return nil
	}
	w.WriteByte('>')
	if e.HasValue() {
		if err := xml.EscapeText(w, []byte(e.Value().AsText())); err != nil {
			return err
		}
	}
	if len(children) == 0 {
		closeTag(w, name)
		return nil
	}
	w.WriteByte('\n')
	for _, c := range children {
		cName := c.Name
		if cName == "" {
			cName = e.ArrayItemName()
		}
		if cName == "" {
			cName = ItemName
		}
		if err := encodeElement(w, cName, c.Element, depth+1); err != nil {
			return err
		}
	}
	writeIndent(w, depth)
	closeTag(w, name)
	return nil
}

func closeTag(w *bufio.Writer, name string) {
	w.WriteString("</")
	w.WriteString(name)
	w.WriteString(">\n")
}

func writeIndent(w *bufio.Writer, depth int) {
	for range depth {
		w.WriteString(indent)
	}
}

// ValidName reports whether name can be written as an XML tag or
// attribute name.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == utf8.RuneError {
			return false
		}
		switch {
		case r == '_' || r == ':' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}
