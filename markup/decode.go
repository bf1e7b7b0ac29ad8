package markup

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gdcore/serializer/ir"
	"github.com/gdcore/serializer/token"
)

var (
	ErrSyntax = errors.New("xml syntax error")
	ErrRoot   = errors.New("unexpected root element")
	ErrName   = errors.New("invalid element name")
	ErrEmpty  = errors.New("no root element")
)

type frame struct {
	name     string
	el       *ir.Element
	text     strings.Builder
	children bool
}

// Parse reads an XML document into an element.  The returned element
// is the content of the root tag; the root tag name itself is not kept.
// Namespace prefixes are kept as written, so "q:a" stays "q:a".
// Character data after an element's first child starts is dropped.
// Errors are *token.TokenizeErr carrying the offending position.
func Parse(d []byte, opts ...ParseOption) (*ir.Element, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	posDoc := token.NewPosDoc(d)
	dec := xml.NewDecoder(bytes.NewReader(d))
	var (
		root  *ir.Element
		stack []*frame
	)
	for {
		off := int(dec.InputOffset())
		tok, err := dec.RawToken()
		if err == io.EOF {
			if len(stack) != 0 {
				top := stack[len(stack)-1]
				return nil, token.NewTokenizeErr(fmt.Errorf("%w: unclosed <%s>", ErrSyntax, top.name), posDoc.Pos(len(d)))
			}
			break
		}
		if err != nil {
			return nil, token.NewTokenizeErr(syntaxErr(err), posDoc.Pos(int(dec.InputOffset())))
		}
		switch x := tok.(type) {
		case xml.StartElement:
			name := qualified(x.Name)
			el := ir.New()
			if len(stack) == 0 {
				if root != nil {
					return nil, token.NewTokenizeErr(fmt.Errorf("%w: second root %q", ErrRoot, name), posDoc.Pos(off))
				}
				if !pOpts.anyRoot && !IsRootName(name) {
					return nil, token.NewTokenizeErr(fmt.Errorf("%w %q", ErrRoot, name), posDoc.Pos(off))
				}
				root = el
			} else {
				top := stack[len(stack)-1]
				top.children = true
				top.el.AppendChild(name, el)
			}
			for _, a := range x.Attr {
				el.SetStringAttribute(qualified(a.Name), a.Value)
			}
			stack = append(stack, &frame{name: name, el: el})
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			if !top.children {
				top.text.Write(x)
			}
		case xml.EndElement:
			name := qualified(x.Name)
			if len(stack) == 0 {
				return nil, token.NewTokenizeErr(fmt.Errorf("%w: unexpected </%s>", ErrSyntax, name), posDoc.Pos(off))
			}
			top := stack[len(stack)-1]
			if top.name != name {
				return nil, token.NewTokenizeErr(fmt.Errorf("%w: <%s> closed by </%s>", ErrSyntax, top.name, name), posDoc.Pos(off))
			}
			stack = stack[:len(stack)-1]
			text := top.text.String()
			if top.children {
				text = trimLayout(text)
			}
			if text != "" {
				top.el.SetStringValue(text)
			}
		}
	}
	if root == nil {
		return nil, token.NewTokenizeErr(ErrEmpty, posDoc.Pos(len(d)))
	}
	return root, nil
}

// trimLayout drops the line break and indentation which Encode writes
// between the text of an element and its first child.  Text consisting
// of layout only is dropped.
func trimLayout(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	i := strings.LastIndexByte(s, '\n')
	if i == -1 || strings.Trim(s[i+1:], " \t") != "" {
		return s
	}
	return s[:i]
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func syntaxErr(err error) error {
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %s", ErrSyntax, se.Msg)
	}
	return fmt.Errorf("%w: %w", ErrSyntax, err)
}
