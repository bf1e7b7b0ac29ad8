package parse

import (
	"errors"
	"strconv"

	"github.com/gdcore/serializer/debug"
	"github.com/gdcore/serializer/format"
	"github.com/gdcore/serializer/ir"
	"github.com/gdcore/serializer/markup"
	"github.com/gdcore/serializer/token"
)

// Parse parses d into an element.  Without a format option the format
// is detected from the content.
func Parse(d []byte, opts ...ParseOption) (*ir.Element, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if !pOpts.formatSet {
		pOpts.format = format.Detect(d)
	}
	var (
		res *ir.Element
		err error
	)
	switch pOpts.format {
	case format.XMLFormat:
		res, err = markup.Parse(d, pOpts.markupOpts()...)
		if err != nil {
			return nil, fromTokenErr("markup", err)
		}
	default:
		res, err = parseJSON(d)
		if err != nil {
			return nil, err
		}
	}
	if debug.Parse() {
		debug.Logf("parsed %s document: %v\n", pOpts.format, res)
	}
	return res, nil
}

// ParseString is Parse for a string.
func ParseString(s string, opts ...ParseOption) (*ir.Element, error) {
	return Parse([]byte(s), opts...)
}

func parseJSON(d []byte) (*ir.Element, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fromTokenErr("json", err)
	}
	pi := 0
	res, err := parseValue(toks, &pi)
	if err != nil {
		return nil, err
	}
	if pi != len(toks) {
		tok := &toks[pi]
		return nil, newErr(tok.Pos, ErrTrailing, "unexpected %s %q", tok.Type, tok.Bytes)
	}
	return res, nil
}

func parseValue(toks []token.Token, pi *int) (*ir.Element, error) {
	if *pi >= len(toks) {
		return nil, newErr(endPos(toks), token.ErrUnterminated, "premature end of document")
	}
	t := &toks[*pi]
	*pi++
	switch t.Type {
	case token.TLCurl:
		return parseObj(toks, pi)
	case token.TLSquare:
		return parseArr(toks, pi)
	case token.TString:
		return ir.FromValue(ir.Text(t.String())), nil
	case token.TTrue:
		return ir.FromValue(ir.Bool(true)), nil
	case token.TFalse:
		return ir.FromValue(ir.Bool(false)), nil
	case token.TNull:
		return ir.New(), nil
	case token.TInteger:
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err == nil {
			return ir.FromValue(ir.Int(i)), nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return nil, newErr(t.Pos, err, "invalid integer %q", t.Bytes)
		}
		return parseFloat(t)
	case token.TFloat:
		return parseFloat(t)
	default:
		return nil, newErr(t.Pos, nil, "unexpected %s %q", t.Type, t.Bytes)
	}
}

func parseFloat(t *token.Token) (*ir.Element, error) {
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, newErr(t.Pos, ErrRange, "%q", t.Bytes)
		}
		return nil, newErr(t.Pos, err, "invalid number %q", t.Bytes)
	}
	return ir.FromValue(ir.Double(f)), nil
}

func parseObj(toks []token.Token, pi *int) (*ir.Element, error) {
	obj := ir.New()
	first := true
	for *pi < len(toks) {
		tok := &toks[*pi]
		if first && tok.Type == token.TRCurl {
			*pi++
			return obj, nil
		}
		if tok.Type != token.TString {
			return nil, newErr(tok.Pos, nil, "expected object key, got %s %q", tok.Type, tok.Bytes)
		}
		key := tok.String()
		*pi++
		if *pi == len(toks) || toks[*pi].Type != token.TColon {
			return nil, newErr(tok.Pos, nil, "expected ':' after key %q", key)
		}
		*pi++
		val, err := parseValue(toks, pi)
		if err != nil {
			return nil, err
		}
		obj.AppendChild(key, val)
		first = false
		if *pi == len(toks) {
			break
		}
		sep := &toks[*pi]
		*pi++
		switch sep.Type {
		case token.TComma:
		case token.TRCurl:
			return obj, nil
		default:
			return nil, newErr(sep.Pos, nil, "expected ',' or '}', got %s %q", sep.Type, sep.Bytes)
		}
	}
	return nil, newErr(endPos(toks), token.ErrUnterminated, "premature end of object")
}

func parseArr(toks []token.Token, pi *int) (*ir.Element, error) {
	arr := ir.New().ConsiderAsArray()
	first := true
	for *pi < len(toks) {
		tok := &toks[*pi]
		if first && tok.Type == token.TRSquare {
			*pi++
			return arr, nil
		}
		if !tok.Type.IsValue() {
			return nil, newErr(tok.Pos, nil, "expected array item, got %s %q", tok.Type, tok.Bytes)
		}
		val, err := parseValue(toks, pi)
		if err != nil {
			return nil, err
		}
		arr.AppendChild("", val)
		first = false
		if *pi == len(toks) {
			break
		}
		sep := &toks[*pi]
		*pi++
		switch sep.Type {
		case token.TComma:
		case token.TRSquare:
			return arr, nil
		default:
			return nil, newErr(sep.Pos, nil, "expected ',' or ']', got %s %q", sep.Type, sep.Bytes)
		}
	}
	return nil, newErr(endPos(toks), token.ErrUnterminated, "premature end of array")
}

func endPos(toks []token.Token) *token.Pos {
	if len(toks) == 0 {
		return nil
	}
	return toks[len(toks)-1].Pos
}
