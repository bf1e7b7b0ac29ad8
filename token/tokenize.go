package token

import (
	"bytes"
	"fmt"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// Tokenize appends the tokens of src to dst.  Brackets are checked for
// balance, so a successful result is a well nested token sequence.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := NewPosDoc(src)
	i := 0
	if bytes.HasPrefix(src, bom) {
		i = len(bom)
	}
	var opens []int
	n := len(src)
	start := len(dst)
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		}
		tok := Token{Pos: posDoc.Pos(i)}
		sz := 1
		switch c {
		case '{':
			tok.Type = TLCurl
		case '}':
			tok.Type = TRCurl
		case '[':
			tok.Type = TLSquare
		case ']':
			tok.Type = TRSquare
		case ':':
			tok.Type = TColon
		case ',':
			tok.Type = TComma
		case '"':
			m, err := scanQuoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i+m))
			}
			tok.Type = TString
			sz = m
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			off := 0
			if c == '-' {
				off = 1
			}
			m, isFloat, err := number(src[i+off:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			tok.Type = TInteger
			if isFloat {
				tok.Type = TFloat
			}
			sz = m + off
		case 't', 'f', 'n':
			m := literal(src[i:])
			switch string(src[i : i+m]) {
			case "true":
				tok.Type = TTrue
			case "false":
				tok.Type = TFalse
			case "null":
				tok.Type = TNull
			default:
				return nil, NewTokenizeErr(fmt.Errorf("%w %q", ErrLiteral, src[i:i+m]), posDoc.Pos(i))
			}
			sz = m
		default:
			return nil, UnexpectedErr(fmt.Sprintf("%q", string(src[i:i+1])), posDoc.Pos(i))
		}
		if end := i + sz; end < n && !delimiter(src[end]) {
			switch tok.Type {
			case TInteger, TFloat:
				return nil, NewTokenizeErr(ErrNumber, posDoc.Pos(end))
			case TTrue, TFalse, TNull:
				return nil, NewTokenizeErr(ErrLiteral, posDoc.Pos(end))
			}
		}
		tok.Bytes = src[i : i+sz]
		dst = append(dst, tok)
		i += sz

		last := &dst[len(dst)-1]
		switch last.Type {
		case TLCurl, TLSquare:
			opens = append(opens, len(dst)-1)
		case TRCurl, TRSquare:
			if len(opens) == 0 {
				return nil, &ErrImbalancedStructure{Close: last}
			}
			open := &dst[opens[len(opens)-1]]
			if (open.Type == TLCurl) != (last.Type == TRCurl) {
				return nil, &ErrImbalancedStructure{Open: open, Close: last}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) != 0 {
		return nil, &ErrImbalancedStructure{Open: &dst[opens[len(opens)-1]]}
	}
	if len(dst) == start {
		return nil, NewTokenizeErr(ErrEmptyDoc, posDoc.end())
	}
	return dst, nil
}

func literal(d []byte) int {
	i := 0
	for i < len(d) && d[i] >= 'a' && d[i] <= 'z' {
		i++
	}
	return i
}

func delimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', ':', ']', '}', '[', '{', '"':
		return true
	default:
		return false
	}
}
