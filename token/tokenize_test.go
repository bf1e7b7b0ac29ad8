package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	src := `{"a": [1,-2.5e3,true,false,null],"b\"": {}}`
	toks, err := Tokenize(nil, []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	var got []TokenType
	for i := range toks {
		got = append(got, toks[i].Type)
	}
	want := []TokenType{
		TLCurl, TString, TColon, TLSquare,
		TInteger, TComma, TFloat, TComma, TTrue, TComma, TFalse, TComma, TNull,
		TRSquare, TComma, TString, TColon, TLCurl, TRCurl, TRCurl,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token types (-want +got):\n%s", diff)
	}
	if s := toks[15].String(); s != `b"` {
		t.Errorf("got %q for escaped key", s)
	}
	if s := string(toks[6].Bytes); s != "-2.5e3" {
		t.Errorf("got %q for float bytes", s)
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("{\n  \"a\": 1\n}"))
	if err != nil {
		t.Fatal(err)
	}
	line, col := toks[1].Pos.LineCol()
	if line != 1 || col != 2 {
		t.Errorf("got line %d col %d, want 1 2", line, col)
	}
	if toks[4].Pos.Line() != 2 {
		t.Errorf("closing brace on line %d", toks[4].Pos.Line())
	}
}

func TestTokenizeBOM(t *testing.T) {
	toks, err := Tokenize(nil, []byte("\xef\xbb\xbf[]"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 {
		t.Errorf("got %d tokens", len(toks))
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		src string
		err error
	}{
		{"", ErrEmptyDoc},
		{"  \n", ErrEmptyDoc},
		{"{", ErrDocBalance},
		{"]", ErrDocBalance},
		{"[}", ErrDocBalance},
		{"{[}]", ErrDocBalance},
		{`"abc`, ErrUnterminated},
		{`"\x"`, ErrBadEscape},
		{`"\u12g4"`, ErrBadUnicode},
		{"\"a\x01\"", ErrUnicodeControl},
		{"\"\xff\"", ErrBadUTF8},
		{"012", ErrNumberLeadingZero},
		{"-", ErrNumber},
		{"1x", ErrNumber},
		{"nul", ErrLiteral},
		{"truex", ErrLiteral},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			_, err := Tokenize(nil, []byte(tc.src))
			if !errors.Is(err, tc.err) {
				t.Errorf("got %v, want %v", err, tc.err)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in      string
		n       int
		isFloat bool
	}{
		{"0", 1, false},
		{"10,", 2, false},
		{"1.5", 3, true},
		{"1.", 1, false},
		{"1e5", 3, true},
		{"1E-5]", 4, true},
		{"0.25e+2", 7, true},
	}
	for _, tc := range tests {
		n, isFloat, err := number([]byte(tc.in))
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if n != tc.n || isFloat != tc.isFloat {
			t.Errorf("%q: got (%d, %t), want (%d, %t)", tc.in, n, isFloat, tc.n, tc.isFloat)
		}
	}
}
