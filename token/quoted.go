package token

import (
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Quote returns v as a double quoted string.  Quotes, backslashes and
// control characters are escaped; all other text, including non-ASCII,
// is written as is.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// AppendQuote appends the quoted form of v to d.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 {
				d = append(d, '\\', 'u', '0', '0', hexDigits[r>>4], hexDigits[r&0xf])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return append(d, '"')
}

// Unquote validates and unescapes a double quoted string.
func Unquote(v string) (string, error) {
	b := []byte(v)
	n, err := scanQuoted(b)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return QuotedToString(b), nil
}

// scanQuoted returns the length of the quoted string at the start of d,
// quotes included, checking escapes and encoding along the way.
func scanQuoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrUnterminated
	}
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz <= 1 {
			return i, ErrBadUTF8
		}
		switch {
		case r == '"':
			return i + 1, nil
		case r == '\\':
			if i+1 >= n {
				return i, ErrUnterminated
			}
			switch d[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > n {
					return i, ErrUnterminated
				}
				if !allHex(d[i+2 : i+6]) {
					return i, ErrBadUnicode
				}
				i += 6
			default:
				return i, ErrBadEscape
			}
			continue
		case r < 0x20:
			return i, ErrUnicodeControl
		}
		i += sz
	}
	return i, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

func hexRune(d []byte) rune {
	var r rune
	for _, c := range d {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		}
	}
	return r
}

// QuotedToString unescapes a quoted string which has already been
// validated by the tokenizer.
func QuotedToString(d []byte) string {
	res := make([]byte, 0, len(d))
	i := 1
	n := len(d) - 1
	for i < n {
		c := d[i]
		if c != '\\' {
			res = append(res, c)
			i++
			continue
		}
		i++
		if i >= n {
			break
		}
		switch d[i] {
		case 't':
			res = append(res, '\t')
		case 'n':
			res = append(res, '\n')
		case 'f':
			res = append(res, '\f')
		case 'r':
			res = append(res, '\r')
		case 'b':
			res = append(res, '\b')
		case 'u':
			if i+5 > n {
				res = utf8.AppendRune(res, utf8.RuneError)
				return string(res)
			}
			r := hexRune(d[i+1 : i+5])
			i += 4
			if utf16.IsSurrogate(r) {
				if i+6 < n && d[i+1] == '\\' && d[i+2] == 'u' && allHex(d[i+3:i+7]) {
					r2 := hexRune(d[i+3 : i+7])
					if dr := utf16.DecodeRune(r, r2); dr != utf8.RuneError {
						r = dr
						i += 6
					} else {
						r = utf8.RuneError
					}
				} else {
					r = utf8.RuneError
				}
			}
			res = utf8.AppendRune(res, r)
		default:
			// '"', '\\' and '/'
			res = append(res, d[i])
		}
		i++
	}
	return string(res)
}
