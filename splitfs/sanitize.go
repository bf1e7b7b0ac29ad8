package splitfs

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Sanitize makes name safe for use in a file name: every character
// other than an ASCII letter, digit or '-' is written as '_' followed
// by its decimal code point.
func Sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
			b.WriteString(strconv.Itoa(int(r)))
		}
	}
	return b.String()
}

// UnitPath returns the file of the unit called name under the pattern
// path, without a format suffix.
func UnitPath(baseDir, path, name string) string {
	return filepath.Join(baseDir, filepath.FromSlash(path)+"-"+Sanitize(name))
}
