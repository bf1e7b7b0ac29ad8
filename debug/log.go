package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gdcore/serializer/encode"
	"github.com/gdcore/serializer/ir"
)

// Logf writes a formatted message to stderr, rendering elements as
// canonical JSON.
func Logf(msg string, args ...any) {
	Fprintf(os.Stderr, msg, args...)
}

// Fprintf is Logf writing to w.  Elements should be formatted with %v.
func Fprintf(w io.Writer, msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Element:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Element] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(w, msg, args...)
}
