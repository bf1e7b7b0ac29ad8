package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Split  bool
	Coerce bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("GDSER_DEBUG_PARSE")
	d.Split = boolEnv("GDSER_DEBUG_SPLIT")
	d.Coerce = boolEnv("GDSER_DEBUG_COERCE")
	d.Eval = boolEnv("GDSER_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Split() bool {
	return d.Split
}

// Coerce reports whether value coercion fallbacks should be logged.
func Coerce() bool {
	return d.Coerce
}
func Eval() bool {
	return d.Eval
}
