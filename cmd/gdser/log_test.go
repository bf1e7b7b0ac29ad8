package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdcore/serializer/ir"
)

func TestCoercionLogging(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	for _, on := range []bool{false, true} {
		buf := bytes.NewBuffer(nil)
		slog.SetDefault(newLogger(buf, on))
		if got := ir.Text("abc").AsDouble(); got != 0 {
			t.Fatalf("AsDouble = %v", got)
		}
		logged := strings.Contains(buf.String(), "value coercion fell back to default")
		if logged != on {
			t.Errorf("debug=%t: got log %q", on, buf.String())
		}
		if on && !strings.Contains(buf.String(), "level=DEBUG") {
			t.Errorf("missing level in %q", buf.String())
		}
	}
}

func TestLoggerDropsInfoLevel(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	newLogger(buf, false).Info("split project", "file", "game.json")
	if got := buf.String(); got != "msg=\"split project\" file=game.json\n" {
		t.Errorf("got %q", got)
	}
}
