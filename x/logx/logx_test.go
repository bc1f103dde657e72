//go:build !(rp2040 || rp2350)

package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	SetLevel(InfoLevel)

	Info("tick", Uint("lux", 50), Int("delta", -3), Str("dir", "stop"))

	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("not a JSON line: %q: %v", buf.String(), err)
	}
	if m["message"] != "tick" || m["level"] != "info" {
		t.Fatalf("unexpected envelope: %v", m)
	}
	if m["lux"] != float64(50) || m["delta"] != float64(-3) || m["dir"] != "stop" {
		t.Fatalf("unexpected fields: %v", m)
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	SetLevel(WarnLevel)
	defer SetLevel(InfoLevel)

	Info("hidden")
	Debug("hidden")
	Error("shown", Err(errors.New("boom")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("filtered line leaked: %q", out)
	}
	if !strings.Contains(out, `"error":"boom"`) {
		t.Fatalf("missing error field: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": DebugLevel,
		"trace": DebugLevel,
		"warn":  WarnLevel,
		"error": ErrorLevel,
		"info":  InfoLevel,
		"":      InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
