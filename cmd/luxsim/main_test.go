package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"luxservo-go/errcode"
)

func TestRunStepsProfile(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), options{
		profile:    profileSteps,
		iterations: 10,
		period:     time.Millisecond,
	}, &buf)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	checks := map[int]string{
		0: "pulse=500 ",
		2: "pulse=1500",
		4: "pulse=766 ",
		8: "pulse=2500",
		9: "pulse=2500",
	}
	for i, want := range checks {
		if !strings.Contains(lines[i], want) {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want)
		}
	}
	if !strings.HasSuffix(lines[2], "stop") || !strings.HasSuffix(lines[0], "reverse") {
		t.Fatalf("unexpected directions:\n%s", buf.String())
	}
}

func TestRunExtrapolate(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), options{
		profile:     profileFixed,
		lux:         3000,
		iterations:  1,
		extrapolate: true,
	}, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "pulse=4500") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestRunFrameDump(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), options{profile: profileFixed, lux: 42, iterations: 1, frame: true}, &buf)
	if err != nil {
		t.Fatal(err)
	}
	rows := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// One status line then 64 rows of 128 pixels.
	if len(rows) != 65 || len(rows[1]) != 128 {
		t.Fatalf("unexpected dump shape: %d rows", len(rows))
	}
	if rows[4][3] != '#' {
		t.Fatalf("outline corner missing: %q", rows[4][:8])
	}
}

func TestUnknownProfile(t *testing.T) {
	err := run(context.Background(), options{profile: "moon", iterations: 1}, &bytes.Buffer{})
	if errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("err = %v", err)
	}
}
