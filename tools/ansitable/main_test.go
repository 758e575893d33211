package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestRun(t *testing.T) {
	t.Run("TableListsAllPairs", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if code := run(nil, &stdout, &stderr); code != 0 {
			t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
		}

		lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
		if len(lines) != 1+8*8 {
			t.Fatalf("got %d lines, want header + 64 rows", len(lines))
		}
		if !strings.HasPrefix(lines[0], "ATTR") {
			t.Errorf("header = %q", lines[0])
		}
		if !strings.Contains(stdout.String(), `"\x1b[0;30;41m"`) {
			t.Error("table is missing the black on red code")
		}
	})

	t.Run("JSONFiltered", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-json", "-attr", "boldon", "-fg", "red"}, &stdout, &stderr)
		if code != 0 {
			t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
		}

		var entries []entry
		if err := json.Unmarshal(stdout.Bytes(), &entries); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, stdout.String())
		}
		if len(entries) != 8 {
			t.Fatalf("got %d entries, want 8", len(entries))
		}
		want := entry{Attr: "BoldOn", Fg: "Red", Bg: "Black", Code: "\x1b[1;31;40m"}
		if entries[0] != want {
			t.Errorf("entries[0] = %+v, want %+v", entries[0], want)
		}
	})

	t.Run("SinglePair", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if code := run([]string{"-json", "-fg", "black", "-bg", "red"}, &stdout, &stderr); code != 0 {
			t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
		}

		var entries []entry
		if err := json.Unmarshal(stdout.Bytes(), &entries); err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 || entries[0].Code != "\x1b[0;30;41m" {
			t.Errorf("entries = %+v", entries)
		}
	})

	t.Run("UnknownColor", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if code := run([]string{"-fg", "orange"}, &stdout, &stderr); code != 2 {
			t.Fatalf("run() = %d, want 2", code)
		}
		if !strings.Contains(stderr.String(), `"orange"`) {
			t.Errorf("stderr does not name the bad color: %s", stderr.String())
		}
		if stdout.Len() != 0 {
			t.Errorf("unexpected stdout: %s", stdout.String())
		}
	})

	t.Run("UnknownFlag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if code := run([]string{"-nope"}, &stdout, &stderr); code != 2 {
			t.Fatalf("run() = %d, want 2", code)
		}
	})

	t.Run("VerboseLogsToStderr", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if code := run([]string{"-v", "-fg", "blue", "-bg", "white"}, &stdout, &stderr); code != 0 {
			t.Fatalf("run() = %d", code)
		}
		if !strings.Contains(stderr.String(), "palette built") {
			t.Errorf("missing debug log, stderr: %s", stderr.String())
		}
	})
}
