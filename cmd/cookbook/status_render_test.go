package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderStatusLine(t *testing.T) {
	got := renderStatusLine("Data directory", statusOK, "/tmp/data", false)
	want := "  Data directory:      [OK] /tmp/data"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	colored := renderStatusLine("Journal", statusError, "", true)
	if !strings.HasPrefix(colored, ansiRed) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected red coloring, got %q", colored)
	}
	if !strings.Contains(colored, "[ERROR]") {
		t.Fatalf("expected ERROR label, got %q", colored)
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader(" Cookbook ", false)
	if len(lines) != 2 || lines[0] != "== Cookbook ==" || lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("unexpected header %q", lines)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"ID", "Title"}, [][]string{{"abc"}}, []columnAlignment{alignLeft, alignRight})
	if !strings.Contains(out, "ID") || !strings.Contains(out, "abc") {
		t.Fatalf("unexpected table %q", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty table for no headers")
	}
}
