package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/starfederation/vcell-go/diag"
)

func writeLiterals(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cells.json")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write literals: %v", err)
	}
	return path
}

func TestLayoutCommand(t *testing.T) {
	var out bytes.Buffer
	if err := (&layoutCmd{}).Run(&out); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !strings.HasPrefix(out.String(), "layout: ") || !strings.Contains(out.String(), "budget: ") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestDumpText(t *testing.T) {
	path := writeLiterals(t, `[{"type":"double","value":2.5},{"type":"null"}]`)
	var out bytes.Buffer
	if err := (&dumpCmd{File: path, Format: "text"}).Run(&out); err != nil {
		t.Fatalf("dump: %v", err)
	}
	want := "0\tdouble(2.5)\n1\tnull\n"
	if out.String() != want {
		t.Fatalf("dump = %q, want %q", out.String(), want)
	}
}

func TestDumpCBOR(t *testing.T) {
	path := writeLiterals(t, `[{"type":"signed","value":7}]`)
	var out bytes.Buffer
	if err := (&dumpCmd{File: path, Format: "cbor"}).Run(&out); err != nil {
		t.Fatalf("dump: %v", err)
	}
	var raw []any
	if err := cbor.Unmarshal(out.Bytes(), &raw); err != nil || len(raw) != 1 {
		t.Fatalf("output is not a cbor array: %x", out.Bytes())
	}
	snaps, err := diag.UnmarshalCBOR(out.Bytes())
	if err != nil || len(snaps) != 1 || snaps[0].Type != "signed" {
		t.Fatalf("snapshots = %+v, %v", snaps, err)
	}
}

func TestDumpRejectsBadLiterals(t *testing.T) {
	path := writeLiterals(t, `[{"type":"nope"}]`)
	if err := (&dumpCmd{File: path, Format: "json"}).Run(&bytes.Buffer{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestCompareMatrix(t *testing.T) {
	path := writeLiterals(t, `[
		{"type":"signed","value":1},
		{"type":"signed","value":1},
		{"type":"string","value":"1"}
	]`)
	var out bytes.Buffer
	if err := (&compareCmd{File: path}).Run(&out); err != nil {
		t.Fatalf("compare: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d rows:\n%s", len(lines), out.String())
	}
	for i, prefix := range []string{" 0 ==.", " 1 ==.", " 2 ..="} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Fatalf("row %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}
