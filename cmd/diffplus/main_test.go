package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dacharyc/diffplus"
)

func boolp(b bool) *bool       { return &b }
func intp(i int) *int          { return &i }
func stringp(s string) *string { return &s }

func testFlags() cliFlags {
	return cliFlags{
		side:             boolp(false),
		inline:           boolp(false),
		stats:            boolp(false),
		lang:             stringp(""),
		lineNumbers:      boolp(false),
		context:          intp(diffplus.DefaultContext),
		width:            intp(0),
		ignoreWhitespace: boolp(false),
		ignoreCase:       boolp(false),
		wordDiff:         boolp(false),
		noColor:          boolp(false),
		quiet:            boolp(false),
		help:             boolp(false),
		version:          boolp(false),
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"empty", "", nil},
		{"single line no newline", "a", []string{"a"}},
		{"trailing newline dropped", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"blank lines preserved", "a\n\nb\n", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitLines(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestDecodeText(t *testing.T) {
	if got, err := decodeText([]byte("plain utf-8 ✓")); err != nil || got != "plain utf-8 ✓" {
		t.Errorf("decodeText utf-8 = %q, %v", got, err)
	}

	// 0xE9 is not valid UTF-8 on its own; Windows-1252 decodes it as é.
	got, err := decodeText([]byte{'c', 'a', 'f', 0xE9})
	if err != nil {
		t.Fatalf("decodeText fallback failed: %v", err)
	}
	if got != "café" {
		t.Errorf("decodeText fallback = %q, want %q", got, "café")
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := readFile(path)
	if err != nil {
		t.Fatalf("readFile: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"one", "two"}) {
		t.Errorf("readFile = %q", lines)
	}

	if _, err := readFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("readFile on missing path returned nil error")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0B"},
		{512, "512B"},
		{1023, "1023B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{1024*1024 - 1, "1024.0KB"},
		{1024 * 1024, "1.0MB"},
		{5*1024*1024 + 512*1024, "5.5MB"},
	}

	for _, tt := range tests {
		if got := formatSize(tt.size); got != tt.expected {
			t.Errorf("formatSize(%d) = %q, want %q", tt.size, got, tt.expected)
		}
	}
}

func TestFileInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sized.txt")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := fileInfo(path); got != "2.0KB" {
		t.Errorf("fileInfo = %q, want %q", got, "2.0KB")
	}
	if got := fileInfo(filepath.Join(dir, "missing.txt")); got != "N/A" {
		t.Errorf("fileInfo on missing path = %q, want %q", got, "N/A")
	}
}

func TestBuildOptions(t *testing.T) {
	f := testFlags()
	*f.context = 5
	*f.ignoreCase = true
	*f.wordDiff = true

	opts, err := buildOptions(f)
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}
	if opts.Context != 5 || !opts.IgnoreCase || !opts.WordDiff || opts.IgnoreWhitespace {
		t.Errorf("buildOptions = %+v", opts)
	}
}

func TestBuildOptionsRejectsNegativeContext(t *testing.T) {
	f := testFlags()
	*f.context = -1

	if _, err := buildOptions(f); err == nil {
		t.Error("buildOptions accepted a negative context")
	}
}
