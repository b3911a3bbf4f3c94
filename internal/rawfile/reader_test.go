package rawfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadLinesSplitsAndDropsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.txt")
	if err := os.WriteFile(path, []byte("line one\n\nline two\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "line one" || lines[1] != "line two" {
		t.Errorf("ReadLines = %v, want [\"line one\" \"line two\"]", lines)
	}
}

func TestReadLinesDecodesLatin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.txt")
	// 0xE9 is Latin-1 for 'e' with acute accent (U+00E9).
	if err := os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9, '\n'}, 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "café" {
		t.Errorf("ReadLines = %v, want [\"caf\\u00e9\"]", lines)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	if _, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
