package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSizeLimitedWriterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	w, err := newSizeLimitedWriter(path, 1)
	if err != nil {
		t.Fatalf("newSizeLimitedWriter: %v", err)
	}
	defer w.Close()

	for _, line := range []string{"one\n", "two\n"} {
		if _, err := w.Write([]byte(line)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "one\ntwo\n" {
		t.Fatalf("file = %q", data)
	}
}

func TestSizeLimitedWriterRestartsAtLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	w, err := newSizeLimitedWriter(path, 1)
	if err != nil {
		t.Fatalf("newSizeLimitedWriter: %v", err)
	}
	defer w.Close()
	// Small limit for the test; the constructor floor is 1 MB.
	w.maxBytes = 16

	if _, err := w.Write(bytes.Repeat([]byte("a"), 12)); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if _, err := w.Write([]byte("fresh")); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "fresh" {
		t.Fatalf("file = %q, want only the post-restart write", data)
	}
}

func TestSizeLimitedWriterResumesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	w, err := newSizeLimitedWriter(path, 1)
	if err != nil {
		t.Fatalf("newSizeLimitedWriter: %v", err)
	}
	defer w.Close()
	if w.size != 4 {
		t.Fatalf("tracked size = %d, want 4", w.size)
	}

	if _, err := w.Write([]byte("new\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "old\nnew\n" {
		t.Fatalf("file = %q", data)
	}
}
