package images

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriterWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatal(err)
	}
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0xFF, 0xD9}

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		path, err := w.Write(data, "1")
		if err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
		if seen[path] {
			t.Fatalf("duplicate path %s", path)
		}
		seen[path] = true

		if filepath.Dir(path) != dir {
			t.Errorf("path %s not under %s", path, dir)
		}
		if !strings.HasSuffix(path, "_1.jpg") {
			t.Errorf("path %s does not end with _1.jpg", path)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("content mismatch for %s", path)
		}
	}
}

func TestWriterWriteFailure(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatal(err)
	}
	//删除目录后写入必然失败
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	path, err := w.Write([]byte("x"), "scene")
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("err = %v, want *WriteError", err)
	}
}

func TestFileToBase64(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := FileToBase64(path)
	if err != nil {
		t.Fatal(err)
	}
	back, err := DecodeBase64(s)
	if err != nil || string(back) != "hello" {
		t.Errorf("round trip = %q, %v", back, err)
	}
}

func TestWriterReadBase64(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path, err := w.Write([]byte("jpeg"), "11")
	if err != nil {
		t.Fatal(err)
	}
	s, err := w.ReadBase64(filepath.Base(path))
	if err != nil || s != EncodeBase64([]byte("jpeg")) {
		t.Errorf("read = %q, %v", s, err)
	}
	for _, name := range []string{"../x.jpg", "", "a/b.jpg"} {
		if _, err := w.ReadBase64(name); err == nil {
			t.Errorf("%q accepted", name)
		}
	}
}
