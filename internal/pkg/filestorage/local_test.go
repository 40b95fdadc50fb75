package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// makeFileHeader builds a real multipart.FileHeader by round-tripping a
// multipart form through an http request.
func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("failed to parse multipart form: %v", err)
	}

	return req.MultipartForm.File["file"][0]
}

func TestSaveFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage returned error: %v", err)
	}

	header := makeFileHeader(t, "notes.pdf", "pdf content")
	key, err := storage.SaveFile(header)
	if err != nil {
		t.Fatalf("SaveFile returned error: %v", err)
	}

	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("expected key to keep the original extension, got %q", key)
	}
	if key == "notes.pdf" {
		t.Error("key must not be the client filename")
	}

	data, err := os.ReadFile(storage.FullPath(key))
	if err != nil {
		t.Fatalf("failed to read stored file: %v", err)
	}
	if string(data) != "pdf content" {
		t.Errorf("stored content mismatch: %q", data)
	}
}

func TestSaveFileDistinctKeys(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage returned error: %v", err)
	}

	first, err := storage.SaveFile(makeFileHeader(t, "same.txt", "one"))
	if err != nil {
		t.Fatalf("SaveFile returned error: %v", err)
	}
	second, err := storage.SaveFile(makeFileHeader(t, "same.txt", "two"))
	if err != nil {
		t.Fatalf("SaveFile returned error: %v", err)
	}

	if first == second {
		t.Error("two uploads with the same filename must not share a key")
	}

	one, _ := os.ReadFile(storage.FullPath(first))
	two, _ := os.ReadFile(storage.FullPath(second))
	if string(one) != "one" || string(two) != "two" {
		t.Errorf("files overwrote each other: %q, %q", one, two)
	}
}

func TestSaveFileNil(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage returned error: %v", err)
	}

	if _, err := storage.SaveFile(nil); err == nil {
		t.Error("expected error for nil file header")
	}
}

func TestDeleteFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage returned error: %v", err)
	}

	key, err := storage.SaveFile(makeFileHeader(t, "gone.txt", "bye"))
	if err != nil {
		t.Fatalf("SaveFile returned error: %v", err)
	}

	if err := storage.DeleteFile(key); err != nil {
		t.Fatalf("DeleteFile returned error: %v", err)
	}
	if _, err := os.Stat(storage.FullPath(key)); !os.IsNotExist(err) {
		t.Error("file still exists after delete")
	}

	// Deleting again is a no-op
	if err := storage.DeleteFile(key); err != nil {
		t.Errorf("second DeleteFile returned error: %v", err)
	}
	if err := storage.DeleteFile(""); err != nil {
		t.Errorf("DeleteFile with empty key returned error: %v", err)
	}
}

func TestDeleteFileTraversal(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base)
	if err != nil {
		t.Fatalf("NewLocalStorage returned error: %v", err)
	}

	outside := filepath.Join(filepath.Dir(base), "outside.txt")
	if err := os.WriteFile(outside, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("failed to create outside file: %v", err)
	}
	t.Cleanup(func() { os.Remove(outside) })

	// A traversal key is reduced to its base name inside the storage dir
	if err := storage.DeleteFile("../outside.txt"); err != nil {
		t.Fatalf("DeleteFile returned error: %v", err)
	}
	if _, err := os.Stat(outside); err != nil {
		t.Error("file outside the storage directory was deleted")
	}
}

func TestFullPath(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base)
	if err != nil {
		t.Fatalf("NewLocalStorage returned error: %v", err)
	}

	got := storage.FullPath("abc.txt")
	want := filepath.Join(base, "abc.txt")
	if got != want {
		t.Errorf("FullPath = %q, want %q", got, want)
	}

	if got := storage.FullPath("../../etc/passwd"); got != filepath.Join(base, "passwd") {
		t.Errorf("FullPath did not strip traversal components: %q", got)
	}
}
