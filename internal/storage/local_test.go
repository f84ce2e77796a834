package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalUploaderUploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	u, err := NewLocalUploader(dir, "/uploads/")
	if err != nil {
		t.Fatalf("new uploader: %v", err)
	}

	res, err := u.Upload(context.Background(), UploadInput{
		Key:         "documents/abc/bil.pdf",
		Body:        []byte("%PDF-1.4"),
		ContentType: "application/pdf",
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if res.URL != "/uploads/documents/abc/bil.pdf" {
		t.Fatalf("unexpected url %q", res.URL)
	}
	if res.Size != 8 {
		t.Fatalf("unexpected size %d", res.Size)
	}

	if _, err := os.Stat(filepath.Join(dir, "documents", "abc", "bil.pdf")); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}

	if err := u.Delete(context.Background(), res.Key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := u.Delete(context.Background(), res.Key); err != nil {
		t.Fatalf("deleting a missing file should not fail: %v", err)
	}
}

func TestLocalUploaderKeepsKeysInsideRoot(t *testing.T) {
	dir := t.TempDir()
	u, err := NewLocalUploader(dir, "/uploads")
	if err != nil {
		t.Fatalf("new uploader: %v", err)
	}

	res, err := u.Upload(context.Background(), UploadInput{Key: "../../etc/passwd", Body: []byte("x")})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if res.Key != "etc/passwd" {
		t.Fatalf("expected key to be confined to the root, got %q", res.Key)
	}

	if _, err := u.Upload(context.Background(), UploadInput{Key: "/", Body: []byte("x")}); err == nil {
		t.Fatal("expected an error for an empty key")
	}
}
