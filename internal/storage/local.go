package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalUploader writes files below a directory that is served statically under PublicBaseURL
type LocalUploader struct {
	dir     string
	baseURL string
}

// NewLocalUploader creates the root directory if needed
func NewLocalUploader(dir, publicBaseURL string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalUploader{
		dir:     dir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Dir returns the root directory files are written to
func (u *LocalUploader) Dir() string {
	return u.dir
}

// Upload writes the body to dir/key and returns its public URL
func (u *LocalUploader) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := cleanKey(input.Key)
	if err != nil {
		return nil, err
	}

	full := filepath.Join(u.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create dir: %w", err)
	}
	if err := os.WriteFile(full, input.Body, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		Key:  key,
		URL:  u.baseURL + "/" + key,
		Size: int64(len(input.Body)),
	}, nil
}

// Delete removes a previously uploaded file; missing files are not an error
func (u *LocalUploader) Delete(ctx context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(u.dir, filepath.FromSlash(key))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return cleaned, nil
}
