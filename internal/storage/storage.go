package storage

import "context"

// UploadInput describes a single file to persist
type UploadInput struct {
	Key         string
	Body        []byte
	ContentType string
}

// UploadResult describes the persisted file
type UploadResult struct {
	Key  string
	URL  string
	Size int64
}

// Uploader stores blobs and returns a public URL for them
type Uploader interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}
