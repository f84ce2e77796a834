package service

import (
	"path"
	"strings"

	"strata-be-svc/internal/errcode"

	"github.com/gabriel-vasile/mimetype"
)

// MaxDocumentSize is the largest accepted eligibility document, 5 MiB
const MaxDocumentSize int64 = 5 * 1024 * 1024

var allowedDocumentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
}

// DocumentUpload is a document received with a registration
type DocumentUpload struct {
	FileName string
	Data     []byte
}

// DetectMimeType sniffs the content type from the bytes, without parameters
func DetectMimeType(data []byte) string {
	mime := mimetype.Detect(data).String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return mime
}

// CheckDocument validates type and size of a document. It performs no I/O.
func CheckDocument(mimeType string, size int64) error {
	if !allowedDocumentTypes[strings.ToLower(mimeType)] {
		return errcode.New(errcode.DocumentInvalidType)
	}
	if size > MaxDocumentSize {
		return errcode.New(errcode.DocumentTooLarge)
	}
	return nil
}

// ValidateDocument sniffs and checks an uploaded document and returns its MIME type
func ValidateDocument(doc *DocumentUpload) (string, error) {
	mime := DetectMimeType(doc.Data)
	if err := CheckDocument(mime, int64(len(doc.Data))); err != nil {
		return "", err
	}
	return mime, nil
}

// IconFor maps a MIME type to the icon of its coarse category
func IconFor(mimeType string) string {
	switch {
	case mimeType == "":
		return "file"
	case strings.Contains(mimeType, "pdf"):
		return "file-pdf"
	case strings.Contains(mimeType, "image"):
		return "file-image"
	default:
		return "file-alt"
	}
}

func documentFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "dokumen"
	}
	return name
}
