package filestorage

import "mime/multipart"

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile stores an uploaded file under a collision-safe key and
	// returns that key. The original filename is the caller's to keep.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a stored file by key. Deleting a missing file is
	// not an error.
	DeleteFile(key string) error

	// FullPath returns the full filesystem path for a storage key
	FullPath(key string) string
}
