package storage

import "context"

// StorageService defines the interface for media storage operations. The
// application stores only the durable URLs it returns, never raw bytes.
type StorageService interface {
	// UploadFile uploads a local file into destFolder and returns a
	// durable download URL.
	UploadFile(ctx context.Context, localFilePath, destFolder, resourceType string) (string, error)
	// DeleteFile deletes a previously uploaded file by public ID.
	DeleteFile(ctx context.Context, publicID string) error
}
