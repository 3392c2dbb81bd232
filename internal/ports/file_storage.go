package ports

import (
	"context"
	"io"
)

// FileStorage stores document bytes outside the record store.
type FileStorage interface {
	// Save consumes the full reader and returns the stored size in bytes.
	Save(ctx context.Context, relPath string, r io.Reader) (int64, error)
	// Remove deletes a stored file. Removing a missing file is not an error.
	Remove(ctx context.Context, relPath string) error
}
