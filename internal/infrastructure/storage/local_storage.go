package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"amendtrack/internal/errs"
)

// LocalStorage stores document bytes on the local filesystem under a single
// root directory. Paths recorded in the database are relative to that root.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("storage root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errs.Wrapf(err, "create storage root %q", root)
	}
	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(relPath)
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid storage path %q", relPath)
	}
	return filepath.Join(s.root, cleaned), nil
}

// Save consumes the full reader into the target file and returns the number
// of bytes written. A partially written file is removed on failure.
func (s *LocalStorage) Save(ctx context.Context, relPath string, r io.Reader) (int64, error) {
	if ctx == nil {
		return 0, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return 0, errs.Wrap(err, "check context")
	}

	target, err := s.resolve(relPath)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, errs.Wrapf(err, "create directory for %q", relPath)
	}

	f, err := os.Create(target)
	if err != nil {
		return 0, errs.Wrapf(err, "create file %q", relPath)
	}

	size, err := io.Copy(f, r)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(target)
		return 0, errs.Wrapf(err, "write file %q", relPath)
	}
	return size, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *LocalStorage) Remove(ctx context.Context, relPath string) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	target, err := s.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errs.Wrapf(err, "remove file %q", relPath)
	}
	return nil
}
