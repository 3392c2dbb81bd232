package amendment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"amendtrack/internal/bootstrap/logging"
	domain "amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

// UploadDocument stores the file bytes, then records the metadata row. If
// the metadata insert fails the just-written file is removed best-effort so
// no orphaned bytes are left behind.
func (s *Service) UploadDocument(ctx context.Context, input UploadDocumentInput) (ports.DocumentRecord, error) {
	if ctx == nil {
		return ports.DocumentRecord{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.DocumentRecord{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return ports.DocumentRecord{}, errors.New("amendment repository and unit of work are required")
	}
	if s.files == nil {
		return ports.DocumentRecord{}, errors.New("file storage is required")
	}
	if input.Content == nil {
		return ports.DocumentRecord{}, errs.E(errs.KindInvalid, "document content is required")
	}

	name := strings.TrimSpace(input.DocumentName)
	if name == "" {
		name = strings.TrimSpace(input.OriginalFilename)
	}
	if name == "" {
		return ports.DocumentRecord{}, errs.E(errs.KindInvalid, "document name is required")
	}

	docType := domain.DocOther
	if input.DocumentType != "" {
		docType = domain.DocumentType(input.DocumentType)
		if !docType.Valid() {
			return ports.DocumentRecord{}, errs.Wrapf(domain.ErrInvalidDocType, "document type %q", input.DocumentType)
		}
	}

	if _, err := s.repo.GetAmendment(ctx, input.AmendmentID); err != nil {
		return ports.DocumentRecord{}, err
	}

	relPath := fmt.Sprintf("amd-%d/%s%s", input.AmendmentID, uuid.NewString(), filepath.Ext(input.OriginalFilename))

	size, err := s.files.Save(ctx, relPath, input.Content)
	if err != nil {
		return ports.DocumentRecord{}, errs.Wrap(err, "store document file")
	}

	var uploadedBy *string
	if trimmed := strings.TrimSpace(input.UploadedBy); trimmed != "" {
		uploadedBy = &trimmed
	}

	var created ports.DocumentRecord
	err = s.uow.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.AddDocument(txCtx, ports.DocumentRecord{
			AmendmentID:      input.AmendmentID,
			DocumentName:     name,
			OriginalFilename: input.OriginalFilename,
			FilePath:         relPath,
			FileSize:         size,
			MimeType:         optionalString(input.MimeType),
			DocumentType:     docType,
			Description:      optionalString(input.Description),
			UploadedBy:       uploadedBy,
		})
		return err
	})
	if err != nil {
		if removeErr := s.files.Remove(ctx, relPath); removeErr != nil {
			logging.Warn(ctx, "failed to remove orphaned document file",
				slog.String("path", relPath),
				slog.Any("err", errs.Loggable(removeErr)),
			)
		}
		return ports.DocumentRecord{}, err
	}
	return created, nil
}

// ListDocuments returns an amendment's document metadata, newest first.
func (s *Service) ListDocuments(ctx context.Context, amendmentID uint64) ([]ports.DocumentRecord, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return nil, errors.New("amendment repository is required")
	}

	return s.repo.ListDocuments(ctx, amendmentID)
}

// RemoveDocument deletes the metadata row, then the stored file
// (best-effort).
func (s *Service) RemoveDocument(ctx context.Context, documentID uint64) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return errors.New("amendment repository and unit of work are required")
	}

	var path string
	err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		record, err := s.repo.GetDocument(txCtx, documentID)
		if err != nil {
			return err
		}
		path = record.FilePath
		return s.repo.DeleteDocument(txCtx, documentID)
	})
	if err != nil {
		return err
	}

	if s.files != nil && path != "" {
		if err := s.files.Remove(ctx, path); err != nil {
			logging.Warn(ctx, "failed to remove document file",
				slog.String("path", path),
				slog.Any("err", errs.Loggable(err)),
			)
		}
	}
	return nil
}
