package amendment

import (
	"context"
	"errors"
	"log/slog"

	"amendtrack/internal/bootstrap/logging"
	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

// DeleteAmendment removes the amendment and its children (progress entries,
// application links, outgoing links, document rows) in one transaction.
// Stored document files are removed best-effort after the commit; a failed
// file removal is logged, never surfaced.
func (s *Service) DeleteAmendment(ctx context.Context, amendmentID uint64) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return errors.New("amendment repository and unit of work are required")
	}

	var files ports.DeletedAmendmentFiles
	err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		files, err = s.repo.DeleteAmendment(txCtx, amendmentID)
		return err
	})
	if err != nil {
		return err
	}

	if s.files != nil {
		for _, path := range files.DocumentPaths {
			if err := s.files.Remove(ctx, path); err != nil {
				logging.Warn(ctx, "failed to remove document file",
					slog.String("path", path),
					slog.Any("err", errs.Loggable(err)),
				)
			}
		}
	}
	return nil
}
