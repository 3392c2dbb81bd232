package amendment

import (
	"context"
	"errors"
	"strings"

	domain "amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

// AddProgress appends a progress entry to an existing amendment.
func (s *Service) AddProgress(ctx context.Context, input AddProgressInput) (ports.ProgressRecord, error) {
	if ctx == nil {
		return ports.ProgressRecord{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.ProgressRecord{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return ports.ProgressRecord{}, errors.New("amendment repository and unit of work are required")
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return ports.ProgressRecord{}, domain.ErrDescriptionRequired
	}

	now := s.clock.Now()
	startDate := input.StartDate
	if startDate == nil {
		startDate = &now
	}

	var createdBy *string
	if trimmed := strings.TrimSpace(input.CreatedBy); trimmed != "" {
		createdBy = &trimmed
	}

	var created ports.ProgressRecord
	err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetAmendment(txCtx, input.AmendmentID); err != nil {
			return err
		}

		var err error
		created, err = s.repo.AddProgress(txCtx, ports.ProgressRecord{
			AmendmentID: input.AmendmentID,
			StartDate:   startDate,
			Description: description,
			Notes:       optionalString(input.Notes),
			CreatedBy:   createdBy,
		})
		return err
	})
	if err != nil {
		return ports.ProgressRecord{}, err
	}
	return created, nil
}

// ListProgress returns an amendment's progress entries, newest first.
func (s *Service) ListProgress(ctx context.Context, amendmentID uint64) ([]ports.ProgressRecord, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return nil, errors.New("amendment repository is required")
	}

	return s.repo.ListProgress(ctx, amendmentID)
}
