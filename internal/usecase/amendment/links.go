package amendment

import (
	"context"
	"errors"

	domain "amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

// LinkAmendments creates a directed, typed edge between two existing
// amendments. At most one link may exist per ordered (source, target) pair;
// the reverse pair and self-links are not prevented.
func (s *Service) LinkAmendments(ctx context.Context, input LinkAmendmentsInput) (ports.LinkRecord, error) {
	if ctx == nil {
		return ports.LinkRecord{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.LinkRecord{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return ports.LinkRecord{}, errors.New("amendment repository and unit of work are required")
	}

	linkType, err := validLinkType(input.LinkType)
	if err != nil {
		return ports.LinkRecord{}, errs.Wrapf(err, "link type %q", input.LinkType)
	}

	var created ports.LinkRecord
	err = s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetAmendment(txCtx, input.AmendmentID); err != nil {
			return err
		}
		if _, err := s.repo.GetAmendment(txCtx, input.LinkedAmendmentID); err != nil {
			return err
		}

		exists, err := s.repo.LinkExists(txCtx, input.AmendmentID, input.LinkedAmendmentID)
		if err != nil {
			return err
		}
		if exists {
			return errs.Wrapf(domain.ErrDuplicateLink, "amendments %d and %d", input.AmendmentID, input.LinkedAmendmentID)
		}

		created, err = s.repo.CreateLink(txCtx, ports.LinkRecord{
			AmendmentID:       input.AmendmentID,
			LinkedAmendmentID: input.LinkedAmendmentID,
			LinkType:          linkType,
		})
		return err
	})
	if err != nil {
		return ports.LinkRecord{}, err
	}
	return created, nil
}

// ListLinks returns the outgoing links of an amendment.
func (s *Service) ListLinks(ctx context.Context, amendmentID uint64) ([]ports.LinkRecord, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return nil, errors.New("amendment repository is required")
	}

	return s.repo.ListLinks(ctx, amendmentID)
}

// RemoveLink deletes a single link row by id.
func (s *Service) RemoveLink(ctx context.Context, linkID uint64) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return errors.New("amendment repository and unit of work are required")
	}

	return s.uow.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteLink(txCtx, linkID)
	})
}
