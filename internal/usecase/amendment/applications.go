package amendment

import (
	"context"
	"errors"
	"strings"

	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

// AddApplicationLink associates an amendment with an application, either a
// catalogued row or just a free-text name, with reported/applied versions.
func (s *Service) AddApplicationLink(ctx context.Context, input AddApplicationLinkInput) (ports.ApplicationLinkRecord, error) {
	if ctx == nil {
		return ports.ApplicationLinkRecord{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.ApplicationLinkRecord{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return ports.ApplicationLinkRecord{}, errors.New("amendment repository and unit of work are required")
	}

	name := strings.TrimSpace(input.ApplicationName)
	if name == "" {
		return ports.ApplicationLinkRecord{}, errs.E(errs.KindInvalid, "application name is required")
	}

	var created ports.ApplicationLinkRecord
	err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetAmendment(txCtx, input.AmendmentID); err != nil {
			return err
		}

		var err error
		created, err = s.repo.AddApplicationLink(txCtx, ports.ApplicationLinkRecord{
			AmendmentID:       input.AmendmentID,
			ApplicationID:     input.ApplicationID,
			ApplicationName:   name,
			ReportedVersion:   optionalString(input.ReportedVersion),
			AppliedVersion:    optionalString(input.AppliedVersion),
			DevelopmentStatus: optionalString(input.DevelopmentStatus),
		})
		return err
	})
	if err != nil {
		return ports.ApplicationLinkRecord{}, err
	}
	return created, nil
}

// ListApplicationLinks returns the application associations of an amendment.
func (s *Service) ListApplicationLinks(ctx context.Context, amendmentID uint64) ([]ports.ApplicationLinkRecord, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return nil, errors.New("amendment repository is required")
	}

	return s.repo.ListApplicationLinks(ctx, amendmentID)
}
