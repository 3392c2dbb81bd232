package catalog

import (
	"context"
	"errors"
	"strings"

	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

func (s *Service) CreateApplication(ctx context.Context, input CreateApplicationInput) (ports.ApplicationRecord, error) {
	if ctx == nil {
		return ports.ApplicationRecord{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.ApplicationRecord{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return ports.ApplicationRecord{}, errors.New("catalog repository and unit of work are required")
	}

	name := strings.TrimSpace(input.ApplicationName)
	if name == "" {
		return ports.ApplicationRecord{}, errs.E(errs.KindInvalid, "application name is required")
	}

	var created ports.ApplicationRecord
	err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.CreateApplication(txCtx, ports.ApplicationRecord{
			ApplicationName: name,
			Description:     optionalString(input.Description),
			IsActive:        true,
		})
		return err
	})
	if err != nil {
		return ports.ApplicationRecord{}, err
	}
	return created, nil
}

func (s *Service) GetApplication(ctx context.Context, applicationID uint64) (ports.ApplicationRecord, error) {
	if ctx == nil {
		return ports.ApplicationRecord{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.ApplicationRecord{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return ports.ApplicationRecord{}, errors.New("catalog repository is required")
	}

	return s.repo.GetApplication(ctx, applicationID)
}

func (s *Service) ListApplications(ctx context.Context) ([]ports.ApplicationRecord, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return nil, errors.New("catalog repository is required")
	}

	return s.repo.ListApplications(ctx)
}

// DeleteApplication removes an application and its versions.
func (s *Service) DeleteApplication(ctx context.Context, applicationID uint64) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return errors.New("catalog repository and unit of work are required")
	}

	return s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetApplication(txCtx, applicationID); err != nil {
			return err
		}
		return s.repo.DeleteApplication(txCtx, applicationID)
	})
}

func (s *Service) CreateApplicationVersion(ctx context.Context, input CreateApplicationVersionInput) (ports.ApplicationVersionRecord, error) {
	if ctx == nil {
		return ports.ApplicationVersionRecord{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.ApplicationVersionRecord{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return ports.ApplicationVersionRecord{}, errors.New("catalog repository and unit of work are required")
	}

	version := strings.TrimSpace(input.Version)
	if version == "" {
		return ports.ApplicationVersionRecord{}, errs.E(errs.KindInvalid, "version is required")
	}

	var created ports.ApplicationVersionRecord
	err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetApplication(txCtx, input.ApplicationID); err != nil {
			return err
		}

		var err error
		created, err = s.repo.CreateApplicationVersion(txCtx, ports.ApplicationVersionRecord{
			ApplicationID: input.ApplicationID,
			Version:       version,
			ReleasedDate:  input.ReleasedDate,
			Notes:         optionalString(input.Notes),
			IsActive:      true,
		})
		return err
	})
	if err != nil {
		return ports.ApplicationVersionRecord{}, err
	}
	return created, nil
}

func (s *Service) ListApplicationVersions(ctx context.Context, applicationID uint64) ([]ports.ApplicationVersionRecord, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return nil, errors.New("catalog repository is required")
	}

	return s.repo.ListApplicationVersions(ctx, applicationID)
}
