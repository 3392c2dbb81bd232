package catalog

import (
	"context"
	"errors"
	"strings"

	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

func (s *Service) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (ports.EmployeeRecord, error) {
	if ctx == nil {
		return ports.EmployeeRecord{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.EmployeeRecord{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return ports.EmployeeRecord{}, errors.New("catalog repository and unit of work are required")
	}

	name := strings.TrimSpace(input.EmployeeName)
	if name == "" {
		return ports.EmployeeRecord{}, errs.E(errs.KindInvalid, "employee name is required")
	}

	var created ports.EmployeeRecord
	err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.CreateEmployee(txCtx, ports.EmployeeRecord{
			EmployeeName: name,
			Initials:     optionalString(input.Initials),
			Email:        optionalString(input.Email),
			WindowsLogin: optionalString(input.WindowsLogin),
			IsActive:     true,
		})
		return err
	})
	if err != nil {
		return ports.EmployeeRecord{}, err
	}
	return created, nil
}

func (s *Service) ListEmployees(ctx context.Context) ([]ports.EmployeeRecord, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return nil, errors.New("catalog repository is required")
	}

	return s.repo.ListEmployees(ctx)
}
