package amendment

import (
	"context"
	"errors"
	"strings"

	domain "amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

// CreateAmendment allocates a reference, applies workflow defaults
// (Open / Not Started / Medium) and persists the amendment, all inside one
// transaction. Audit timestamps come from the injected clock so created_on,
// modified_on and a defaulted date_reported agree.
func (s *Service) CreateAmendment(ctx context.Context, input CreateAmendmentInput) (ports.AmendmentRecord, error) {
	if ctx == nil {
		return ports.AmendmentRecord{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.AmendmentRecord{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return ports.AmendmentRecord{}, errors.New("amendment repository and unit of work are required")
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return ports.AmendmentRecord{}, domain.ErrDescriptionRequired
	}

	amendmentType := domain.Type(input.Type)
	if !amendmentType.Valid() {
		return ports.AmendmentRecord{}, errs.Wrapf(domain.ErrInvalidType, "type %q", input.Type)
	}

	status := domain.StatusOpen
	if input.Status != "" {
		status = domain.Status(input.Status)
		if !status.Valid() {
			return ports.AmendmentRecord{}, errs.Wrapf(domain.ErrInvalidStatus, "status %q", input.Status)
		}
	}
	devStatus := domain.DevNotStarted
	if input.DevelopmentStatus != "" {
		devStatus = domain.DevelopmentStatus(input.DevelopmentStatus)
		if !devStatus.Valid() {
			return ports.AmendmentRecord{}, errs.Wrapf(domain.ErrInvalidDevStatus, "development status %q", input.DevelopmentStatus)
		}
	}
	priority := domain.PriorityMedium
	if input.Priority != "" {
		priority = domain.Priority(input.Priority)
		if !priority.Valid() {
			return ports.AmendmentRecord{}, errs.Wrapf(domain.ErrInvalidPriority, "priority %q", input.Priority)
		}
	}

	now := s.clock.Now()
	dateReported := input.DateReported
	if dateReported == nil {
		dateReported = &now
	}

	var createdBy *string
	if trimmed := strings.TrimSpace(input.CreatedBy); trimmed != "" {
		createdBy = &trimmed
	}

	var created ports.AmendmentRecord
	err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		reference, err := s.NextReference(txCtx)
		if err != nil {
			return err
		}

		created, err = s.repo.CreateAmendment(txCtx, ports.AmendmentRecord{
			Reference:         reference,
			Type:              amendmentType,
			Description:       description,
			Status:            status,
			DevelopmentStatus: devStatus,
			Priority:          priority,
			Force:             optionalString(input.Force),
			Application:       optionalString(input.Application),
			Notes:             optionalString(input.Notes),
			ReportedBy:        optionalString(input.ReportedBy),
			AssignedTo:        optionalString(input.AssignedTo),
			DateReported:      dateReported,
			DatabaseChanges:   input.DatabaseChanges,
			DBUpgradeChanges:  input.DBUpgradeChanges,
			ReleaseNotes:      optionalString(input.ReleaseNotes),
			CreatedBy:         createdBy,
			CreatedOn:         now,
			ModifiedOn:        now,
		})
		return err
	})
	if err != nil {
		return ports.AmendmentRecord{}, err
	}

	return created, nil
}
