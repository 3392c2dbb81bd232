package amendment

import (
	"context"
	"errors"
	"strings"

	domain "amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

// UpdateAmendment applies a partial update. Only fields present in the
// input are written; an empty payload still bumps modified_on.
func (s *Service) UpdateAmendment(ctx context.Context, amendmentID uint64, input UpdateAmendmentInput) (ports.AmendmentRecord, error) {
	updates := map[string]any{}

	if input.Type != nil {
		if !domain.Type(*input.Type).Valid() {
			return ports.AmendmentRecord{}, errs.Wrapf(domain.ErrInvalidType, "type %q", *input.Type)
		}
		updates["amendment_type"] = *input.Type
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return ports.AmendmentRecord{}, domain.ErrDescriptionRequired
		}
		updates["description"] = *input.Description
	}
	if input.Status != nil {
		if !domain.Status(*input.Status).Valid() {
			return ports.AmendmentRecord{}, errs.Wrapf(domain.ErrInvalidStatus, "status %q", *input.Status)
		}
		updates["amendment_status"] = *input.Status
	}
	if input.DevelopmentStatus != nil {
		if !domain.DevelopmentStatus(*input.DevelopmentStatus).Valid() {
			return ports.AmendmentRecord{}, errs.Wrapf(domain.ErrInvalidDevStatus, "development status %q", *input.DevelopmentStatus)
		}
		updates["development_status"] = *input.DevelopmentStatus
	}
	if input.Priority != nil {
		if !domain.Priority(*input.Priority).Valid() {
			return ports.AmendmentRecord{}, errs.Wrapf(domain.ErrInvalidPriority, "priority %q", *input.Priority)
		}
		updates["priority"] = *input.Priority
	}
	if input.Force != nil {
		updates["force"] = *input.Force
	}
	if input.Application != nil {
		updates["application"] = *input.Application
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.ReportedBy != nil {
		updates["reported_by"] = *input.ReportedBy
	}
	if input.AssignedTo != nil {
		updates["assigned_to"] = *input.AssignedTo
	}
	if input.DateReported != nil {
		updates["date_reported"] = *input.DateReported
	}
	if input.DatabaseChanges != nil {
		updates["database_changes"] = *input.DatabaseChanges
	}
	if input.DBUpgradeChanges != nil {
		updates["db_upgrade_changes"] = *input.DBUpgradeChanges
	}
	if input.ReleaseNotes != nil {
		updates["release_notes"] = *input.ReleaseNotes
	}

	return s.applyUpdate(ctx, amendmentID, updates, input.ModifiedBy)
}

// UpdateQA applies a partial update restricted to the QA sign-off fields.
func (s *Service) UpdateQA(ctx context.Context, amendmentID uint64, input QAUpdateInput) (ports.AmendmentRecord, error) {
	updates := map[string]any{}

	if input.QAAssignedID != nil {
		updates["qa_assigned_id"] = *input.QAAssignedID
	}
	if input.QAAssignedDate != nil {
		updates["qa_assigned_date"] = *input.QAAssignedDate
	}
	if input.QATestPlanCheck != nil {
		updates["qa_test_plan_check"] = *input.QATestPlanCheck
	}
	if input.QATestReleaseNotesCheck != nil {
		updates["qa_test_release_notes_check"] = *input.QATestReleaseNotesCheck
	}
	if input.QACompleted != nil {
		updates["qa_completed"] = *input.QACompleted
	}
	if input.QASignature != nil {
		updates["qa_signature"] = *input.QASignature
	}
	if input.QACompletedDate != nil {
		updates["qa_completed_date"] = *input.QACompletedDate
	}
	if input.QANotes != nil {
		updates["qa_notes"] = *input.QANotes
	}
	if input.QATestPlanLink != nil {
		updates["qa_test_plan_link"] = *input.QATestPlanLink
	}

	return s.applyUpdate(ctx, amendmentID, updates, input.ModifiedBy)
}

func (s *Service) applyUpdate(ctx context.Context, amendmentID uint64, updates map[string]any, modifiedBy string) (ports.AmendmentRecord, error) {
	if ctx == nil {
		return ports.AmendmentRecord{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.AmendmentRecord{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil || s.uow == nil {
		return ports.AmendmentRecord{}, errors.New("amendment repository and unit of work are required")
	}

	// The reference is immutable once assigned; it is never part of an
	// update payload.
	updates["modified_on"] = s.clock.Now()
	if trimmed := strings.TrimSpace(modifiedBy); trimmed != "" {
		updates["modified_by"] = trimmed
	}

	var updated ports.AmendmentRecord
	err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.UpdateAmendment(txCtx, amendmentID, updates); err != nil {
			return err
		}
		var err error
		updated, err = s.repo.GetAmendment(txCtx, amendmentID)
		return err
	})
	if err != nil {
		return ports.AmendmentRecord{}, err
	}
	return updated, nil
}
