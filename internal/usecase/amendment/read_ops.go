package amendment

import (
	"context"
	"errors"

	"amendtrack/internal/errs"
	"amendtrack/internal/ports"
)

// GetAmendment returns an amendment with all of its child collections.
func (s *Service) GetAmendment(ctx context.Context, amendmentID uint64) (AmendmentDetail, error) {
	if ctx == nil {
		return AmendmentDetail{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return AmendmentDetail{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return AmendmentDetail{}, errors.New("amendment repository is required")
	}

	record, err := s.repo.GetAmendment(ctx, amendmentID)
	if err != nil {
		return AmendmentDetail{}, err
	}
	return s.loadDetail(ctx, record)
}

// GetAmendmentByReference resolves a reference string to the full detail.
func (s *Service) GetAmendmentByReference(ctx context.Context, reference string) (AmendmentDetail, error) {
	if ctx == nil {
		return AmendmentDetail{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return AmendmentDetail{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return AmendmentDetail{}, errors.New("amendment repository is required")
	}

	record, err := s.repo.GetAmendmentByReference(ctx, reference)
	if err != nil {
		return AmendmentDetail{}, err
	}
	return s.loadDetail(ctx, record)
}

func (s *Service) loadDetail(ctx context.Context, record ports.AmendmentRecord) (AmendmentDetail, error) {
	progress, err := s.repo.ListProgress(ctx, record.AmendmentID)
	if err != nil {
		return AmendmentDetail{}, err
	}
	applications, err := s.repo.ListApplicationLinks(ctx, record.AmendmentID)
	if err != nil {
		return AmendmentDetail{}, err
	}
	links, err := s.repo.ListLinks(ctx, record.AmendmentID)
	if err != nil {
		return AmendmentDetail{}, err
	}
	documents, err := s.repo.ListDocuments(ctx, record.AmendmentID)
	if err != nil {
		return AmendmentDetail{}, err
	}

	return AmendmentDetail{
		Amendment:    record,
		Progress:     progress,
		Applications: applications,
		Links:        links,
		Documents:    documents,
	}, nil
}

// ListAmendments runs the filtered/sorted/paginated listing. Total always
// reflects the unpaginated filtered result; a skip past the end yields an
// empty page, not an error.
func (s *Service) ListAmendments(ctx context.Context, filter ports.AmendmentFilter) (ListResult, error) {
	if ctx == nil {
		return ListResult{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ListResult{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return ListResult{}, errors.New("amendment repository is required")
	}

	items, total, err := s.repo.ListAmendments(ctx, filter)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Items: items,
		Total: total,
		Skip:  filter.Skip,
		Limit: filter.Limit,
	}, nil
}

// Stats returns the dashboard rollup.
func (s *Service) Stats(ctx context.Context) (ports.AmendmentStats, error) {
	if ctx == nil {
		return ports.AmendmentStats{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.AmendmentStats{}, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return ports.AmendmentStats{}, errors.New("amendment repository is required")
	}

	return s.repo.AmendmentStats(ctx)
}
