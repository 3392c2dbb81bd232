package amendment

import (
	"context"
	"errors"

	domain "amendtrack/internal/domain/amendment"
	"amendtrack/internal/errs"
)

// NextReference returns the next unused reference for the clock's current
// day: AMD-YYYYMMDD-NNN, 1-based, zero-padded to three digits.
//
// The sequence is derived by reading the highest stored reference for
// today, so two callers racing before either commit can mint the same
// value; the unique index on amendment_reference rejects the second
// insert. A stored reference with a non-numeric suffix fails the call.
func (s *Service) NextReference(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return "", errors.New("amendment repository is required")
	}
	if s.clock == nil {
		return "", errors.New("clock is required")
	}

	today := s.clock.Now()
	prefix := domain.ReferencePrefix(today)

	last, found, err := s.repo.LastReferenceWithPrefix(ctx, prefix+"-")
	if err != nil {
		return "", errs.Wrap(err, "find last reference for today")
	}

	seq := 1
	if found {
		lastSeq, err := domain.ParseReferenceSequence(last)
		if err != nil {
			return "", errs.Wrapf(err, "parse stored reference %q", last)
		}
		seq = lastSeq + 1
	}

	return domain.FormatReference(today, seq), nil
}
