package amendment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"amendtrack/internal/errs"
)

const referenceTag = "AMD"

// ReferencePrefix returns the date-scoped prefix for a reference minted on
// the given day, e.g. "AMD-20260823".
func ReferencePrefix(day time.Time) string {
	return fmt.Sprintf("%s-%s", referenceTag, day.Format("20060102"))
}

// FormatReference builds the full reference for a day and 1-based sequence.
// Sequences are zero-padded to three digits; a fourth digit simply lengthens
// the string, there is no upper bound.
func FormatReference(day time.Time, seq int) string {
	return fmt.Sprintf("%s-%03d", ReferencePrefix(day), seq)
}

// ParseReferenceSequence extracts the numeric sequence from the segment
// after the last '-'. A non-numeric or empty trailing segment is an error,
// never silently skipped.
func ParseReferenceSequence(ref string) (int, error) {
	trimmed := strings.TrimSpace(ref)
	idx := strings.LastIndex(trimmed, "-")
	if idx < 0 || idx == len(trimmed)-1 {
		return 0, errs.Wrapf(ErrMalformedReference, "reference %q", ref)
	}

	seq, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil || seq < 0 {
		return 0, errs.Wrapf(ErrMalformedReference, "reference %q", ref)
	}
	return seq, nil
}
