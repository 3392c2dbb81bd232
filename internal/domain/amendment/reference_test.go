package amendment

import (
	"errors"
	"testing"
	"time"
)

func TestFormatReference(t *testing.T) {
	day := time.Date(2023, 12, 15, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		seq  int
		want string
	}{
		{1, "AMD-20231215-001"},
		{42, "AMD-20231215-042"},
		{999, "AMD-20231215-999"},
		// overflow past three digits just lengthens the string
		{1000, "AMD-20231215-1000"},
	}
	for _, tc := range cases {
		if got := FormatReference(day, tc.seq); got != tc.want {
			t.Fatalf("FormatReference(%d) = %q, want %q", tc.seq, got, tc.want)
		}
	}
}

func TestParseReferenceSequenceRoundTrip(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	for _, seq := range []int{1, 9, 10, 99, 100, 999, 1000} {
		ref := FormatReference(day, seq)
		got, err := ParseReferenceSequence(ref)
		if err != nil {
			t.Fatalf("ParseReferenceSequence(%q) error = %v", ref, err)
		}
		if got != seq {
			t.Fatalf("ParseReferenceSequence(%q) = %d, want %d", ref, got, seq)
		}
		if FormatReference(day, got) != ref {
			t.Fatalf("round trip changed reference %q", ref)
		}
	}
}

func TestParseReferenceSequenceMalformed(t *testing.T) {
	for _, ref := range []string{"", "AMD", "AMD-20231215-", "AMD-20231215-xyz", "AMD-20231215-0x1"} {
		if _, err := ParseReferenceSequence(ref); !errors.Is(err, ErrMalformedReference) {
			t.Fatalf("ParseReferenceSequence(%q) error = %v, want ErrMalformedReference", ref, err)
		}
	}
}

func TestReferencePrefixUsesDate(t *testing.T) {
	day := time.Date(2026, 8, 23, 23, 59, 0, 0, time.UTC)
	if got := ReferencePrefix(day); got != "AMD-20260823" {
		t.Fatalf("ReferencePrefix() = %q", got)
	}
}
