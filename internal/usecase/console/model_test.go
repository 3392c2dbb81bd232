package console

import (
	"testing"

	domain "amendtrack/internal/domain/amendment"
)

func TestNextStatusFilterCycles(t *testing.T) {
	seen := map[string]bool{}
	current := ""
	for range statusCycle {
		current = nextStatusFilter(current)
		if seen[current] {
			t.Fatalf("status %q repeated before cycle completed", current)
		}
		seen[current] = true
	}
	if current != "" {
		t.Fatalf("cycle did not return to the unfiltered state, got %q", current)
	}

	if got := nextStatusFilter(string(domain.StatusOpen)); got != string(domain.StatusInProgress) {
		t.Fatalf("nextStatusFilter(Open) = %q", got)
	}
	// Unknown values reset to unfiltered.
	if got := nextStatusFilter("Bananas"); got != "" {
		t.Fatalf("nextStatusFilter(unknown) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate(short) = %q", got)
	}
	if got := truncate("much longer text", 5); got != "much…" {
		t.Fatalf("truncate(long) = %q", got)
	}
}

func TestOrDash(t *testing.T) {
	if got := orDash(nil); got != "-" {
		t.Fatalf("orDash(nil) = %q", got)
	}
	blank := "   "
	if got := orDash(&blank); got != "-" {
		t.Fatalf("orDash(blank) = %q", got)
	}
	value := "J Smith"
	if got := orDash(&value); got != "J Smith" {
		t.Fatalf("orDash(value) = %q", got)
	}
}
