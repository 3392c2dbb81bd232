package errs

import (
	"errors"
	"testing"
)

func TestKindSurvivesWrapping(t *testing.T) {
	base := E(KindNotFound, "amendment not found")
	wrapped := Wrap(Wrapf(base, "load amendment %d", 7), "handle request")

	if got := KindOf(wrapped); got != KindNotFound {
		t.Fatalf("KindOf() = %v, want KindNotFound", got)
	}
	if !errors.Is(wrapped, base) {
		t.Fatalf("errors.Is() lost the sentinel through wrapping")
	}
}

func TestWithKindTagsExistingError(t *testing.T) {
	err := WithKind(errors.New("UNIQUE constraint failed"), KindConflict)
	if got := KindOf(err); got != KindConflict {
		t.Fatalf("KindOf() = %v, want KindConflict", got)
	}
	if WithKind(nil, KindConflict) != nil {
		t.Fatalf("WithKind(nil) must stay nil")
	}
}

func TestKindOfUntaggedError(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Fatalf("KindOf() = %v, want KindUnknown", got)
	}
}

func TestErrorChainStrings(t *testing.T) {
	err := Wrap(Wrap(errors.New("root"), "inner"), "outer")
	chain := ErrorChainStrings(err)
	if len(chain) != 3 {
		t.Fatalf("chain length = %d, want 3", len(chain))
	}
	if chain[2] != "root" {
		t.Fatalf("innermost = %q, want %q", chain[2], "root")
	}
}
