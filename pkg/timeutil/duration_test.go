package timeutil

import (
	"testing"
)

func TestParseWindowEmpty(t *testing.T) {
	days, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 0 || label != "" {
		t.Fatalf("expected no window, got %d %q", days, label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	days, label, err := ParseWindow("1w2d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 9 {
		t.Fatalf("expected 9 days, got %d", days)
	}
	if label != "1w2d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowCanonicalLabel(t *testing.T) {
	days, label, err := ParseWindow("10 days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 10 || label != "1w3d" {
		t.Fatalf("expected 10 days labelled 1w3d, got %d %q", days, label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
