package options

import (
	"testing"
	"time"
)

func TestGetOn(t *testing.T) {
	o := OnOptions{}
	if on, err := o.GetOn(); err != nil || on != nil {
		t.Fatalf("expected nil for unset, got %v %v", on, err)
	}

	o.OnString = "2026-3"
	on, err := o.GetOn()
	if err != nil {
		t.Fatalf("GetOn: %v", err)
	}
	if on.Year() != 2026 || on.Month() != time.March || on.Day() != 1 {
		t.Fatalf("unexpected month %v", on)
	}

	o.OnString = "2026-03-17"
	if on, err = o.GetOn(); err != nil || on.Day() != 17 {
		t.Fatalf("unexpected day %v %v", on, err)
	}

	o.OnString = "March"
	if _, err := o.GetOn(); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetWithin(t *testing.T) {
	o := ListOptions{}
	if days, err := o.GetWithin(); err != nil || days != 0 {
		t.Fatalf("expected 0 for unset, got %d %v", days, err)
	}
	o.Within = "1w2d"
	if days, err := o.GetWithin(); err != nil || days != 9 {
		t.Fatalf("expected 9, got %d %v", days, err)
	}
	o.Within = "soon"
	if _, err := o.GetWithin(); err == nil {
		t.Fatal("expected error")
	}
}

func TestRequireName(t *testing.T) {
	o := EntryOptions{Name: "  "}
	if o.RequireName() == nil {
		t.Fatal("expected error")
	}
	o.Name = "Boda"
	if err := o.RequireName(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
