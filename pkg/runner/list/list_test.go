package list

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/store"
)

func init() {
	color.NoColor = true
}

func now() time.Time {
	return time.Date(2026, time.June, 10, 9, 30, 0, 0, time.UTC)
}

func seeded(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Load(store.NewConfig(filepath.Join(t.TempDir(), "dates.json")))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s := app.Service{Persistence: p, Now: now}
	for _, d := range []struct{ name, date, cat string }{
		{"Soon", "2026-06-12", "Work"},
		{"Later", "2026-09-01", ""},
		{"Gone", "2026-06-01", ""},
	} {
		if _, err := s.Add(context.Background(), d.name, d.date, "", d.cat); err != nil {
			t.Fatalf("add %s: %v", d.name, err)
		}
	}
	return p
}

func TestListUpcoming(t *testing.T) {
	var buf bytes.Buffer
	l := List{Persistence: seeded(t), Now: now, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Upcoming - 2 dates") {
		t.Fatalf("expected upcoming title:\n%s", out)
	}
	if strings.Contains(out, "Gone") {
		t.Fatalf("did not expect past dates:\n%s", out)
	}
	if strings.Index(out, "Soon") > strings.Index(out, "Later") {
		t.Fatalf("expected soonest first:\n%s", out)
	}
}

func TestListAllJSON(t *testing.T) {
	var buf bytes.Buffer
	l := List{All: true, JSON: true, Persistence: seeded(t), Now: now, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	var got app.Listing
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(got.Past) != 1 || got.Past[0].Entry.Name != "Gone" || got.Past[0].Days != -9 {
		t.Fatalf("unexpected past group %+v", got.Past)
	}
	if len(got.Upcoming) != 2 || got.Upcoming[0].Days != 2 {
		t.Fatalf("unexpected upcoming group %+v", got.Upcoming)
	}
}

func TestListCategory(t *testing.T) {
	var buf bytes.Buffer
	l := List{Category: "Work", Persistence: seeded(t), Now: now, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "Upcoming in Work - 1 date") || strings.Contains(out, "Later") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	l = List{Category: "Missing", Persistence: seeded(t), Now: now, Out: &buf}
	if err := l.Do(context.Background()); err == nil {
		t.Fatal("expected unknown category to fail")
	}
}
