package derive

import (
	"testing"
	"time"
)

func TestNormalizeTimestamp(t *testing.T) {
	t.Run("zulu suffix treated as utc", func(t *testing.T) {
		got := NormalizeTimestamp("2026-03-01T17:30:45Z")
		want := time.Date(2026, 3, 1, 17, 30, 45, 0, time.UTC).In(time.Local).Format(time.RFC3339)
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("sub-second precision truncated", func(t *testing.T) {
		got := NormalizeTimestamp("2026-03-01T17:30:45.987654Z")
		want := time.Date(2026, 3, 1, 17, 30, 45, 0, time.UTC).In(time.Local).Format(time.RFC3339)
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("explicit offset honored", func(t *testing.T) {
		got := NormalizeTimestamp("2026-03-01T12:30:45-05:00")
		want := time.Date(2026, 3, 1, 17, 30, 45, 0, time.UTC).In(time.Local).Format(time.RFC3339)
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("offsetless input assumed local", func(t *testing.T) {
		got := NormalizeTimestamp("2026-03-01T12:30:45")
		want := time.Date(2026, 3, 1, 12, 30, 45, 0, time.Local).Format(time.RFC3339)
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		if got := NormalizeTimestamp(""); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
		if got := NormalizeTimestamp("   "); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
	})

	t.Run("unparsable input", func(t *testing.T) {
		if got := NormalizeTimestamp("next tuesday"); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
	})
}
