package history

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestFromTimestamps(t *testing.T) {
	tests := []struct {
		name       string
		timestamps []time.Time
		wantCount  int
		wantHours  float64
	}{
		{
			name:      "no history defaults to a fresh return",
			wantCount: 0,
			wantHours: 24,
		},
		{
			name: "single recent post",
			timestamps: []time.Time{
				testNow.Add(-3 * time.Hour),
			},
			wantCount: 1,
			wantHours: 3,
		},
		{
			name: "posts outside the 24h window are not counted",
			timestamps: []time.Time{
				testNow.Add(-2 * time.Hour),
				testNow.Add(-30 * time.Hour),
				testNow.Add(-48 * time.Hour),
			},
			wantCount: 1,
			wantHours: 2,
		},
		{
			name: "old posts still set hours since last",
			timestamps: []time.Time{
				testNow.Add(-40 * time.Hour),
			},
			wantCount: 0,
			wantHours: 40,
		},
		{
			name: "future timestamps are ignored",
			timestamps: []time.Time{
				testNow.Add(2 * time.Hour),
				testNow.Add(-1 * time.Hour),
			},
			wantCount: 1,
			wantHours: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTimestamps(tt.timestamps, testNow)
			if got.RecentPostCount != tt.wantCount {
				t.Errorf("RecentPostCount = %d, want %d", got.RecentPostCount, tt.wantCount)
			}
			if math.Abs(got.HoursSinceLastPost-tt.wantHours) > 1e-9 {
				t.Errorf("HoursSinceLastPost = %v, want %v", got.HoursSinceLastPost, tt.wantHours)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	content := `["2025-06-01T10:00:00Z", "2025-06-01T06:00:00Z", "2025-05-28T12:00:00Z"]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path, testNow)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if got.RecentPostCount != 2 {
		t.Errorf("RecentPostCount = %d, want 2", got.RecentPostCount)
	}
	if math.Abs(got.HoursSinceLastPost-2) > 1e-9 {
		t.Errorf("HoursSinceLastPost = %v, want 2", got.HoursSinceLastPost)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "absent.json"), testNow); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"not": "an array"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad, testNow); err == nil {
		t.Error("expected error for non-array JSON")
	}

	stamp := filepath.Join(dir, "stamp.json")
	if err := os.WriteFile(stamp, []byte(`["yesterday"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(stamp, testNow); err == nil {
		t.Error("expected error for an unparseable timestamp")
	}
}
