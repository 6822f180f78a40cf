// Package history normalizes an author's recent posting activity into the
// context values the analyzer takes as input. It is the boundary between
// externally fetched data (a list of post timestamps) and the pure scoring
// core; no network code lives here.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// PostingContext is derived posting-history context ready to feed into
// analyzer.AnalysisOptions.
type PostingContext struct {
	RecentPostCount    int     // posts within the trailing 24h window
	HoursSinceLastPost float64 // hours since the newest post; 24 when no history
}

// FromTimestamps derives a PostingContext from the author's post
// timestamps relative to now. Timestamps in the future are ignored.
func FromTimestamps(timestamps []time.Time, now time.Time) PostingContext {
	ctx := PostingContext{HoursSinceLastPost: 24}

	var newest time.Time
	for _, ts := range timestamps {
		if ts.After(now) {
			continue
		}
		if now.Sub(ts) <= 24*time.Hour {
			ctx.RecentPostCount++
		}
		if ts.After(newest) {
			newest = ts
		}
	}

	if !newest.IsZero() {
		ctx.HoursSinceLastPost = now.Sub(newest).Hours()
	}

	return ctx
}

// LoadFile reads a JSON array of RFC3339 timestamps from path and derives
// a PostingContext relative to now.
func LoadFile(path string, now time.Time) (PostingContext, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PostingContext{}, fmt.Errorf("cannot read history file %s: %w", path, err)
	}

	var stamps []string
	if err := json.Unmarshal(raw, &stamps); err != nil {
		return PostingContext{}, fmt.Errorf("cannot parse history file %s: %w", path, err)
	}

	timestamps := make([]time.Time, 0, len(stamps))
	for _, s := range stamps {
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return PostingContext{}, fmt.Errorf("invalid timestamp %q in %s: %w", s, path, err)
		}
		timestamps = append(timestamps, ts)
	}

	return FromTimestamps(timestamps, now), nil
}
