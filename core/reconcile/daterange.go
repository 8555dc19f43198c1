package reconcile

import (
	"fmt"
	"strings"
	"time"
)

// DateRange restricts sales to an inclusive [Start, End] window on the sale date.
// A nil bound is open.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// ParseDateRange parses optional start/end bounds given as YYYY-MM-DD or RFC 3339.
// A date-only end bound covers the whole day. It returns nil when both are empty.
func ParseDateRange(start, end string) (*DateRange, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" && end == "" {
		return nil, nil
	}

	rng := &DateRange{}
	if start != "" {
		t, _, err := parseBound(start)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", start, err)
		}
		rng.Start = &t
	}
	if end != "" {
		t, dateOnly, err := parseBound(end)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", end, err)
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		rng.End = &t
	}

	if rng.Start != nil && rng.End != nil && rng.Start.After(*rng.End) {
		return nil, fmt.Errorf("start date %s is after end date %s", start, end)
	}
	return rng, nil
}

func parseBound(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, false, nil
}

// IsZero reports whether the range has no bounds at all.
func (r *DateRange) IsZero() bool {
	return r == nil || (r.Start == nil && r.End == nil)
}

// Contains reports whether t falls inside the range, bounds included.
func (r *DateRange) Contains(t time.Time) bool {
	if r == nil {
		return true
	}
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// Key returns a stable identifier for caching reports per range.
func (r *DateRange) Key() string {
	if r.IsZero() {
		return "all"
	}
	var b strings.Builder
	if r.Start != nil {
		b.WriteString(r.Start.UTC().Format(time.RFC3339Nano))
	}
	b.WriteString("|")
	if r.End != nil {
		b.WriteString(r.End.UTC().Format(time.RFC3339Nano))
	}
	return b.String()
}
