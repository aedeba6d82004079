package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimelineDate is returned when a timeline entry date is neither a
// calendar date nor an RFC 3339 timestamp.
var ErrInvalidTimelineDate = errors.New("invalid timeline date")

// TimelineEntry is one step of an application's history,
// e.g. {"title": "Phone screen", "date": "2026-03-01"}.
type TimelineEntry struct {
	Title       string `json:"title"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Timeline is the ordered list of entries stored as a JSON document.
type Timeline []TimelineEntry

// Validate checks that every non-empty date can be parsed.
func (t Timeline) Validate() error {
	for i, entry := range t {
		if entry.Date == "" {
			continue
		}
		if _, err := ParseTimelineDate(entry.Date); err != nil {
			return fmt.Errorf("%w at index %d: %q", ErrInvalidTimelineDate, i, entry.Date)
		}
	}
	return nil
}

// ParseTimelineDate accepts "2006-01-02" and RFC 3339 timestamps.
func ParseTimelineDate(s string) (time.Time, error) {
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Value implements [driver.Valuer]. An empty timeline is stored as NULL.
func (t Timeline) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements [sql.Scanner] for JSON stored as text, bytes or NULL.
func (t *Timeline) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported timeline source type %T", src)
	}
}
