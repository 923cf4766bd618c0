package transport

import (
	"fmt"
	"strconv"
	"time"
)

var dateLayouts = []string{time.RFC3339Nano, time.DateOnly}

// Date is a request date that accepts either a calendar date (2006-01-02)
// or a full RFC 3339 timestamp. Calendar dates are midnight UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// TimePtr returns nil for a nil Date.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
