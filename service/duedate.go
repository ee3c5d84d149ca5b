package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateOnly = "2006-01-02"

// DueDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates, the
// latter as UTC midnight. null and "" decode to the zero value. Set records
// that the key was present, so a non-pointer DueDate can tell an absent key
// from an explicit null.
type DueDate struct {
	time.Time
	Set bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DueDate) UnmarshalJSON(b []byte) error {
	d.Set = true
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("dueDate must be a date string")
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return fmt.Errorf("dueDate %q is not a valid date", s)
	}
	d.Time = t
	return nil
}

// Cleared reports an explicit null or "".
func (d *DueDate) Cleared() bool {
	return d != nil && d.Set && d.IsZero()
}

// Ptr returns nil for the zero value.
func (d *DueDate) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
