package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the wire formats the database and the frontend use for
// date values. Tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date is a time.Time that tolerates the mixed date encodings produced by
// the stored routines (plain dates) and the HTTP clients (ISO timestamps).
type Date struct {
	time.Time
}

// NewDate wraps t in a Date.
func NewDate(t time.Time) Date { return Date{Time: t} }

// ParseDate parses a query-string date value. An empty value yields nil
// rather than an error so optional filters can be omitted.
func ParseDate(s string) (*Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return &Date{Time: t}, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date value %q", s)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized date value %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(time.RFC3339) + `"`), nil
}

// Value implements driver.Valuer so Date binds as a plain timestamp.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner for row-set reads.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case time.Time:
		d.Time = v
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
