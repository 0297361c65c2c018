package ledger

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date format used in storage and on the wire.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component.
type Date struct {
	time.Time
}

// NewDate returns the date for year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string. Out-of-range values such as
// 2025-02-30 are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, NewValidationError("date", fmt.Sprintf("malformed date %q, want YYYY-MM-DD", s))
	}
	return Date{Time: t}, nil
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{Time: d.StartOfMonth().AddDate(0, 1, -1)}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case time.Time:
		*d = DateOf(v)
		return nil
	default:
		return fmt.Errorf("ledger: cannot scan %T into Date", src)
	}
}

func (d *Date) parse(s string) error {
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	return d.parse(string(b))
}

// MarshalJSON overrides the promoted time.Time encoding.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.parse(s)
}
