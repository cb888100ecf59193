package bakala

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the (year, month) pair the date falls in.
func (d Date) Month() Month { return Month{d.y, d.m} }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	t, err := time.Parse(readDateFormat, str)
	if err != nil {
		// Fall back on the full timestamp format the browser exports used.
		t, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: expected %q", str, DateFormat)
		}
	}
	return NewDate(t.Date()), nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Month identifies a calendar month: the (year, month) pair of a date.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns the Month for a given year and month.
func NewMonth(year int, month time.Month) Month {
	d := NewDate(year, month, 1)
	return Month{d.y, d.m}
}

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// String formats the month as "2006-01".
func (m Month) String() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Contains reports whether the date d falls in this calendar month.
func (m Month) Contains(d Date) bool { return d.y == m.y && d.m == m.m }

// ParseMonth parses a Month from a "2006-01" string.
func ParseMonth(str string) (Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(str))
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: expected \"2006-01\"", str)
	}
	return NewMonth(t.Year(), t.Month()), nil
}
