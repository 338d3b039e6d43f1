// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"fmt"
	"time"
)

// Month identifies a calendar month (year + month). It partitions all
// month-scoped ledger collections. Two Months are equal iff they share the
// same year and month; ordering is chronological.
type Month time.Time

// NewMonth returns the Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which t occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string into a Month.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	t := time.Time(m)
	return fmt.Sprintf("%04d-%02d", t.Year(), t.Month())
}

// DaysInMonth returns the number of days in the month.
func (m Month) DaysInMonth() int {
	t := time.Time(m)
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date returns the YYYY-MM-DD date string for the given day of this month.
// The day is not range-checked; callers clamp via DaysInMonth first.
func (m Month) Date(day int) string {
	return fmt.Sprintf("%s-%02d", m.String(), day)
}

// Contains reports whether the given calendar date falls inside this month.
func (m Month) Contains(t time.Time) bool {
	return MonthOf(t).Equal(m)
}

// Equal reports whether both values identify the same calendar month.
func (m Month) Equal(n Month) bool {
	a, b := time.Time(m), time.Time(n)
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Before reports whether m is chronologically before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// IsZero reports whether the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}
