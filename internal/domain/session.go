package domain

import "time"

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It serializes as an
// ISO date (YYYY-MM-DD).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// String returns the ISO form of the date.
func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// SessionRecord represents one finished or interrupted profile run.
// Records are immutable once created and append-only in history. The
// profile reference is weak: deleting a profile does not cascade.
type SessionRecord struct {
	ProfileID            string
	PlannedMinutes       int
	CompletedMinutes     int
	CompletedFocusBlocks int
	SessionDate          Date
}
