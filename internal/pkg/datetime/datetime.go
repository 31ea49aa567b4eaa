package datetime

import (
	"fmt"
	"time"
)

// Layout is the wire format for instants: ISO-8601 local date-time without a
// timezone offset, as the gateway sends and expects it.
const Layout = "2006-01-02T15:04:05"

// LocalDateTime is a time.Time that marshals to and from the offset-free
// ISO-8601 layout used across the HTTP surface.
type LocalDateTime struct {
	time.Time
}

// From wraps a time.Time.
func From(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t}
}

func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(Layout) + `"`), nil
}

func (d *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date-time literal %s", s)
	}
	t, err := time.ParseInLocation(Layout, s[1:len(s)-1], time.Local)
	if err != nil {
		return fmt.Errorf("invalid date-time %s: %w", s, err)
	}
	d.Time = t
	return nil
}
