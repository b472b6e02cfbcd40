package model

import (
	"strings"
	"time"
)

// localTimeLayout matches the backend's LocalDateTime serialization, which
// carries no zone ("2025-11-30T19:30:00").  Fractional seconds may or may
// not be present depending on how the document was written.
const localTimeLayout = "2006-01-02T15:04:05"

// LocalTime wraps time.Time so JSON round-trips use the backend's zoneless
// format instead of RFC 3339.
type LocalTime struct {
	time.Time
}

// NewLocalTime truncates t to second precision, the resolution the backend
// stores.
func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{t.Truncate(time.Second)}
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	if lt.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + lt.Format(localTimeLayout) + `"`), nil
}

func (lt *LocalTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		lt.Time = time.Time{}
		return nil
	}
	// Drop fractional seconds if the backend included them.
	if i := strings.IndexByte(s, '.'); i > 0 {
		s = s[:i]
	}
	t, err := time.ParseInLocation(localTimeLayout, s, time.Local)
	if err != nil {
		return err
	}
	lt.Time = t
	return nil
}
