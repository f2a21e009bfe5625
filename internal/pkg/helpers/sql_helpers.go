package helpers

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// GetNullString converts a string pointer to sql.NullString.
// If the pointer is nil, returns an empty NullString.
func GetNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// GetNullInt64 converts an int64 pointer to sql.NullInt64.
// If the pointer is nil, returns an empty NullInt64.
func GetNullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

// timeLayouts covers what the supported drivers hand back for timestamp
// columns when they do not decode them into time.Time themselves.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// TimeScanner scans a timestamp column that may arrive as time.Time or text.
type TimeScanner struct {
	Dest *time.Time
}

// ScanTime returns a scan destination writing into dest.
func ScanTime(dest *time.Time) *TimeScanner {
	return &TimeScanner{Dest: dest}
}

// Scan implements sql.Scanner
func (s *TimeScanner) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*s.Dest = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		return fmt.Errorf("unexpected NULL timestamp")
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (s *TimeScanner) parse(v string) error {
	// time.Time.String() output may carry a monotonic clock suffix.
	if i := strings.Index(v, " m="); i >= 0 {
		v = v[:i]
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			*s.Dest = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", v)
}
