package helpers

import (
	"testing"
	"time"
)

func TestGetNullString(t *testing.T) {
	if GetNullString(nil).Valid {
		t.Fatalf("nil pointer must map to NULL")
	}
	s := "notes"
	ns := GetNullString(&s)
	if !ns.Valid || ns.String != "notes" {
		t.Fatalf("unexpected %+v", ns)
	}
	empty := ""
	if !GetNullString(&empty).Valid {
		t.Fatalf("an explicit empty string is a value, not NULL")
	}
}

func TestGetNullInt64(t *testing.T) {
	if GetNullInt64(nil).Valid {
		t.Fatalf("nil pointer must map to NULL")
	}
	var zero int64
	if n := GetNullInt64(&zero); !n.Valid || n.Int64 != 0 {
		t.Fatalf("explicit zero must be kept, got %+v", n)
	}
}

func TestTimeScanner(t *testing.T) {
	want := time.Date(2026, 3, 1, 9, 30, 15, 250000000, time.UTC)

	cases := []struct {
		name string
		src  interface{}
	}{
		{name: "time value", src: want},
		{name: "sqlite text", src: "2026-03-01 09:30:15.250"},
		{name: "offset text", src: "2026-03-01 09:30:15.25+00:00"},
		{name: "rfc3339 bytes", src: []byte("2026-03-01T09:30:15.25Z")},
		{name: "time string with monotonic", src: "2026-03-01 09:30:15.25 +0000 UTC m=+0.000123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got time.Time
			if err := ScanTime(&got).Scan(tc.src); err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if !got.Equal(want) {
				t.Fatalf("got %v, want %v", got, want)
			}
		})
	}

	var got time.Time
	if err := ScanTime(&got).Scan(nil); err == nil {
		t.Fatalf("expected error for NULL")
	}
	if err := ScanTime(&got).Scan("yesterday"); err == nil {
		t.Fatalf("expected error for garbage")
	}
}
