package amplitude

import (
	"testing"
	"time"
)

func TestSessionID(t *testing.T) {
	t.Run("zero value is unset", func(t *testing.T) {
		var s SessionID
		if !s.IsZero() || s.Millis() != 0 || s.String() != "" {
			t.Errorf("expected unset session, got %v", s)
		}
	})

	t.Run("zero time is unset", func(t *testing.T) {
		if !SessionFromTime(time.Time{}).IsZero() {
			t.Error("expected zero time to yield an unset session")
		}
	})

	t.Run("millis are verbatim", func(t *testing.T) {
		s := SessionFromMillis(1396381378123)
		if s.IsZero() || s.Millis() != 1396381378123 {
			t.Errorf("unexpected session: %v", s)
		}
		if _, ok := s.Time(); ok {
			t.Error("expected no start time")
		}
	})

	t.Run("time is rendered as millis", func(t *testing.T) {
		start := time.Date(2014, 4, 1, 19, 42, 58, 123456789, time.UTC)
		s := SessionFromTime(start)
		if s.Millis() != 1396381378123 {
			t.Errorf("expected 1396381378123, got %d", s.Millis())
		}
		if got, ok := s.Time(); !ok || !got.Equal(start) {
			t.Errorf("expected start time %v, got %v", start, got)
		}
		if s.String() != "1396381378123" {
			t.Errorf("unexpected string: %s", s)
		}
	})
}

func TestUnixMillis(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want int64
	}{
		{"epoch", time.Unix(0, 0), 0},
		{"whole seconds", time.Unix(1451606400, 0), 1451606400000},
		{"one millisecond", time.Unix(1451606400, int64(time.Millisecond)), 1451606400001},
		{"truncates sub-millisecond", time.Unix(1451606400, 1999999), 1451606400001},
		{"truncates toward zero before epoch", time.Unix(-1, 500*int64(time.Microsecond)), -999},
		{"exact negative millis", time.Unix(-2, int64(time.Second)-int64(time.Millisecond)), -1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unixMillis(tt.in); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
