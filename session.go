package amplitude

import (
	"strconv"
	"time"
)

type sessionKind uint8

const (
	sessionUnset sessionKind = iota
	sessionMillis
	sessionTime
)

// SessionID is the start of the session an event belongs to. Amplitude
// expects it as milliseconds since the Unix epoch; callers may hold either
// that number or the start timestamp.
type SessionID struct {
	kind   sessionKind
	millis int64
	start  time.Time
}

// SessionFromMillis returns a SessionID rendered verbatim as ms.
func SessionFromMillis(ms int64) SessionID {
	return SessionID{kind: sessionMillis, millis: ms}
}

// SessionFromTime returns a SessionID rendered as the epoch milliseconds of
// t. A zero t yields an unset SessionID.
func SessionFromTime(t time.Time) SessionID {
	if t.IsZero() {
		return SessionID{}
	}
	return SessionID{kind: sessionTime, start: t}
}

// IsZero reports whether no session was given.
func (s SessionID) IsZero() bool {
	return s.kind == sessionUnset
}

// Millis returns the session start in epoch milliseconds, or 0 when unset.
func (s SessionID) Millis() int64 {
	switch s.kind {
	case sessionMillis:
		return s.millis
	case sessionTime:
		return unixMillis(s.start)
	default:
		return 0
	}
}

// Time returns the start timestamp when the SessionID was built from one.
func (s SessionID) Time() (time.Time, bool) {
	return s.start, s.kind == sessionTime
}

func (s SessionID) String() string {
	if s.IsZero() {
		return ""
	}
	return strconv.FormatInt(s.Millis(), 10)
}

// unixMillis converts t to milliseconds since the epoch, truncating toward
// zero. Integer arithmetic keeps the millisecond component exact.
func unixMillis(t time.Time) int64 {
	sec, nsec := t.Unix(), int64(t.Nanosecond())
	if sec < 0 && nsec > 0 {
		sec++
		nsec -= int64(time.Second)
	}
	return sec*1000 + nsec/int64(time.Millisecond)
}
