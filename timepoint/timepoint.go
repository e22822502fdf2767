// Package timepoint provides a microsecond-resolution wall-clock time
// point and duration with ISO-8601 text conversion. It participates in
// variant conversion through a single Marshaler/Unmarshaler pair that
// renders the time point as its ISO-8601 string.
package timepoint

import (
	"fmt"
	"math"
	"time"

	"github.com/Neumenon/variant/variant"
)

// Microseconds is a duration counted in microseconds.
type Microseconds int64

// MaxMicroseconds is the largest representable duration.
const MaxMicroseconds = Microseconds(math.MaxInt64)

// Seconds returns a duration of s seconds.
func Seconds(s int64) Microseconds {
	return Microseconds(s * 1_000_000)
}

// Milliseconds returns a duration of ms milliseconds.
func Milliseconds(ms int64) Microseconds {
	return Microseconds(ms * 1000)
}

// FromDuration converts a time.Duration, truncating to microseconds.
func FromDuration(d time.Duration) Microseconds {
	return Microseconds(d / time.Microsecond)
}

// Count returns the raw microsecond count.
func (m Microseconds) Count() int64 {
	return int64(m)
}

// Add returns the sum of two durations.
func (m Microseconds) Add(o Microseconds) Microseconds {
	return m + o
}

// Duration converts to a time.Duration. Durations near the maximum
// exceed time.Duration's nanosecond range and overflow.
func (m Microseconds) Duration() time.Duration {
	return time.Duration(m) * time.Microsecond
}

// TimePoint is a wall-clock instant stored as microseconds since the
// Unix epoch. The zero TimePoint is the epoch itself (Minimum).
type TimePoint struct {
	elapsed Microseconds
}

// FromEpoch returns the time point e microseconds after the epoch.
func FromEpoch(e Microseconds) TimePoint {
	return TimePoint{elapsed: e}
}

// Now returns the current wall-clock time point.
func Now() TimePoint {
	return TimePoint{elapsed: Microseconds(time.Now().UnixMicro())}
}

// Minimum returns the earliest representable time point.
func Minimum() TimePoint {
	return TimePoint{}
}

// Maximum returns the latest representable time point.
func Maximum() TimePoint {
	return TimePoint{elapsed: MaxMicroseconds}
}

// FromTime converts a time.Time, truncating to microseconds.
func FromTime(t time.Time) TimePoint {
	return TimePoint{elapsed: Microseconds(t.UnixMicro())}
}

// Time converts to a time.Time in UTC.
func (t TimePoint) Time() time.Time {
	return time.UnixMicro(int64(t.elapsed)).UTC()
}

// TimeSinceEpoch returns the elapsed duration since the epoch.
func (t TimePoint) TimeSinceEpoch() Microseconds {
	return t.elapsed
}

// Add returns the time point m after t.
func (t TimePoint) Add(m Microseconds) TimePoint {
	return TimePoint{elapsed: t.elapsed + m}
}

// Sub returns the duration from o to t.
func (t TimePoint) Sub(o TimePoint) Microseconds {
	return t.elapsed - o.elapsed
}

// Before reports whether t is earlier than o.
func (t TimePoint) Before(o TimePoint) bool { return t.elapsed < o.elapsed }

// After reports whether t is later than o.
func (t TimePoint) After(o TimePoint) bool { return t.elapsed > o.elapsed }

// Equal reports whether t and o are the same instant.
func (t TimePoint) Equal(o TimePoint) bool { return t.elapsed == o.elapsed }

const (
	isoLayout      = "2006-01-02T15:04:05"
	isoMicroLayout = "2006-01-02T15:04:05.000000"
)

// String renders the time point as an ISO-8601 UTC timestamp with
// seconds precision, appending six fractional digits only when the
// microsecond remainder is nonzero.
func (t TimePoint) String() string {
	tm := t.Time()
	if int64(t.elapsed)%1_000_000 != 0 {
		return tm.Format(isoMicroLayout)
	}
	return tm.Format(isoLayout)
}

// FromISOString parses an ISO-8601 timestamp, with or without
// fractional seconds (any number of fractional digits; precision
// beyond microseconds is truncated). The timestamp is interpreted as
// UTC.
func FromISOString(s string) (TimePoint, error) {
	// time.Parse accepts an optional fractional second after the
	// seconds field even when the layout omits it.
	tm, err := time.ParseInLocation(isoLayout, s, time.UTC)
	if err != nil {
		return TimePoint{}, fmt.Errorf("timepoint: parse %q: %w", s, err)
	}
	return FromTime(tm), nil
}

// MarshalVariant serializes the time point as its ISO-8601 string.
func (t TimePoint) MarshalVariant() (variant.Value, error) {
	return variant.Str(t.String()), nil
}

// UnmarshalVariant deserializes from an ISO-8601 string value.
func (t *TimePoint) UnmarshalVariant(v variant.Value) error {
	s, err := v.AsString()
	if err != nil {
		return err
	}
	p, err := FromISOString(s)
	if err != nil {
		return err
	}
	*t = p
	return nil
}
