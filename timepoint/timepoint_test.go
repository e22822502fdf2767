package timepoint

import (
	"testing"
	"time"

	"github.com/Neumenon/variant/variant"
)

func TestMicroseconds(t *testing.T) {
	if Seconds(2).Count() != 2_000_000 {
		t.Errorf("Seconds(2) = %d", Seconds(2).Count())
	}
	if Milliseconds(3).Count() != 3000 {
		t.Errorf("Milliseconds(3) = %d", Milliseconds(3).Count())
	}
	if got := Seconds(1).Add(Milliseconds(500)); got.Count() != 1_500_000 {
		t.Errorf("Add = %d", got.Count())
	}
	if FromDuration(1500*time.Nanosecond) != 1 {
		t.Errorf("FromDuration truncation wrong")
	}
}

func TestTimePointArithmeticAndComparison(t *testing.T) {
	a := FromEpoch(Seconds(10))
	b := a.Add(Milliseconds(250))

	if !a.Before(b) || !b.After(a) || a.Equal(b) {
		t.Fatal("ordering wrong")
	}
	if b.Sub(a) != Milliseconds(250) {
		t.Fatalf("Sub = %d", b.Sub(a).Count())
	}
	if !Minimum().Before(Maximum()) {
		t.Fatal("Minimum not before Maximum")
	}
}

func TestISOString(t *testing.T) {
	tests := []struct {
		name string
		tp   TimePoint
		want string
	}{
		{"epoch", Minimum(), "1970-01-01T00:00:00"},
		{"whole seconds", FromEpoch(Seconds(86400 + 61)), "1970-01-02T00:01:01"},
		{"fractional", FromEpoch(Microseconds(1_500_000)), "1970-01-01T00:00:01.500000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tp.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
			back, err := FromISOString(tt.tp.String())
			if err != nil {
				t.Fatalf("FromISOString: %v", err)
			}
			if !back.Equal(tt.tp) {
				t.Fatalf("round trip = %v, want %v", back, tt.tp)
			}
		})
	}
}

func TestFromISOString_FractionDigits(t *testing.T) {
	tests := []struct {
		in   string
		want Microseconds
	}{
		{"1970-01-01T00:00:01.5", Microseconds(1_500_000)},
		{"1970-01-01T00:00:01.123", Microseconds(1_123_000)},
		{"1970-01-01T00:00:01.123456", Microseconds(1_123_456)},
		{"1970-01-01T00:00:01.123456789", Microseconds(1_123_456)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tp, err := FromISOString(tt.in)
			if err != nil {
				t.Fatalf("FromISOString: %v", err)
			}
			if tp.TimeSinceEpoch() != tt.want {
				t.Fatalf("TimeSinceEpoch() = %d, want %d", tp.TimeSinceEpoch().Count(), tt.want.Count())
			}
		})
	}
}

func TestFromISOString_Invalid(t *testing.T) {
	if _, err := FromISOString("not a time"); err == nil {
		t.Fatal("parse of garbage succeeded")
	}
}

func TestVariantRoundTrip(t *testing.T) {
	tp := FromEpoch(Seconds(1_700_000_000))
	v, err := variant.New(tp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !v.IsString() {
		t.Fatalf("encoded tag = %s, want string", v.Type())
	}
	got, err := variant.As[TimePoint](v)
	if err != nil {
		t.Fatalf("As[TimePoint]: %v", err)
	}
	if !got.Equal(tp) {
		t.Fatalf("round trip = %v, want %v", got, tp)
	}
}

func TestTimeConversion(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 30, 15, 123456000, time.UTC)
	tp := FromTime(now)
	if !tp.Time().Equal(now) {
		t.Fatalf("Time() = %v, want %v", tp.Time(), now)
	}
}
