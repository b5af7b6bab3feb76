package report

import (
	"fmt"
	"testing"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m 0s"},
		{1800, "30m 0s"},
		{3600, "1h 0m 0s"},
		{3725, "1h 2m 5s"},
		{86399, "23h 59m 59s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Duration(tt.seconds); got != tt.want {
				t.Errorf("Duration(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

// Parsing the rendered string back must recover the h/m/s decomposition of
// the input.
func TestDurationRoundTrip(t *testing.T) {
	for _, seconds := range []int{0, 1, 59, 60, 61, 599, 3599, 3600, 3661, 7325, 100000} {
		rendered := Duration(seconds)

		var h, m, s int
		var err error
		switch {
		case countRune(rendered, 'h') == 1:
			_, err = fmt.Sscanf(rendered, "%dh %dm %ds", &h, &m, &s)
		case countRune(rendered, 'm') == 1:
			_, err = fmt.Sscanf(rendered, "%dm %ds", &m, &s)
		default:
			_, err = fmt.Sscanf(rendered, "%ds", &s)
		}
		if err != nil {
			t.Fatalf("Duration(%d) = %q: parse failed: %v", seconds, rendered, err)
		}

		if h != seconds/3600 || m != (seconds%3600)/60 || s != seconds%60 {
			t.Errorf("Duration(%d) = %q: recovered %dh %dm %ds", seconds, rendered, h, m, s)
		}
	}
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}

func TestDistance(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{12345, "12.35 km"},
		{5000, "5.00 km"},
		{999, "1.00 km"},
		{0, "N/A"},
		{-10, "N/A"},
	}
	for _, tt := range tests {
		if got := Distance(tt.meters); got != tt.want {
			t.Errorf("Distance(%v) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func TestSigned(t *testing.T) {
	if got := Signed(5.0, 1); got != "+5.0" {
		t.Errorf("got %q, want +5.0", got)
	}
	if got := Signed(-5.0, 1); got != "-5.0" {
		t.Errorf("got %q, want -5.0", got)
	}
	if got := Signed(0, 1); got != "+0.0" {
		t.Errorf("got %q, want +0.0", got)
	}
}

func TestZoneTimes(t *testing.T) {
	t.Run("omits zero zones and joins with pipes", func(t *testing.T) {
		got := ZoneTimes([]float64{300, 0, 1200, 0, 0, 0, 0})
		want := "Z1: 5m 0s | Z3: 20m 0s"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("all zero is not available", func(t *testing.T) {
		if got := ZoneTimes([]float64{0, 0, 0}); got != NotAvailable {
			t.Errorf("got %q, want %q", got, NotAvailable)
		}
	})

	t.Run("empty is not available", func(t *testing.T) {
		if got := ZoneTimes(nil); got != NotAvailable {
			t.Errorf("got %q, want %q", got, NotAvailable)
		}
	})

	t.Run("ignores entries past Z7", func(t *testing.T) {
		got := ZoneTimes([]float64{0, 0, 0, 0, 0, 0, 60, 999})
		if got != "Z7: 1m 0s" {
			t.Errorf("got %q, want Z7 only", got)
		}
	})
}

func TestValue(t *testing.T) {
	if got, ok := Value(52.0); !ok || got != "52" {
		t.Errorf("got %q (%v), want 52", got, ok)
	}
	if got, ok := Value(52.5); !ok || got != "52.5" {
		t.Errorf("got %q (%v), want 52.5", got, ok)
	}
	if got, ok := Value("good"); !ok || got != "good" {
		t.Errorf("got %q (%v), want good", got, ok)
	}
	if _, ok := Value(nil); ok {
		t.Error("nil should not render")
	}
	if _, ok := Value(map[string]any{}); ok {
		t.Error("non-scalar should not render")
	}
}
