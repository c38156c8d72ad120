package common

import "testing"

func TestFormatLongDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-06-05", "June 5, 2025"},
		{"2025-06-06", "June 6, 2025"},
		{"2025-12-31", "December 31, 2025"},
		{"2025-06-05T00:00:00Z", "June 5, 2025"},
		{"1/2/2020", "January 2, 2020"},
		{"", ""},
		{"not-a-date", "not-a-date"},
	}

	for _, tt := range tests {
		if got := FormatLongDate(tt.in); got != tt.want {
			t.Errorf("FormatLongDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{120.5, "$120.50"},
		{1234.56, "$1,234.56"},
		{1234567.89, "$1,234,567.89"},
		{-99.99, "-$99.99"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatGuests(t *testing.T) {
	tests := []struct {
		adults   int
		children int
		want     string
	}{
		{1, 0, "1 Adult"},
		{2, 0, "2 Adults"},
		{2, 1, "2 Adults, 1 Child"},
		{1, 3, "1 Adult, 3 Children"},
		{0, 0, ""},
	}

	for _, tt := range tests {
		if got := FormatGuests(tt.adults, tt.children); got != tt.want {
			t.Errorf("FormatGuests(%d, %d) = %q, want %q", tt.adults, tt.children, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 5); got != "hello…" {
		t.Errorf("Truncate = %q, want %q", got, "hello…")
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q, want %q", got, "short")
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("Truncate with max 0 = %q, want empty", got)
	}
}

func TestSilentLoggerDoesNotPanic(t *testing.T) {
	l := NewSilentLogger()
	l.Info().Str("key", "value").Msg("silent")
	l.Error().Msg("also silent")
}
