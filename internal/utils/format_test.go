package utils

import (
	"testing"
	"time"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{249.99, "$249.99"},
		{54239.5, "$54,239.50"},
		{1234567.89, "$1,234,567.89"},
		{0, "$0.00"},
		{-45.5, "-$45.50"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Fatalf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1547); got != "1,547" {
		t.Fatalf("got %q", got)
	}
	if got := FormatNumber(892); got != "892" {
		t.Fatalf("got %q", got)
	}
	if got := FormatNumber(-12345); got != "-12,345" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2026-02-02T10:30:00Z"); got != "Feb 2, 2026" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDate("not-a-date"); got != "" {
		t.Fatalf("invalid input rendered %q", got)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		iso  string
		want string
	}{
		{"2026-02-02T11:59:30Z", "just now"},
		{"2026-02-02T11:30:00Z", "30 min ago"},
		{"2026-02-02T07:00:00Z", "5 hours ago"},
		{"2026-01-31T12:00:00Z", "2 days ago"},
		{"2026-01-10T12:00:00Z", "Jan 10, 2026"},
	}
	for _, tc := range cases {
		if got := RelativeTime(tc.iso, now); got != tc.want {
			t.Fatalf("RelativeTime(%s) = %q, want %q", tc.iso, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("a long description here", 6); got != "a long..." {
		t.Fatalf("got %q", got)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"admin@example.com", "a.b@c.io"}
	invalid := []string{"", "no-at", "a @b.com", "a@b"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Fatalf("%q should be valid", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Fatalf("%q should be invalid", e)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "Password is required"},
		{"Ab1", "Password must be at least 8 characters"},
		{"alllower1x", "Password must contain at least one uppercase letter"},
		{"ALLUPPER1X", "Password must contain at least one lowercase letter"},
		{"NoDigitsHere", "Password must contain at least one number"},
		{"GoodPass1", ""},
	}
	for _, tc := range cases {
		if got := ValidatePassword(tc.in); got != tc.want {
			t.Fatalf("ValidatePassword(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
