package utils

import (
	"fmt"
	"strings"
	"time"
)

// FormatCurrency renders an amount as "$1,234.56". Negative amounts
// keep the sign before the symbol.
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupDigits(whole), cents)
}

// FormatNumber renders an integer with thousands separators.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + groupDigits(-n)
	}
	return groupDigits(n)
}

func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatDate renders an RFC 3339 timestamp as "Feb 2, 2026". Invalid
// or empty input renders as "".
func FormatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(iso))
	if err != nil {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// RelativeTime renders how long ago a timestamp was, falling back to
// FormatDate beyond a week.
func RelativeTime(iso string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(iso))
	if err != nil {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	default:
		return FormatDate(iso)
	}
}

// Truncate shortens text to maxLen runes with a trailing ellipsis.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if maxLen <= 0 || len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
