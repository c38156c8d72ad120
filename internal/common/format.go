package common

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the raw date formats accepted from the booking API and
// the search form, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"1/2/2006",
}

// FormatLongDate formats a raw date string into its long display form,
// e.g. "2025-06-05" -> "June 5, 2025". Unparseable input is returned
// unchanged so a bad upstream value degrades to raw text, not an error page.
func FormatLongDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2, 2006")
		}
	}

	return raw
}

// FormatMoney formats a float as a dollar amount with comma separators.
func FormatMoney(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents >= 100 {
		whole++
		cents -= 100
	}

	s := fmt.Sprintf("%d", whole)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}

	if negative {
		return fmt.Sprintf("-$%s.%02d", s, cents)
	}
	return fmt.Sprintf("$%s.%02d", s, cents)
}

// FormatGuests renders adult/child counts for display,
// e.g. "2 Adults, 1 Child" or "1 Adult".
func FormatGuests(adults, children int) string {
	if adults <= 0 && children <= 0 {
		return ""
	}

	label := "Adult"
	if adults > 1 {
		label = "Adults"
	}
	out := fmt.Sprintf("%d %s", adults, label)

	if children > 0 {
		childLabel := "Child"
		if children > 1 {
			childLabel = "Children"
		}
		out += fmt.Sprintf(", %d %s", children, childLabel)
	}

	return out
}

// Truncate shortens a string to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
