// Package format holds the display helpers shared by list and detail
// surfaces: currency, dates, relative time, phone numbers and image URLs.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
)

// CurrencySymbol is the Bangladeshi taka sign.
const CurrencySymbol = "৳"

const notAvailable = "N/A"

// Currency renders an amount as taka with thousands grouping. Whole amounts
// drop the fraction; fractional amounts keep at most two digits.
func Currency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return CurrencySymbol + "0"
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount)
	fraction := math.Round((amount-float64(whole))*100) / 100
	if fraction >= 1 {
		whole++
		fraction = 0
	}

	s := groupThousands(whole)
	if fraction > 0 {
		frac := fmt.Sprintf("%.2f", fraction)[2:]
		frac = strings.TrimRight(frac, "0")
		s += "." + frac
	}
	if negative {
		return "-" + CurrencySymbol + s
	}
	return CurrencySymbol + s
}

func groupThousands(n int64) string {
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

// Date renders a timestamp string as "02 Jan 2006". Unparseable or empty
// input renders as N/A.
func Date(value string) string {
	t, ok := parseTimestamp(value)
	if !ok {
		return notAvailable
	}
	return t.Format("02 Jan 2006")
}

// TimeAgo renders a timestamp string relative to now.
func TimeAgo(value string) string {
	return timeAgoAt(value, time.Now())
}

func timeAgoAt(value string, now time.Time) string {
	t, ok := parseTimestamp(value)
	if !ok {
		return notAvailable
	}

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	case diff < 28*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff/(7*24*time.Hour)))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff/(30*24*time.Hour)))
	default:
		return fmt.Sprintf("%dy ago", int(diff/(365*24*time.Hour)))
	}
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Phone renders an 11-digit Bangladeshi number as 0171-111-1111. Anything
// else passes through unchanged.
func Phone(phone string) string {
	if phone == "" {
		return ""
	}
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	cleaned := digits.String()
	if len(cleaned) != 11 {
		return phone
	}
	return cleaned[:4] + "-" + cleaned[4:7] + "-" + cleaned[7:]
}

// ImageURL resolves a server-side image path against the CDN base. Absolute
// URLs pass through; empty paths resolve to empty.
func ImageURL(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(base, "/") + path
}

// Truncate cuts text at maxLength runes and appends an ellipsis.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}
