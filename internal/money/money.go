// Package money handles cent-denominated amounts at the presentation
// boundary. The ledger core only ever sees int64 cents; floats never touch
// balance arithmetic.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCents converts a decimal string like "12.50" into cents. At most two
// fraction digits are accepted.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	// ParseUint keeps stray signs like "1.-5" out; the leading minus was
	// already consumed above.
	w, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	f, err := strconv.ParseUint(frac, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	cents := int64(w)*100 + int64(f)
	if neg {
		cents = -cents
	}
	return cents, nil
}

// FormatCents renders cents as a decimal string with two fraction digits.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
