// Package money converts between the decimal strings submitted by forms
// and the int64 cent amounts stored in the database.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid_amount")

// ParseCents parses a decimal string like "1234.56" into cents.
// At most two fraction digits are accepted.
func ParseCents(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ErrInvalidAmount
	}

	negative := false
	if strings.HasPrefix(value, "-") {
		negative = true
		value = value[1:]
	}

	whole := value
	frac := ""
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		whole = value[:idx]
		frac = value[idx+1:]
	}
	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}
	if !digitsOnly(whole) || !digitsOnly(frac) {
		return 0, ErrInvalidAmount
	}
	if len(frac) > 2 {
		return 0, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	total := units*100 + cents
	if negative {
		total = -total
	}
	return total, nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
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
