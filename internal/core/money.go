// Package core holds the record types shown by the app and the cent-exact
// money helpers used to total them.
package core

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseDecimalToCents reads an unsigned decimal amount into cents. The
// decimal separator may be a dot or a comma; a third fractional digit rounds
// half-up ("12.345" is 1235).
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	whole, frac, _ := strings.Cut(s, ".")
	if (whole == "" && frac == "") || strings.Contains(frac, ".") {
		return 0, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}
	if !asciiDigits(whole) || !asciiDigits(frac) {
		return 0, ErrInvalidAmount
	}

	iv, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	var cents int64
	switch {
	case len(frac) >= 2:
		cents = int64(frac[0]-'0')*10 + int64(frac[1]-'0')
		if len(frac) > 2 && frac[2] >= '5' {
			cents++
		}
	case len(frac) == 1:
		cents = int64(frac[0]-'0') * 10
	}
	if iv > (math.MaxInt64-cents)/100 {
		return 0, ErrInvalidAmount
	}
	return iv*100 + cents, nil
}

// grouped reports whether s is digits split by commas into groups of three,
// with a leading group of one to three digits.
func grouped(s string) bool {
	groups := strings.Split(s, ",")
	if len(groups) < 2 || len(groups[0]) == 0 || len(groups[0]) > 3 || !asciiDigits(groups[0]) {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 || !asciiDigits(g) {
			return false
		}
	}
	return true
}

func decimalComma(s string) bool {
	whole, frac, ok := strings.Cut(s, ",")
	return ok && len(frac) >= 1 && len(frac) <= 2 && !strings.Contains(frac, ",") && asciiDigits(whole) && asciiDigits(frac)
}

func asciiDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParsePrice parses a currency-formatted display price ("$1,299.99", "$1,299",
// "€12,50") into Money. A leading currency symbol is stripped. Commas are
// thousands separators when they split the whole part into groups of three
// ("1,299.99", or "$1,299" behind a symbol); a single comma followed by one or
// two digits is a decimal comma. Any other comma use is rejected.
func ParsePrice(s string) (Money, error) {
	s = strings.TrimSpace(s)
	bare := strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.Is(unicode.Sc, r)
	})
	symbol := len(bare) < len(s)
	s = strings.TrimSpace(bare)

	if strings.Contains(s, ",") {
		whole, frac, hasDot := strings.Cut(s, ".")
		switch {
		case hasDot || symbol:
			if !grouped(whole) {
				if hasDot || !decimalComma(s) {
					return Money{}, ErrInvalidAmount
				}
				break
			}
			s = strings.ReplaceAll(whole, ",", "")
			if hasDot {
				s += "." + frac
			}
		case !decimalComma(s):
			return Money{}, ErrInvalidAmount
		}
	}
	cents, err := ParseDecimalToCents(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Cents: cents}, nil
}

// String formats cents as a dollar string (e.g., "$939.94").
func (m Money) String() string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := "$" + strconv.FormatInt(cents/100, 10) + "." + twoDigits(cents%100)
	if neg {
		return "-" + s
	}
	return s
}

func twoDigits(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
