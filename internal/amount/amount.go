// Package amount normalises the free-text bid amounts typed by entrepreneurs.
package amount

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"marketplace-bidding/internal/biddingerrors"
)

// Prefix is the currency marker shown in front of every amount
const Prefix = "Rs. "

// marker matches a leading currency marker in any case, with or without its
// dot and the spaces around it: "Rs.", "rs .", "RS", "LKR Rs."
var marker = regexp.MustCompile(`(?i)^\s*(?:lkr\s*)?rs\s*\.?\s*`)

// stripMarkers removes every leading currency marker, so its dot never
// reaches the digit filter
func stripMarkers(input string) string {
	s := strings.TrimSpace(input)
	for {
		loc := marker.FindStringIndex(s)
		if loc == nil || loc[1] == 0 {
			return s
		}
		s = s[loc[1]:]
	}
}

// Sanitize turns raw input into the canonical "Rs. <digits>" form, or "" when
// nothing numeric is left. It never fails.
func Sanitize(input string) string {
	s := stripMarkers(input)

	s = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)

	// keep the first decimal point, fold the rest into the fraction
	if parts := strings.Split(s, "."); len(parts) > 2 {
		s = parts[0] + "." + strings.Join(parts[1:], "")
	}

	if s == "" {
		return ""
	}

	intPart, frac, hasDot := strings.Cut(s, ".")
	if len(intPart) > 1 {
		intPart = strings.TrimLeft(intPart, "0")
		if intPart == "" {
			intPart = "0"
		}
	}
	if hasDot && intPart == "" {
		intPart = "0"
	}

	s = intPart
	if hasDot {
		s += "." + frac
	}
	return Prefix + s
}

// Parse sanitises input and returns the numeric value, rejecting empty,
// non-numeric and non-positive amounts.
func Parse(input string) (float64, error) {
	if textBeforePoint(stripMarkers(input)) {
		return 0, fmt.Errorf("%w: %q has a point after text and before any digit", biddingerrors.ErrInvalidAmount, input)
	}

	clean := strings.TrimPrefix(Sanitize(input), Prefix)
	if clean == "" {
		return 0, fmt.Errorf("%w: empty amount", biddingerrors.ErrInvalidAmount)
	}

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", biddingerrors.ErrInvalidAmount, clean)
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: %q is out of range", biddingerrors.ErrInvalidAmount, clean)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: amount must be greater than zero", biddingerrors.ErrInvalidAmount)
	}
	return value, nil
}

// Format renders value with the currency prefix and the shortest exact decimal
func Format(value float64) string {
	return Prefix + Digits(value)
}

// Digits renders value without the prefix
func Digits(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// textBeforePoint reports whether a '.' follows letters before the first digit,
// as in "USD. 500", where the point ends an abbreviation.
func textBeforePoint(s string) bool {
	seenLetter := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			return false
		case unicode.IsLetter(r):
			seenLetter = true
		case r == '.' && seenLetter:
			return true
		}
	}
	return false
}
