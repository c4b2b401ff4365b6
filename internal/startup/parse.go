// Package startup provides loading, classification, and normalization of
// the semi-structured startup CSV export, plus analytics over the
// normalized table.
package startup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	decimalRe = regexp.MustCompile(`\d+\.?\d*`)
	yearRe    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	digitsRe  = regexp.MustCompile(`\d+`)
)

// fundingMultipliers is checked in fixed order; the first suffix found
// anywhere in the cleaned string wins.
var fundingMultipliers = []struct {
	suffix string
	factor float64
}{
	{"k", 1e3},
	{"m", 1e6},
	{"b", 1e9},
}

// ParseFunding converts a free-text funding cell into a non-negative
// amount. Currency symbols, commas, and whitespace are stripped;
// "1.5M", "500k", "€1,200", and "eur100000" all parse. Anything without
// digits resolves to 0, never an error.
func ParseFunding(raw string) float64 {
	s := strings.ToLower(raw)
	s = strings.NewReplacer(",", "", " ", "", "€", "", "$", "").Replace(s)
	s = strings.TrimSpace(s)

	if s == "" || s == "." || s == "nan" {
		return 0.0
	}

	for _, m := range fundingMultipliers {
		if strings.Contains(s, m.suffix) {
			if num := decimalRe.FindString(s); num != "" {
				if v, err := strconv.ParseFloat(num, 64); err == nil {
					return v * m.factor
				}
			}
		}
	}

	if num := decimalRe.FindString(s); num != "" {
		if v, err := strconv.ParseFloat(num, 64); err == nil {
			return v
		}
	}

	return 0.0
}

// DefaultFoundedYear is the sentinel used when no 4-digit year is found.
const DefaultFoundedYear = 2023

// ExtractYear pulls the first 4-digit year (1900-2099) out of a
// date-like cell. Two-digit years like "Oct '24" do not count.
func ExtractYear(raw string) int {
	if match := yearRe.FindString(raw); match != "" {
		if y, err := strconv.Atoi(match); err == nil {
			return y
		}
	}
	return DefaultFoundedYear
}

// ExtractFirstInt returns the first run of digits in a free-text cell,
// or def when the cell has none.
func ExtractFirstInt(raw string, def int) int {
	s := strings.TrimSpace(raw)
	if s == "" || s == "." || strings.EqualFold(s, "nan") {
		return def
	}
	if match := digitsRe.FindString(s); match != "" {
		if v, err := strconv.Atoi(match); err == nil {
			return v
		}
	}
	return def
}

// FormatFunding renders an amount as a human-readable euro string
// ("€1.5M", "€500K", "€1.2B").
func FormatFunding(amount float64) string {
	switch {
	case amount >= 1e9:
		return fmt.Sprintf("€%.1fB", amount/1e9)
	case amount >= 1e6:
		return fmt.Sprintf("€%.1fM", amount/1e6)
	case amount >= 1e3:
		return fmt.Sprintf("€%.0fK", amount/1e3)
	default:
		return fmt.Sprintf("€%.0f", amount)
	}
}

// SlugifyHeader turns a column header into a stable map key
// ("Google Plus" -> "google_plus").
func SlugifyHeader(header string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "_")
}

// TitleCase capitalizes the first letter of each word and lowercases
// the rest, matching the fallback used for unclassified sectors.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		if unicode.IsLetter(r) {
			if startOfWord {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			startOfWord = false
		} else {
			b.WriteRune(r)
			startOfWord = true
		}
	}
	return b.String()
}
