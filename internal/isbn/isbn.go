// Package isbn decides whether raw text decoded from a barcode scan is
// usable as an ISBN, and extracts one if it is embedded in surrounding
// text. Both functions are pure, single-pass shape checks; no checksum
// digit validation is performed.
package isbn

import (
	"regexp"
	"strings"
)

// Matches an ISBN optionally prefixed with "ISBN", "ISBN-10", "ISBN 13"
// and similar; the capture group is the ISBN portion itself.
var isbnPattern = regexp.MustCompile(`(?:ISBN[-\s]*(?:10|13)?[-\s]*)?([0-9X]{10}|[0-9]{13})`)

// IsValid reports whether text, after stripping hyphens and spaces, has
// the shape of an ISBN-13 (13 digits) or an ISBN-10 (9 digits followed
// by a digit or uppercase X). Lowercase x is rejected; scanners emit
// the check character uppercased.
func IsValid(text string) bool {
	clean := strings.ReplaceAll(text, "-", "")
	clean = strings.ReplaceAll(clean, " ", "")

	if len(clean) == 13 && allDigits(clean) {
		return true
	}

	if len(clean) == 10 && allDigits(clean[:9]) {
		last := clean[9]
		return isDigit(last) || last == 'X'
	}

	return false
}

// Extract returns the first ISBN-shaped run found in text, or the empty
// string when there is none.
func Extract(text string) string {
	match := isbnPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return ""
	}
	return match[1]
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
