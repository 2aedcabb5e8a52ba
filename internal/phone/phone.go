// Package phone cleans the raw phone field of a lead. Exhibition sheets
// routinely cram several numbers into one cell, separated by commas,
// slashes, ampersands, pipes or line breaks.
package phone

import (
	"regexp"
	"strings"
)

var (
	separators = regexp.MustCompile(`[,/&|\r\n]+`)
	nonDialing = regexp.MustCompile(`[^\d+]`)
)

// Segment splits a raw phone cell into the individual dialable numbers it
// contains, in order of appearance. Pieces of length <= 3 after trimming
// are noise (extension fragments, dashes, country labels) and are dropped.
// Empty input yields an empty slice.
func Segment(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	pieces := separators.Split(raw, -1)
	numbers := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if len(p) <= 3 {
			continue
		}
		numbers = append(numbers, p)
	}
	return numbers
}

// Normalize reduces a single number to "+" followed by digits only:
// every character except digits and a leading "+" is stripped, an
// international "00" prefix becomes "+", and a bare national number gets
// "+" prepended as-is. No validation happens here; a malformed input
// yields a best-effort result and the resolving app has the final word.
func Normalize(number string) string {
	trimmed := strings.TrimSpace(number)

	cleaned := nonDialing.ReplaceAllString(trimmed, "")
	// Keep "+" only in leading position.
	if len(cleaned) > 1 {
		cleaned = cleaned[:1] + strings.ReplaceAll(cleaned[1:], "+", "")
	}

	switch {
	case strings.HasPrefix(cleaned, "00"):
		return "+" + cleaned[2:]
	case strings.HasPrefix(cleaned, "+"):
		return cleaned
	default:
		return "+" + cleaned
	}
}

// Digits returns the normalized number without the leading "+", the form
// chat protocols expect in their phone parameter.
func Digits(number string) string {
	return strings.TrimPrefix(Normalize(number), "+")
}
