package validate

import (
	"strconv"
	"strings"
)

// Article parses a product identifier. Articles are plain positive integers
// upstream.
func Article(s string) (int, bool) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Category bounds a category filter value; category names are free text
// (localized), so only length and control characters are policed.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true // no filter
	}
	if len(s) > 64 {
		return "", false
	}
	for _, r := range s {
		if r < 0x20 {
			return "", false
		}
	}
	return s, true
}

// ReviewText rejects empty or whitespace-only reviews before any network
// call is made. The original text (untrimmed) is what gets submitted.
func ReviewText(s string) (string, bool) {
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	if len(s) > 2000 {
		return "", false
	}
	return s, true
}

// Description bounds the single editable profile field.
func Description(s string) (string, bool) {
	if len(s) > 2000 {
		return "", false
	}
	return s, true
}

// Credential bounds login form fields; the upstream owns the actual
// verification.
func Credential(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 64 {
		return "", false
	}
	return s, true
}

// Page parses a 1-based page cursor, defaulting to the first page.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
