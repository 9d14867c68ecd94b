// Package sanitize provides input sanitization for free-text fields
// arriving from API clients (vents, notes, names). It strips control
// characters and enforces length caps before anything is persisted or
// embedded into a prompt.
package sanitize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// maxTextLength caps free-text fields to keep prompts and rows bounded.
	maxTextLength = 10000
	// maxNameLength caps display names.
	maxNameLength = 50
)

// Text removes control characters, trims whitespace, and truncates to the
// global text cap. Newlines and tabs are preserved.
func Text(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return truncate(strings.TrimSpace(b.String()), maxTextLength)
}

// truncate caps s at max bytes without splitting a multibyte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// Texts sanitizes a slice of free-text entries, dropping entries that are
// empty after sanitization.
func Texts(inputs []string) []string {
	if len(inputs) == 0 {
		return nil
	}
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if s := Text(in); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Email lowercases, strips whitespace, and removes characters that have no
// place in an address. Proper validation happens separately.
func Email(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case strings.ContainsRune(`<>'"&`, r):
			return -1
		}
		return r
	}, email)
}

// Name keeps only letters, spaces, hyphens, and apostrophes, collapses
// runs of whitespace, and truncates to the name cap.
func Name(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			b.WriteRune(r)
		}
	}
	return truncate(strings.Join(strings.Fields(b.String()), " "), maxNameLength)
}
