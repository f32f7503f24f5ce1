package catalogid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Default length bounds for EAN values when a value is present.
const (
	DefaultEANMinLen = 8
	DefaultEANMaxLen = 16
)

// NormalizeEAN converts ean to its canonical form: lowercased with
// surrounding whitespace stripped.
//
// EAN is an optional field. The empty string means "no value" and normalizes
// to the empty string; absent and empty are deliberately merged into one
// representation rather than distinguished.
func NormalizeEAN(ean string) string {
	if ean == "" {
		return ""
	}
	return strings.TrimSpace(strings.ToLower(ean))
}

// ValidateEAN reports whether ean is already in canonical form and within
// the length bounds (defaults DefaultEANMinLen..DefaultEANMaxLen). An empty
// ean passes trivially: the field is optional and "no value" is always
// valid. Otherwise the first violated rule is returned as a
// *ValidationError: canonical form, then minimum length, then maximum
// length.
func ValidateEAN(ean string, opts ...Option) error {
	if ean == "" {
		return nil
	}
	cfg := resolveLengths(DefaultEANMinLen, DefaultEANMaxLen, opts)
	if normalized := NormalizeEAN(ean); normalized != ean {
		return &ValidationError{
			Field:   "ean",
			Reason:  ReasonNotCanonical,
			Message: fmt.Sprintf("must be lowered and stripped, maybe use NormalizeEAN? %q != %q", normalized, ean),
		}
	}
	if n := utf8.RuneCountInString(ean); n < cfg.minLen {
		return &ValidationError{
			Field:   "ean",
			Reason:  ReasonTooShort,
			Message: fmt.Sprintf("must be at least %d chars, ean=%q", cfg.minLen, ean),
		}
	} else if n > cfg.maxLen {
		return &ValidationError{
			Field:   "ean",
			Reason:  ReasonTooLong,
			Message: fmt.Sprintf("must be at most %d chars, ean=%q", cfg.maxLen, ean),
		}
	}
	return nil
}
