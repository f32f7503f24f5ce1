package catalogid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Length bounds for SKU values. Unlike idx and ean these are fixed: the SKU
// format is shared across catalog and pricing systems and is not negotiable
// per call.
const (
	SKUMinLen = 1
	SKUMaxLen = 128
)

// skuForbiddenChars lists characters a SKU may never contain, in the order
// they are checked. Comma breaks the CSV exports downstream systems rely on.
var skuForbiddenChars = []rune{','}

// NormalizeSKU converts sku to its canonical form: its string representation
// with surrounding whitespace stripped. Case and inner characters are
// preserved. Any value type is accepted and converted with fmt.Sprint, so
// numeric SKUs normalize to their decimal form.
//
// A nil sku is caller misuse and returns a *ValidationError with
// ReasonAbsent.
func NormalizeSKU(sku any) (string, error) {
	if sku == nil {
		return "", &ValidationError{
			Field:   "sku",
			Reason:  ReasonAbsent,
			Message: "sku cannot be nil",
		}
	}
	return strings.TrimSpace(fmt.Sprint(sku)), nil
}

// ValidateSKU reports whether sku is already in canonical form: stripped,
// free of forbidden characters, and within SKUMinLen..SKUMaxLen. Checks run
// in that order and the first violation is returned as a *ValidationError.
func ValidateSKU(sku string) error {
	if normalized := strings.TrimSpace(sku); normalized != sku {
		return &ValidationError{
			Field:   "sku",
			Reason:  ReasonNotCanonical,
			Message: fmt.Sprintf("must be stripped, maybe use NormalizeSKU? %q != %q", normalized, sku),
		}
	}
	for _, ch := range skuForbiddenChars {
		if i := strings.IndexRune(sku, ch); i != -1 {
			return &ValidationError{
				Field:   "sku",
				Reason:  ReasonForbiddenChar,
				Message: fmt.Sprintf("contains forbidden character %q at index %d, sku=%q", ch, i, sku),
			}
		}
	}
	if n := utf8.RuneCountInString(sku); n < SKUMinLen {
		return &ValidationError{
			Field:   "sku",
			Reason:  ReasonTooShort,
			Message: fmt.Sprintf("must be at least %d chars, sku=%q", SKUMinLen, sku),
		}
	} else if n > SKUMaxLen {
		return &ValidationError{
			Field:   "sku",
			Reason:  ReasonTooLong,
			Message: fmt.Sprintf("must be at most %d chars, sku=%q", SKUMaxLen, sku),
		}
	}
	return nil
}
