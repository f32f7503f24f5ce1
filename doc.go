// Package catalogid normalizes and validates the identifier-like strings a
// product catalog passes around: generic identifiers (idx), stock keeping
// units (SKU), European Article Numbers (EAN), and URL keys.
//
// Every identifier kind pairs a Normalize function, which produces the
// canonical form of a raw string, with a Validate function, which reports
// whether a candidate already is canonical. Validation never rewrites: a
// value that is not canonical is rejected, and the caller decides whether to
// normalize and retry.
//
// # Identifier Kinds
//
// Each kind has its own canonical-form rule:
//
//   - idx: lowercase slug over [-a-z0-9_] with "-" separating words; slugs
//     longer than the maximum length are truncated and suffixed with a short
//     content hash so identity stays stable.
//   - sku: surrounding whitespace stripped, case preserved, no commas,
//     1 to 128 characters.
//   - ean: lowercased and stripped; the field is optional, and an empty
//     value is always valid.
//   - url_key: stripped, lowered, slugified with "-", following the Magento
//     url_key convention.
//
// # Determinism and Idempotence
//
// All functions are pure: no I/O, no randomness, no shared state. They are
// safe for concurrent use. Every normalizer is idempotent, and for every
// kind Validate(x) succeeds exactly when x == Normalize(x) and the kind's
// length and character constraints hold.
//
// # Errors
//
// All failures are reported as *ValidationError, which carries the field
// name, a stable reason code, and a message naming the expected and actual
// values. Use errors.Is with a probe ValidationError to branch on field or
// reason.
//
// # Usage
//
//	idx := catalogid.NormalizeIdx("Example Cammel Name")
//	// idx == "example-cammel-name"
//
//	if err := catalogid.ValidateSKU("ABC-1"); err != nil {
//		// not canonical, forbidden character, or out of bounds
//	}
//
// The slugify subpackage exposes the slug engine the normalizers are built
// on, and the tags subpackage registers these validations as custom
// go-playground/validator struct tags.
package catalogid
