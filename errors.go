package catalogid

import "fmt"

// Reason codes categorize validation failures by the rule that was violated.
// They are stable strings suitable for logging, metrics, and API responses.
const (
	// ReasonAbsent indicates a required value was nil where the contract
	// disallows it. This is caller misuse, not bad data.
	ReasonAbsent = "absent"

	// ReasonNotCanonical indicates the value differs from its normalized
	// form. The message carries both the expected and the actual value.
	ReasonNotCanonical = "not_canonical"

	// ReasonTooShort indicates the value is below the minimum length.
	ReasonTooShort = "too_short"

	// ReasonTooLong indicates the value exceeds the maximum length.
	ReasonTooLong = "too_long"

	// ReasonForbiddenChar indicates the value contains a character from the
	// field's forbidden set. The message names the character and its index.
	ReasonForbiddenChar = "forbidden_char"
)

// ValidationError is the single error type returned by every validator in
// this package. It names the field that failed, categorizes the failure with
// a reason code, and carries a human-readable message.
//
// ValidationError supports errors.Is with a probe value, so callers can
// match on field and reason without parsing messages:
//
//	err := catalogid.ValidateSKU("A,B")
//	if errors.Is(err, &catalogid.ValidationError{Field: "sku", Reason: catalogid.ReasonForbiddenChar}) {
//		// reject with a 422
//	}
type ValidationError struct {
	// Field is the identifier kind that failed: "idx", "sku", "ean" or
	// "url_key".
	Field string

	// Reason is one of the Reason* constants.
	Reason string

	// Message describes the violation, including the expected vs. actual
	// value or the violated bound. Wording is informational, not contract.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is matches another *ValidationError by Field and Reason. An empty Field or
// Reason in the target acts as a wildcard, so probes can match a whole field
// or a whole reason class.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	if t.Field != "" && t.Field != e.Field {
		return false
	}
	if t.Reason != "" && t.Reason != e.Reason {
		return false
	}
	return true
}
