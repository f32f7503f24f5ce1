package catalogid

import (
	"fmt"
	"strings"

	"github.com/lazelab/catalogid/slugify"
)

// NormalizeURLKey converts urlKey to its canonical form: stripped, lowered,
// then slugified with "-" as the separator. This follows the Magento
// url_key convention, so keys generated here slot into category and product
// URLs without further rewriting.
func NormalizeURLKey(urlKey string) string {
	urlKey = strings.ToLower(strings.TrimSpace(urlKey))
	return slugify.Make(urlKey)
}

// ValidateURLKey reports whether urlKey is already in canonical form,
// returning nil or a *ValidationError carrying the expected and actual
// values.
func ValidateURLKey(urlKey string) error {
	if normalized := NormalizeURLKey(urlKey); normalized != urlKey {
		return &ValidationError{
			Field:   "url_key",
			Reason:  ReasonNotCanonical,
			Message: fmt.Sprintf("must be stripped, lowered and slugified, maybe use NormalizeURLKey? %q != %q", normalized, urlKey),
		}
	}
	return nil
}
