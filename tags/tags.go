package tags

import (
	"github.com/go-playground/validator/v10"

	"github.com/lazelab/catalogid"
)

// Tag names registered by Register.
const (
	// TagIdx validates a field as a canonical idx with default bounds.
	TagIdx = "catalog_idx"

	// TagSKU validates a field as a canonical SKU.
	TagSKU = "catalog_sku"

	// TagEAN validates a field as a canonical EAN with default bounds.
	// Empty fields pass: EAN is optional.
	TagEAN = "catalog_ean"

	// TagURLKey validates a field as a canonical URL key.
	TagURLKey = "catalog_url_key"
)

// Register adds the catalog identifier validations to v as custom tags, so
// identifier fields embedded in request or domain structs validate alongside
// the rest of the struct:
//
//	type Product struct {
//		Idx    string `validate:"catalog_idx"`
//		SKU    string `validate:"catalog_sku"`
//		EAN    string `validate:"catalog_ean"`
//		URLKey string `validate:"catalog_url_key"`
//	}
//
// Each tag delegates to the corresponding Validate function in catalogid
// with default bounds. Register returns the first registration error, which
// only occurs for a nil validator or an empty tag name.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(TagIdx, validIdx); err != nil {
		return err
	}
	if err := v.RegisterValidation(TagSKU, validSKU); err != nil {
		return err
	}
	if err := v.RegisterValidation(TagEAN, validEAN); err != nil {
		return err
	}
	return v.RegisterValidation(TagURLKey, validURLKey)
}

func validIdx(fl validator.FieldLevel) bool {
	return catalogid.ValidateIdx(fl.Field().String()) == nil
}

func validSKU(fl validator.FieldLevel) bool {
	return catalogid.ValidateSKU(fl.Field().String()) == nil
}

func validEAN(fl validator.FieldLevel) bool {
	return catalogid.ValidateEAN(fl.Field().String()) == nil
}

func validURLKey(fl validator.FieldLevel) bool {
	return catalogid.ValidateURLKey(fl.Field().String()) == nil
}
