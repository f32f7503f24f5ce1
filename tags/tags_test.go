package tags_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazelab/catalogid/tags"
)

type product struct {
	Idx    string `validate:"catalog_idx"`
	SKU    string `validate:"catalog_sku"`
	EAN    string `validate:"catalog_ean"`
	URLKey string `validate:"catalog_url_key"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, tags.Register(v))
	return v
}

func TestRegister_ValidProduct(t *testing.T) {
	v := newValidator(t)

	p := product{
		Idx:    "example-cammel-name",
		SKU:    "ABC-1",
		EAN:    "12345678",
		URLKey: "my-category",
	}
	assert.NoError(t, v.Struct(p))
}

func TestRegister_EmptyEANPasses(t *testing.T) {
	v := newValidator(t)

	p := product{
		Idx:    "some-idx",
		SKU:    "SKU1",
		EAN:    "",
		URLKey: "some-key",
	}
	assert.NoError(t, v.Struct(p))
}

func TestRegister_InvalidFields(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		product product
		failTag string
	}{
		{
			name: "sku with comma",
			product: product{
				Idx:    "ok-idx",
				SKU:    "A,B",
				URLKey: "ok",
			},
			failTag: tags.TagSKU,
		},
		{
			name: "idx not slugged",
			product: product{
				Idx:    "Not A Slug",
				SKU:    "SKU1",
				URLKey: "ok",
			},
			failTag: tags.TagIdx,
		},
		{
			name: "ean too short",
			product: product{
				Idx:    "ok-idx",
				SKU:    "SKU1",
				EAN:    "1234567",
				URLKey: "ok",
			},
			failTag: tags.TagEAN,
		},
		{
			name: "url key not canonical",
			product: product{
				Idx:    "ok-idx",
				SKU:    "SKU1",
				URLKey: "My Category",
			},
			failTag: tags.TagURLKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.product)
			require.Error(t, err)

			verrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "expected validator.ValidationErrors, got %T", err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.failTag, verrs[0].Tag())
		})
	}
}
