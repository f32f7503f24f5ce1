package catalogid

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeURLKey(t *testing.T) {
	tests := []struct {
		name   string
		urlKey string
		want   string
	}{
		{
			name:   "strips lowers and slugs",
			urlKey: "  My Category  ",
			want:   "my-category",
		},
		{
			name:   "already canonical",
			urlKey: "my-category",
			want:   "my-category",
		},
		{
			name:   "underscores collapse to dashes",
			urlKey: "my_category",
			want:   "my-category",
		},
		{
			name:   "diacritics fold",
			urlKey: "Crème Brûlée",
			want:   "creme-brulee",
		},
		{
			name:   "punctuation collapses",
			urlKey: "Shoes & Bags / Summer",
			want:   "shoes-bags-summer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURLKey(tt.urlKey); got != tt.want {
				t.Errorf("NormalizeURLKey(%q) = %q, want %q", tt.urlKey, got, tt.want)
			}
			if once := NormalizeURLKey(tt.urlKey); NormalizeURLKey(once) != once {
				t.Errorf("NormalizeURLKey not idempotent for %q", tt.urlKey)
			}
		})
	}
}

func TestValidateURLKey(t *testing.T) {
	if err := ValidateURLKey("my-category"); err != nil {
		t.Errorf("ValidateURLKey(\"my-category\") = %v, want nil", err)
	}

	err := ValidateURLKey("My Category")
	if !errors.Is(err, &ValidationError{Field: "url_key", Reason: ReasonNotCanonical}) {
		t.Errorf("ValidateURLKey(\"My Category\") = %v, want not_canonical", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	for _, want := range []string{`"my-category"`, `"My Category"`} {
		if !strings.Contains(verr.Message, want) {
			t.Errorf("message %q must include %s", verr.Message, want)
		}
	}
}
