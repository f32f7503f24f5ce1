package catalogid

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/lazelab/catalogid/slugify"
)

// Default length bounds for idx values.
const (
	DefaultIdxMinLen = 1
	DefaultIdxMaxLen = 128
)

const (
	idxHashLen       = 6
	idxHashSeparator = "_"
)

// idxDisallowed matches runs of characters outside the idx alphabet.
// Unlike the default slug alphabet, idx keeps underscores.
var idxDisallowed = regexp.MustCompile(`[^-a-z0-9_]+`)

// NormalizeIdx converts text to its canonical idx form: a lowercase slug
// over the alphabet [-a-z0-9_] with "-" as the word separator.
//
// If the slug exceeds the maximum length (DefaultIdxMaxLen unless overridden
// with WithMaxLen), it is truncated to maxLen-7 characters and suffixed with
// "_" plus the first 6 hex characters of the MD5 digest of the truncated
// remainder. The result never exceeds maxLen and is deterministic, so
// over-long inputs keep stable identities. The digest choice is part of the
// contract: previously generated idx values must keep validating.
//
// NormalizeIdx is idempotent: NormalizeIdx(NormalizeIdx(x)) == NormalizeIdx(x).
func NormalizeIdx(text string, opts ...Option) string {
	cfg := resolveLengths(DefaultIdxMinLen, DefaultIdxMaxLen, opts)
	idx := slugify.MakeOptions(text, slugify.Options{Disallowed: idxDisallowed})
	if len(idx) > cfg.maxLen {
		cut := cfg.maxLen - idxHashLen - 1
		if cut < 0 {
			cut = 0
		}
		prefix, rest := idx[:cut], idx[cut:]
		sum := md5.Sum([]byte(rest))
		idx = prefix + idxHashSeparator + hex.EncodeToString(sum[:])[:idxHashLen]
	}
	return idx
}

// ValidateIdx reports whether idx is already in canonical form and within
// the length bounds (defaults DefaultIdxMinLen..DefaultIdxMaxLen). It
// returns nil on success or a *ValidationError for the first violated rule:
// canonical form, then minimum length, then maximum length.
func ValidateIdx(idx string, opts ...Option) error {
	cfg := resolveLengths(DefaultIdxMinLen, DefaultIdxMaxLen, opts)
	if normalized := NormalizeIdx(idx, opts...); normalized != idx {
		return &ValidationError{
			Field:   "idx",
			Reason:  ReasonNotCanonical,
			Message: fmt.Sprintf("must be a slug, maybe use NormalizeIdx? %q != %q", normalized, idx),
		}
	}
	if len(idx) < cfg.minLen {
		return &ValidationError{
			Field:   "idx",
			Reason:  ReasonTooShort,
			Message: fmt.Sprintf("must be at least %d chars, idx=%q", cfg.minLen, idx),
		}
	}
	if len(idx) > cfg.maxLen {
		return &ValidationError{
			Field:   "idx",
			Reason:  ReasonTooLong,
			Message: fmt.Sprintf("must be at most %d chars, idx=%q", cfg.maxLen, idx),
		}
	}
	return nil
}
