package slugify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Disallowed is the default pattern: any run of characters outside lowercase
// ASCII alphanumerics and "-" collapses into the separator.
var Disallowed = regexp.MustCompile(`[^-a-z0-9]+`)

var (
	apostrophes = regexp.MustCompile(`'+`)
	dashRuns    = regexp.MustCompile(`-{2,}`)

	// foldMarks decomposes with NFKD, drops combining marks, and recomposes,
	// so "é" folds to "e" before the disallowed pattern runs. Characters
	// with no decomposition ("ß", CJK) fall through and are removed by the
	// pattern instead.
	foldMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Options adjusts how Make builds a slug.
type Options struct {
	// Disallowed matches runs of characters that collapse into the
	// separator. Its complement defines the slug alphabet. Defaults to the
	// package-level Disallowed pattern.
	Disallowed *regexp.Regexp

	// Separator replaces each disallowed run. Defaults to "-".
	Separator string
}

// Make builds a slug from text using the default options: lowercase ASCII
// alphanumerics separated by "-".
func Make(text string) string {
	return MakeOptions(text, Options{})
}

// MakeOptions builds a slug from text.
//
// The pipeline: fold diacritics to their ASCII base characters, lowercase,
// drop apostrophes so contractions join ("don't" becomes "dont"), replace
// every disallowed run with "-", collapse repeated dashes, trim leading and
// trailing dashes, and finally substitute the separator if it differs from
// "-".
//
// MakeOptions is idempotent for any pattern whose complement excludes the
// separator's own collapse, which holds for the default pattern and for any
// pattern that allows "-".
func MakeOptions(text string, opts Options) string {
	disallowed := opts.Disallowed
	if disallowed == nil {
		disallowed = Disallowed
	}
	separator := opts.Separator
	if separator == "" {
		separator = "-"
	}

	if folded, _, err := transform.String(foldMarks, text); err == nil {
		text = folded
	}
	text = strings.ToLower(text)
	text = apostrophes.ReplaceAllString(text, "")
	text = disallowed.ReplaceAllString(text, "-")
	text = dashRuns.ReplaceAllString(text, "-")
	text = strings.Trim(text, "-")
	if separator != "-" {
		text = strings.ReplaceAll(text, "-", separator)
	}
	return text
}
