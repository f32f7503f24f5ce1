// Package slugify builds URL- and identifier-safe slugs from arbitrary
// text.
//
// A slug is a string restricted to a small alphabet, by default lowercase
// ASCII alphanumerics, with a designated separator standing in for
// everything else. Diacritics are folded to their base characters before
// the alphabet is enforced, so "Café au Lait" becomes "cafe-au-lait".
//
// The alphabet is defined by its complement: a regular expression matching
// runs of disallowed characters. This makes it cheap to derive variants,
// such as an alphabet that additionally keeps underscores:
//
//	var keepUnderscores = regexp.MustCompile(`[^-a-z0-9_]+`)
//
//	slug := slugify.MakeOptions("Some_Field Name", slugify.Options{
//		Disallowed: keepUnderscores,
//	})
//	// slug == "some_field-name"
//
// Make and MakeOptions are pure and deterministic, and idempotent whenever
// the output alphabet is a fixed point of the pipeline (true for the
// default options).
package slugify
