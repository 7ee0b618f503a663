// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package input

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unprintable = runes.Predicate(func(r rune) bool {
	return r < ' ' || r > '~'
})

// Sanitize strips accents and drops anything outside printable ASCII, so
// every character occupies exactly one column of a record.
// Turns "Zoë Ångström\n" into "Zoe Angstrom".
func Sanitize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(unprintable))
	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}
