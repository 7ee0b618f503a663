// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package mask

import (
	"strings"
	"unicode/utf8"
)

// AccountNumber hides all but the last four characters of an account
// number so it can be logged. Turns '123456789' into '*****6789'.
func AccountNumber(s string) string {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n <= 4 {
		return strings.Repeat("*", n) // too short, we can't show anything
	}
	r := []rune(s)
	return strings.Repeat("*", n-4) + string(r[n-4:])
}
