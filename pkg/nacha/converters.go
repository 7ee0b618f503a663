// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package nacha

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// truncate keeps at most n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// padRight fills s with spaces on the right up to n characters. Longer
// values are returned untouched.
func padRight(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return s + strings.Repeat(" ", n-c)
	}
	return s
}

// padLeft fills s with pad on the left up to n characters. Longer values are
// returned untouched.
func padLeft(s string, n int, pad string) string {
	if c := utf8.RuneCountInString(s); c < n {
		return strings.Repeat(pad, n-c) + s
	}
	return s
}

// alpha truncates, upper-cases and space fills a free text field.
func alpha(s string, n int) string {
	return padRight(strings.ToUpper(truncate(s, n)), n)
}

// numeric zero fills n to the given width.
func numeric(n int, width int) string {
	return padLeft(strconv.Itoa(n), width, "0")
}

// cents renders a major-unit amount as minor units zero filled to width.
func cents(amount decimal.Decimal, width int) string {
	return padLeft(amount.Shift(2).Round(0).String(), width, "0")
}

// lastDigits keeps the trailing n digits of v's decimal representation.
func lastDigits(v int64, n int) string {
	s := strconv.FormatInt(v, 10)
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// leadingInt reads the decimal digits at the start of s. Routing numbers
// are summed this way so a stray non-digit does not discard the whole value.
func leadingInt(s string) int64 {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ABA8 returns the first 8 digits of an ABA routing number, which is how
// the originating DFI is identified on batch records. A leading space (as
// written in the file header) is ignored.
func ABA8(rtn string) string {
	return truncate(strings.TrimSpace(rtn), 8)
}

func traceNumber(batchNumber, entryNumber int) string {
	return fmt.Sprintf("0%s%s", numeric(batchNumber, 7), numeric(entryNumber, 7))
}
