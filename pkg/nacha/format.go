// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package nacha

import (
	"strings"
)

const (
	// RecordLength is the width of every NACHA record, without line terminators.
	RecordLength = 94

	// BlockingFactor is the number of records in one block.
	BlockingFactor = 10

	// DebugSeparator is written between fields when Format.Debug is set.
	DebugSeparator = "|"
)

// Format controls how records are joined into text.
//
// The zero value produces the production layout: fields concatenated with
// no separator.
type Format struct {
	// Debug writes a pipe between every field so each value can be inspected.
	Debug bool

	// PadBlocks appends filler records of nines until the line count is
	// a multiple of BlockingFactor.
	PadBlocks bool
}

func (f Format) separator() string {
	if f.Debug {
		return DebugSeparator
	}
	return ""
}

// padToBlocks appends filler lines after the file control record. The file
// control record is written without a trailing newline, so each filler line
// is prefixed with one.
func padToBlocks(rendered string, lines int) string {
	if lines%BlockingFactor == 0 {
		return rendered
	}
	var buf strings.Builder
	buf.WriteString(rendered)
	filler := strings.Repeat("9", RecordLength)
	for i := lines % BlockingFactor; i < BlockingFactor; i++ {
		buf.WriteString("\n")
		buf.WriteString(filler)
	}
	return buf.String()
}
