// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package output

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/moov-io/nachagen/pkg/nacha"
)

// JSON writes every record as its ordered list of named fields, for
// inspecting a file without counting columns.
type JSON struct{}

type jsonRecord struct {
	Type   string       `json:"type"`
	Fields nacha.Record `json:"fields"`
}

func (*JSON) Format(buf *bytes.Buffer, res *Result) error {
	if res == nil || res.File == nil {
		return errors.New("nil File")
	}
	file := res.File
	file.Render(res.Format) // refresh control records

	var records []jsonRecord
	add := func(kind string, r nacha.Record) {
		out := make(nacha.Record, 0, len(r))
		for _, f := range r {
			if f.Name != "LineEnding" {
				out = append(out, f)
			}
		}
		records = append(records, jsonRecord{Type: kind, Fields: out})
	}

	add("file_header", file.Header())
	for _, b := range file.Batches() {
		add("batch_header", b.Header())
		for _, e := range b.Entries() {
			add("entry_detail", e.Fields())
		}
		add("batch_control", b.Control())
	}
	add("file_control", file.Control())

	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Records []jsonRecord `json:"records"`
	}{records})
}
