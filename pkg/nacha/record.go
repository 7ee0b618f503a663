// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package nacha

import (
	"strings"
)

// Field is one positional value inside a fixed-width record.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Record is an ordered list of fields. The order of the slice is the order
// the fields are written in.
type Record []Field

// Get returns the value of the named field or an empty string.
func (r Record) Get(name string) string {
	for i := range r {
		if r[i].Name == name {
			return r[i].Value
		}
	}
	return ""
}

// Format joins every field value with separator.
func (r Record) Format(separator string) string {
	values := make([]string, len(r))
	for i := range r {
		values[i] = r[i].Value
	}
	return strings.Join(values, separator)
}
