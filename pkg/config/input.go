// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	InputCSV  = "csv"
	InputXLSX = "xlsx"
)

// Input describes the payment rows read into a file.
type Input struct {
	Format string `yaml:"format" mapstructure:"format"`

	// Sheet is the spreadsheet tab read for xlsx input. The first sheet is used when empty.
	Sheet string `yaml:"sheet" mapstructure:"sheet"`

	// Delimiter separates csv columns.
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
}

func (cfg Input) Validate() error {
	switch strings.ToLower(cfg.Format) {
	case InputCSV:
		if utf8.RuneCountInString(cfg.Delimiter) > 1 {
			return fmt.Errorf("delimiter %q must be a single character", cfg.Delimiter)
		}
	case InputXLSX:
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	return nil
}
