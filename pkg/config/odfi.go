// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/moov-io/ach"
)

// ODFI is the originating depository financial institution, the bank every
// generated file is delivered to.
type ODFI struct {
	RoutingNumber   string `yaml:"routing_number" mapstructure:"routing_number"`
	DestinationName string `yaml:"destination_name" mapstructure:"destination_name"`
}

func (cfg ODFI) Validate() error {
	if cfg.RoutingNumber == "" {
		return nil
	}
	if err := ach.CheckRoutingNumber(cfg.RoutingNumber); err != nil {
		return fmt.Errorf("routing_number: %v", err)
	}
	return nil
}

// Company identifies the originator of every entry in a generated file.
type Company struct {
	Identification   string `yaml:"identification" mapstructure:"identification"`
	Name             string `yaml:"name" mapstructure:"name"`
	EntryDescription string `yaml:"entry_description" mapstructure:"entry_description"`
}

func (cfg Company) Validate() error {
	if cfg.Identification == "" {
		return nil
	}
	if n := utf8.RuneCountInString(cfg.Identification); n != 10 {
		return fmt.Errorf("identification %q has %d characters, expected 10", cfg.Identification, n)
	}
	return nil
}
