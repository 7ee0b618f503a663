// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"testing"
)

func TestOutput__Validate(t *testing.T) {
	for _, format := range []string{OutputNACHA, OutputBase64, OutputJSON, "NACHA"} {
		cfg := Output{Format: format}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: %v", format, err)
		}
	}

	cfg := Output{Format: OutputEncrypted}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error")
	}
	cfg.GPG = &GPG{
		KeyFile: "", // intentionally left blank
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error")
	}
	cfg.GPG.KeyFile = "key.pub"
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}

	cfg = Output{Format: "other"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error")
	}
}

func TestInput__Validate(t *testing.T) {
	cfg := Input{Format: InputCSV, Delimiter: ","}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
	cfg.Delimiter = ""
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
	cfg.Delimiter = ";;"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error")
	}

	cfg = Input{Format: InputXLSX}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
	cfg = Input{Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error")
	}
}
