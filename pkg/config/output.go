// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	OutputNACHA     = "nacha"
	OutputBase64    = "base64"
	OutputJSON      = "json"
	OutputEncrypted = "encrypted"
)

// DefaultFilenameTemplate names files after the creation date and the ODFI routing number.
var DefaultFilenameTemplate = `{{ date "20060102" }}-{{ .RoutingNumber }}-{{ .Index }}.ach{{ if .GPG }}.gpg{{ end }}`

type Output struct {
	Format string `yaml:"format" mapstructure:"format"`

	// Debug separates every field with a pipe.
	Debug bool `yaml:"debug" mapstructure:"debug"`

	// PadBlocks fills the last block with lines of nines.
	PadBlocks bool `yaml:"pad_blocks" mapstructure:"pad_blocks"`

	Directory        string `yaml:"directory" mapstructure:"directory"`
	FilenameTemplate string `yaml:"filename_template" mapstructure:"filename_template"`

	GPG *GPG `yaml:"gpg,omitempty" mapstructure:"gpg"`
}

func (cfg Output) Validate() error {
	switch strings.ToLower(cfg.Format) {
	case OutputNACHA, OutputBase64, OutputJSON:
	case OutputEncrypted:
		if cfg.GPG == nil || cfg.GPG.KeyFile == "" {
			return errors.New("gpg: missing key file")
		}
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	return nil
}

type GPG struct {
	KeyFile string `yaml:"key_file" mapstructure:"key_file"`
}
