// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package output

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/moov-io/nachagen/internal/gpgx"
	"github.com/moov-io/nachagen/pkg/config"
	"github.com/moov-io/nachagen/pkg/nacha"
)

// Result is a file waiting to be formatted.
type Result struct {
	File   *nacha.File
	Format nacha.Format

	// Encrypted holds the GPG armored file once it has been encrypted.
	Encrypted []byte
}

// Formatter is a structure for encoding an encrypted or plaintext ACH file.
type Formatter interface {
	Format(buf *bytes.Buffer, res *Result) error
}

func NewFormatter(cfg *config.Output) (Formatter, error) {
	if cfg == nil || cfg.Format == "" {
		return &NACHA{}, nil
	}
	switch {
	case strings.EqualFold(cfg.Format, config.OutputBase64):
		return &Base64{}, nil

	case strings.EqualFold(cfg.Format, config.OutputEncrypted):
		if cfg.GPG == nil {
			return nil, errors.New("encrypted output: missing gpg config")
		}
		keys, err := gpgx.ReadArmoredKeyFile(cfg.GPG.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("encrypted output: %v", err)
		}
		return &Encrypted{keys: keys}, nil

	case strings.EqualFold(cfg.Format, config.OutputJSON):
		return &JSON{}, nil

	case strings.EqualFold(cfg.Format, config.OutputNACHA):
		return &NACHA{}, nil
	}
	return nil, errors.New("unknown output format")
}

// Render formats file with the configured formatter.
func Render(cfg *config.Output, file *nacha.File) ([]byte, error) {
	if file == nil {
		return nil, errors.New("nil File")
	}
	formatter, err := NewFormatter(cfg)
	if err != nil {
		return nil, err
	}

	res := &Result{File: file}
	if cfg != nil {
		res.Format = nacha.Format{Debug: cfg.Debug, PadBlocks: cfg.PadBlocks}
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
