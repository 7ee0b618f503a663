// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package output

import (
	"bytes"
	"fmt"

	"github.com/moov-io/nachagen/internal/gpgx"

	"golang.org/x/crypto/openpgp"
)

// Encrypted writes the NACHA formatted file as an armored GPG message.
type Encrypted struct {
	keys openpgp.EntityList
}

func (enc *Encrypted) Format(buf *bytes.Buffer, res *Result) error {
	if len(res.Encrypted) == 0 {
		var plain bytes.Buffer
		if err := (&NACHA{}).Format(&plain, res); err != nil {
			return err
		}
		bs, err := gpgx.Encrypt(plain.Bytes(), enc.keys)
		if err != nil {
			return fmt.Errorf("problem encrypting file: %v", err)
		}
		res.Encrypted = bs
	}
	buf.Write(res.Encrypted)
	return nil
}
