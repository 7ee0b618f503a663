// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package output

import (
	"bytes"
	"errors"
)

type NACHA struct{}

func (*NACHA) Format(buf *bytes.Buffer, res *Result) error {
	if res == nil || res.File == nil {
		return errors.New("nil File")
	}
	buf.WriteString(res.File.Render(res.Format))
	return nil
}
