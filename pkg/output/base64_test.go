// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package output

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestBase64(t *testing.T) {
	enc := &Base64{}

	var buf bytes.Buffer
	res := &Result{File: testFile(t)}

	if err := enc.Format(&buf, res); err != nil {
		t.Fatal(err)
	}

	bs, err := base64.StdEncoding.DecodeString(buf.String())
	if err != nil {
		t.Fatal(err)
	}
	if s := string(bs); s != res.File.String() {
		t.Errorf("unexpected output:\n%v", s)
	}
}

func TestBase64__encrypted(t *testing.T) {
	enc := &Base64{}

	var buf bytes.Buffer
	res := &Result{File: testFile(t), Encrypted: []byte("hello, world")}

	if err := enc.Format(&buf, res); err != nil {
		t.Fatal(err)
	}
	if s := buf.String(); s != "aGVsbG8sIHdvcmxk" {
		t.Errorf("unexpected output: %q", s)
	}
}
