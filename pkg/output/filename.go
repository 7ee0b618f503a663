// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package output

import (
	"bytes"
	"os"
	"text/template"
	"time"

	"github.com/google/uuid"
)

type FilenameData struct {
	RoutingNumber string
	CompanyID     string

	// Index counts up from 1 until the name is unused in the output directory.
	Index int

	// GPG is true if the file has been encrypted with GPG
	GPG bool
}

var filenameFunctions template.FuncMap = map[string]interface{}{
	"date": func(pattern string) string {
		return time.Now().Format(pattern)
	},
	"env": func(name string) string {
		return os.Getenv(name)
	},
	"uuid": func() string {
		return uuid.New().String()
	},
}

func RenderFilename(raw string, data FilenameData) (string, error) {
	t, err := template.New(data.RoutingNumber).Funcs(filenameFunctions).Parse(raw)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ValidateFilenameTemplate renders raw with sample data.
func ValidateFilenameTemplate(raw string) error {
	_, err := RenderFilename(raw, FilenameData{
		RoutingNumber: "987654320",
		CompanyID:     "1234567890",
		Index:         1,
		GPG:           true,
	})
	return err
}
