// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package output

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/moov-io/nachagen/pkg/config"
	"github.com/moov-io/nachagen/pkg/nacha"

	"github.com/go-kit/kit/log"
)

const maxFilenameAttempts = 100

// Write formats file and saves it into the configured directory under the
// first unused name the filename template produces. It returns the path written.
func Write(logger log.Logger, cfg *config.Config, file *nacha.File) (string, error) {
	if cfg == nil {
		return "", errors.New("missing Config")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	bs, err := Render(&cfg.Output, file)
	if err != nil {
		return "", err
	}

	dir := cfg.Output.Directory
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("problem creating %s: %v", dir, err)
	}

	path, err := nextPath(dir, cfg, file)
	if err != nil {
		return "", err
	}
	if err := ioutil.WriteFile(path, bs, 0600); err != nil {
		return "", fmt.Errorf("problem writing %s: %v", path, err)
	}

	logger.Log("output", fmt.Sprintf("wrote %s", path), "format", cfg.Output.Format, "bytes", len(bs))
	return path, nil
}

// WriteTo formats file into w, such as stdout.
func WriteTo(w io.Writer, cfg *config.Output, file *nacha.File) error {
	bs, err := Render(cfg, file)
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

func nextPath(dir string, cfg *config.Config, file *nacha.File) (string, error) {
	tmpl := cfg.Output.FilenameTemplate
	if tmpl == "" {
		tmpl = config.DefaultFilenameTemplate
	}
	data := FilenameData{
		RoutingNumber: file.DestinationRouting(),
		CompanyID:     file.CompanyID(),
		GPG:           strings.EqualFold(cfg.Output.Format, config.OutputEncrypted),
	}
	for data.Index = 1; data.Index <= maxFilenameAttempts; data.Index++ {
		name, err := RenderFilename(tmpl, data)
		if err != nil {
			return "", fmt.Errorf("problem rendering filename: %v", err)
		}
		if name == "" || strings.ContainsRune(name, os.PathSeparator) {
			return "", fmt.Errorf("invalid filename %q", name)
		}
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("no unused filename in %s after %d attempts", dir, maxFilenameAttempts)
}
