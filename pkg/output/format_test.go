// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package output

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/moov-io/nachagen/pkg/config"
	"github.com/moov-io/nachagen/pkg/nacha"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testFile(t *testing.T) *nacha.File {
	t.Helper()

	file := nacha.NewFile()
	require.NoError(t, file.SetCompanyID("1234567890"))
	require.NoError(t, file.SetDestinationRouting("987654320"))
	file.SetDestinationName("First Bank").
		SetCompanyName("Acme Corp").
		SetCreationTime(time.Date(2020, time.March, 3, 14, 5, 0, 0, time.UTC))

	entry, err := nacha.NewEntry(nacha.CheckingDebit, "231380104", "744-5678-99", "EMP-1", "Jane Doe", decimal.RequireFromString("12.34"))
	require.NoError(t, err)

	batch := nacha.NewBatch().SetEntryDescription("payroll")
	batch.AddEntry(entry)
	file.AddBatch(batch)

	return file
}

func TestFormatter(t *testing.T) {
	cfg := config.Empty()
	cfg.Output = config.Output{
		Format: "other",
	}

	enc, err := NewFormatter(&cfg.Output)
	if err == nil {
		t.Fatal("expected error")
	}
	if enc != nil {
		t.Errorf("unexpected Formatter: %#v", enc)
	}
}

func TestFormatter__defaults(t *testing.T) {
	enc, err := NewFormatter(nil)
	require.NoError(t, err)
	require.IsType(t, &NACHA{}, enc)

	for format, expected := range map[string]Formatter{
		"nacha":  &NACHA{},
		"BASE64": &Base64{},
		"json":   &JSON{},
	} {
		enc, err := NewFormatter(&config.Output{Format: format})
		require.NoError(t, err)
		require.IsType(t, expected, enc, format)
	}
}

func TestFormatter__encrypted(t *testing.T) {
	_, err := NewFormatter(&config.Output{Format: config.OutputEncrypted})
	require.Error(t, err)

	_, err = NewFormatter(&config.Output{
		Format: config.OutputEncrypted,
		GPG:    &config.GPG{KeyFile: filepath.Join(t.TempDir(), "missing.pub")},
	})
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	file := testFile(t)

	bs, err := Render(&config.Output{Format: config.OutputNACHA, Debug: true}, file)
	require.NoError(t, err)
	require.Equal(t, file.Render(nacha.Format{Debug: true}), string(bs))

	_, err = Render(nil, nil)
	require.Error(t, err)
}
