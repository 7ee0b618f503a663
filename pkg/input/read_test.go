// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package input

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moov-io/nachagen/pkg/config"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readFile(t *testing.T, cfg config.Input, path string) []Row {
	t.Helper()

	fd, err := os.Open(path)
	require.NoError(t, err)
	defer fd.Close()

	rows, err := Read(cfg, fd)
	require.NoError(t, err)
	return rows
}

func TestReadCSV(t *testing.T) {
	rows := readFile(t, config.Input{Format: config.InputCSV}, filepath.Join("testdata", "payments.csv"))
	require.Len(t, rows, 3)

	require.Equal(t, Row{
		Batch:           "payroll",
		Description:     "Payroll",
		EffectiveDate:   "2020-03-04",
		TransactionCode: "credit",
		RoutingNumber:   "231380104",
		AccountNumber:   "744-5678-99",
		ReceiverID:      "EMP-1",
		ReceiverName:    "Jane Doe",
		Amount:          "1500.25",
		Line:            2,
	}, rows[0])

	require.Equal(t, "1,000.00", rows[1].Amount)
	require.Equal(t, "Zoë Ångström", rows[1].ReceiverName)
	require.Equal(t, 4, rows[2].Line)
}

func TestReadCSV__delimiter(t *testing.T) {
	rows := readFile(t, config.Input{Format: config.InputCSV, Delimiter: ";"}, filepath.Join("testdata", "semicolon.csv"))
	require.Len(t, rows, 1)
	require.Equal(t, "b1", rows[0].Batch)
	require.Equal(t, "Jane Doe", rows[0].ReceiverName)
	require.Equal(t, "", rows[0].Description)
}

func TestReadCSV__empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), "")
	require.Error(t, err)

	rows, err := ReadCSV(strings.NewReader("batch,amount\n"), "")
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestRead__unknownFormat(t *testing.T) {
	_, err := Read(config.Input{Format: "json"}, strings.NewReader("{}"))
	require.Error(t, err)
}

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadXLSX(t *testing.T) {
	buf := writeWorkbook(t, "Payments", [][]interface{}{
		{"batch", "transaction_code", "routing_number", "account_number", "receiver_id", "receiver_name", "amount", "description"},
		{"payroll", "22", "231380104", "744-5678-99", "EMP-1", "Jane Doe", "1500.25", "Payroll"},
		{}, // skipped
		{"payroll", "27", "987654320", "12345", "EMP-2", "John Smith", "10.00"},
	})

	rows, err := ReadXLSX(buf, "Payments")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "Payroll", rows[0].Description)
	require.Equal(t, "231380104", rows[0].RoutingNumber)
	require.Equal(t, "1500.25", rows[0].Amount)

	// trailing empty cells are padded
	require.Equal(t, "", rows[1].Description)
	require.Equal(t, "John Smith", rows[1].ReceiverName)
}

func TestReadXLSX__firstSheet(t *testing.T) {
	buf := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"batch", "transaction_code", "amount"},
		{"a", "credit", "1.00"},
	})

	rows := readFile(t, config.Input{Format: config.InputXLSX}, writeTemp(t, buf))
	require.Len(t, rows, 1)
	require.Equal(t, "credit", rows[0].TransactionCode)
}

func TestReadXLSX__errors(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("not a workbook"), "")
	require.Error(t, err)

	buf := writeWorkbook(t, "Sheet1", [][]interface{}{{"batch"}})
	_, err = ReadXLSX(buf, "Missing")
	require.Error(t, err)
}

func writeTemp(t *testing.T, buf *bytes.Buffer) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "payments.xlsx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))
	return path
}
