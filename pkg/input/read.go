// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/moov-io/nachagen/pkg/config"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// Read parses every row from r in the configured format.
func Read(cfg config.Input, r io.Reader) ([]Row, error) {
	switch strings.ToLower(cfg.Format) {
	case config.InputCSV:
		return ReadCSV(r, cfg.Delimiter)
	case config.InputXLSX:
		return ReadXLSX(r, cfg.Sheet)
	}
	return nil, fmt.Errorf("unknown input format %q", cfg.Format)
}

// ReadCSV parses rows separated by delimiter, which defaults to a comma.
func ReadCSV(r io.Reader, delimiter string) ([]Row, error) {
	reader := csv.NewReader(r)
	if delimiter != "" {
		reader.Comma, _ = utf8.DecodeRuneInString(delimiter)
	}
	reader.TrimLeadingSpace = true
	return unmarshal(reader)
}

// ReadXLSX parses rows from one sheet of a workbook, the first sheet when
// sheet is empty.
func ReadXLSX(r io.Reader, sheet string) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("problem opening workbook: %v", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("problem reading sheet %q: %v", sheet, err)
	}
	return unmarshal(&sheetReader{rows: cells})
}

func unmarshal(reader gocsv.CSVReader) ([]Row, error) {
	var rows []Row
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, errors.New("no rows found")
		}
		return nil, fmt.Errorf("problem reading rows: %v", err)
	}
	for i := range rows {
		rows[i].Line = i + 2
	}
	return rows, nil
}

// sheetReader feeds worksheet cells to gocsv. Rows are padded to the
// header's width since excelize drops trailing empty cells.
type sheetReader struct {
	rows [][]string
	next int
}

func (s *sheetReader) Read() ([]string, error) {
	for s.next < len(s.rows) {
		row := s.rows[s.next]
		s.next++
		if blank(row) {
			continue
		}
		return s.pad(row), nil
	}
	return nil, io.EOF
}

func (s *sheetReader) ReadAll() ([][]string, error) {
	var out [][]string
	for {
		row, err := s.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
}

func (s *sheetReader) pad(row []string) []string {
	if len(s.rows) == 0 || len(row) >= len(s.rows[0]) {
		return row
	}
	out := make([]string, len(s.rows[0]))
	copy(out, row)
	return out
}

func blank(row []string) bool {
	return strings.TrimSpace(strings.Join(row, "")) == ""
}
