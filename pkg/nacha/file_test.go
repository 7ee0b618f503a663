// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package nacha

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func batchWith(t *testing.T, debits, credits []string) *Batch {
	t.Helper()

	b := NewBatch()
	for _, amt := range debits {
		b.AddEntry(newEntry(t, CheckingDebit, amt))
	}
	for _, amt := range credits {
		b.AddEntry(newEntry(t, CheckingCredit, amt))
	}
	return b
}

func TestFile__batchCount(t *testing.T) {
	f := NewFile()
	require.Equal(t, 0, f.BatchCount())

	f.AddBatch(NewBatch())
	require.Equal(t, 1, f.BatchCount())
}

func TestFile__batchNumbers(t *testing.T) {
	f := NewFile()
	first, second := NewBatch(), NewBatch()
	f.AddBatch(first).AddBatch(second)

	require.Equal(t, 1, first.BatchNumber())
	require.Equal(t, 2, second.BatchNumber())
	require.Equal(t, "0000002", second.Header().Get("BatchNumber"))
}

func TestFile__recordCount(t *testing.T) {
	f := NewFile()
	f.AddBatch(batchWith(t, []string{"1"}, []string{"1"}))
	require.Equal(t, 2, f.RecordCount())

	f.AddBatch(batchWith(t, []string{"1"}, nil))
	require.Equal(t, 3, f.RecordCount())
}

func TestFile__totals(t *testing.T) {
	f := NewFile()
	f.AddBatch(batchWith(t, []string{"50", "50"}, []string{"25", "50"}))

	require.True(t, decimal.NewFromInt(100).Equal(f.DebitTotal()))
	require.True(t, decimal.NewFromInt(75).Equal(f.CreditTotal()))

	f.AddBatch(batchWith(t, []string{"10"}, []string{"10"}))
	require.True(t, decimal.NewFromInt(110).Equal(f.DebitTotal()))
	require.True(t, decimal.NewFromInt(85).Equal(f.CreditTotal()))

	_ = f.String()
	require.Equal(t, "000000011000", f.Control().Get("TotalDebitEntryDollarAmountInFile"))
	require.Equal(t, "000000008500", f.Control().Get("TotalCreditEntryDollarAmountInFile"))
}

func TestFile__totalsMatchEntries(t *testing.T) {
	f := NewFile()
	f.AddBatch(batchWith(t, []string{"0.005"}, []string{"102.505", "102.505"}))
	f.AddBatch(batchWith(t, []string{"0.005"}, nil))

	_ = f.String()
	require.Equal(t, "000000000002", f.Control().Get("TotalDebitEntryDollarAmountInFile"))
	require.Equal(t, "000000020502", f.Control().Get("TotalCreditEntryDollarAmountInFile"))
}

func TestFile__entryHash(t *testing.T) {
	f := NewFile()
	for i := 0; i < 5; i++ {
		b := NewBatch()
		e := newEntry(t, CheckingDebit, "1")
		require.NoError(t, e.SetRoutingNumber("111111111"))
		b.AddEntry(e)
		f.AddBatch(b)
	}
	require.Equal(t, "555555555", f.EntryHash())

	_ = f.String()
	require.Equal(t, "0555555555", f.Control().Get("EntryHash"))
}

func TestFile__companyID(t *testing.T) {
	f := NewFile()
	b := NewBatch()
	f.AddBatch(b)

	require.NoError(t, f.SetCompanyID("1111111111"))
	require.Equal(t, "1111111111", f.CompanyID())
	require.Equal(t, "1111111111", f.Header().Get("ImmediateOrigin"))
	require.Equal(t, "1111111111", b.Header().Get("CompanyIdentification"))

	// batches added later pick up the id too
	later := NewBatch()
	f.AddBatch(later)
	require.Equal(t, "1111111111", later.Header().Get("CompanyIdentification"))
}

func TestFile__invalidCompanyID(t *testing.T) {
	f := NewFile()
	for _, id := range []string{"111111111", "11111111111", ""} {
		err := f.SetCompanyID(id)
		require.Error(t, err, id)
		require.True(t, errors.Is(err, ErrCompanyIDInvalid))
	}
	require.Equal(t, "", f.CompanyID())
}

func TestFile__destinationRouting(t *testing.T) {
	f := NewFile()
	b := NewBatch()
	f.AddBatch(b)

	require.NoError(t, f.SetDestinationRouting("111111111"))
	require.Equal(t, "111111111", f.DestinationRouting())
	require.Equal(t, " 111111111", f.Header().Get("ImmediateDestination"))
	require.Equal(t, "11111111", b.Header().Get("ODFIIdentification"))

	later := NewBatch()
	f.AddBatch(later)
	require.Equal(t, "11111111", later.Header().Get("ODFIIdentification"))
}

func TestFile__invalidDestinationRouting(t *testing.T) {
	f := NewFile()
	for _, rtn := range []string{"11111111", "1111111111"} {
		err := f.SetDestinationRouting(rtn)
		require.True(t, errors.Is(err, ErrRoutingNumberInvalid), rtn)
	}
	require.Equal(t, "", f.Header().Get("ImmediateDestination"))
}

func TestFile__names(t *testing.T) {
	f := NewFile()
	b := NewBatch()
	f.AddBatch(b)

	f.SetDestinationName("test").SetCompanyName("test")
	require.Equal(t, "TEST                   ", f.Header().Get("ImmediateDestinationName"))
	require.Equal(t, "TEST                   ", f.Header().Get("ImmediateOriginName"))
	require.Equal(t, "TEST            ", b.Header().Get("CompanyName"))

	f.SetCompanyName("a very long originator company name")
	require.Equal(t, "A VERY LONG ORIGINATOR ", f.Header().Get("ImmediateOriginName"))
	require.Equal(t, "A VERY LONG ORIG", b.Header().Get("CompanyName"))
}

func TestFile__blockCount(t *testing.T) {
	f := NewFile()
	require.Equal(t, 1, f.BlockCount()) // header and control alone

	// 2 + (6 + 2) = 10 records
	f.AddBatch(batchWith(t, []string{"1", "1", "1"}, []string{"1", "1", "1"}))
	require.Equal(t, 1, f.BlockCount())

	f.AddBatch(batchWith(t, []string{"1"}, nil))
	require.Equal(t, 2, f.BlockCount())
}

func testFile(t *testing.T) *File {
	t.Helper()

	f := NewFile()
	require.NoError(t, f.SetCompanyID("1234567890"))
	require.NoError(t, f.SetDestinationRouting("231380104"))
	f.SetDestinationName("Wells Fargo").
		SetCompanyName("Acme Corp").
		SetCreationTime(time.Date(2020, time.March, 3, 14, 5, 0, 0, time.UTC))

	b := NewBatch().
		SetEntryDescription("payroll").
		SetEffectiveEntryDate(time.Date(2020, time.March, 4, 0, 0, 0, 0, time.UTC))
	e, err := NewEntry(CheckingCredit, "987654320", "12345", "EMP-1", "Jane Doe", decimal.RequireFromString("1500.25"))
	require.NoError(t, err)
	b.AddEntry(e)
	f.AddBatch(b)

	return f
}

func TestFile__render(t *testing.T) {
	f := testFile(t)
	require.NoError(t, f.Validate())

	expected := strings.Join([]string{
		"101 23138010412345678902003031405A094101WELLS FARGO            ACME CORP                      ",
		"5220ACME CORP                           1234567890PPDPAYROLL         200304   1231380100000001",
		"62298765432012345            0000150025          EMP-1JANE DOE                0000000010000001",
		"822000000109876543200000000000000000001500251234567890                         231380100000001",
		"9000001000001000000010987654320000000000000000000150025                                       ",
	}, "\n")

	out := f.String()
	require.Equal(t, expected, out)
	require.False(t, strings.HasSuffix(out, "\n"))

	for _, line := range strings.Split(out, "\n") {
		require.Len(t, line, RecordLength)
	}
}

func TestFile__debugRender(t *testing.T) {
	f := testFile(t)

	lines := strings.Split(f.Render(Format{Debug: true}), "\n")
	require.Len(t, lines, 5)

	header := strings.Split(lines[0], DebugSeparator)
	require.Len(t, header, len(f.Header()))
	require.Equal(t, []string{"1", "01", " 231380104", "1234567890"}, header[:4])

	control := strings.Split(lines[4], DebugSeparator)
	require.Len(t, control, len(f.Control()))
	require.Equal(t, "000001", control[1])
}

func TestFile__padBlocks(t *testing.T) {
	f := testFile(t)

	out := f.Render(Format{PadBlocks: true})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	for _, line := range lines[5:] {
		require.Equal(t, strings.Repeat("9", RecordLength), line)
	}
	require.True(t, strings.HasPrefix(out, f.String()))

	// a full block needs no filler
	f = NewFile()
	f.AddBatch(batchWith(t, []string{"1", "1", "1"}, []string{"1", "1", "1"}))
	require.Len(t, strings.Split(f.Render(Format{PadBlocks: true}), "\n"), 10)
}

func TestFile__validate(t *testing.T) {
	f := NewFile()
	require.NoError(t, f.Validate())

	f.AddBatch(batchWith(t, []string{"1"}, nil)).AddBatch(NewBatch())
	err := f.Validate()
	require.True(t, errors.Is(err, ErrEmptyBatch))
	require.Contains(t, err.Error(), "batch 2")
}
