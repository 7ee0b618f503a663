// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package nacha

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	companyIDLength   = 10
	fileNameLength    = 23
	recordSize        = "094"
	blockingFactor    = "10"
	fileIDModifier    = "A"
	fileControlFiller = 39
)

// File is a NACHA file: a header record, each batch, and a control record.
//
// Company and ODFI values set on a File are pushed into every batch it
// holds, both when the value changes and when a batch is added.
type File struct {
	destination     string
	origin          string
	creationDate    string
	creationTime    string
	destinationName string
	originName      string

	destinationRouting string
	companyID          string

	// control fields, recomputed on each render
	batchCount  string
	blockCount  string
	recordCount string
	entryHash   string
	debitTotal  string
	creditTotal string

	batches []*Batch
}

// NewFile returns an empty file created now.
func NewFile() *File {
	f := &File{}
	f.SetCreationTime(time.Now())
	return f
}

// AddBatch numbers the batch after the batches already held, pushes the
// file's company and ODFI values into it and appends it.
func (f *File) AddBatch(b *Batch) *File {
	b.SetCompanyIdentification(f.origin).
		SetBatchNumber(len(f.batches) + 1).
		SetOriginatingID(f.destination).
		SetCompanyName(f.originName)

	f.batches = append(f.batches, b)
	return f
}

// Batches returns the held batches in insertion order.
func (f *File) Batches() []*Batch {
	return f.batches
}

// SetCompanyID sets the 10 character originator identification and pushes
// it into every batch.
func (f *File) SetCompanyID(id string) error {
	if n := utf8.RuneCountInString(id); n != companyIDLength {
		return fmt.Errorf("%w: %q has %d characters, expected %d", ErrCompanyIDInvalid, id, n, companyIDLength)
	}
	f.companyID = id
	f.origin = id
	for _, b := range f.batches {
		b.SetCompanyIdentification(id)
	}
	return nil
}

// SetDestinationRouting sets the routing number of the bank receiving this
// file. It is written with a leading space and pushed into every batch as
// the originating DFI identification.
func (f *File) SetDestinationRouting(number string) error {
	if n := utf8.RuneCountInString(number); n != routingNumberLength {
		return fmt.Errorf("%w: %q has %d characters, expected %d", ErrRoutingNumberInvalid, number, n, routingNumberLength)
	}
	f.destinationRouting = number
	f.destination = " " + number
	for _, b := range f.batches {
		b.SetOriginatingID(number)
	}
	return nil
}

// SetDestinationName sets the name of the bank referenced by the
// destination routing number.
func (f *File) SetDestinationName(name string) *File {
	f.destinationName = alpha(name, fileNameLength)
	return f
}

// SetCompanyName sets the originator name and pushes it into every batch.
func (f *File) SetCompanyName(name string) *File {
	name = strings.ToUpper(truncate(name, fileNameLength))
	f.originName = padRight(name, fileNameLength)
	for _, b := range f.batches {
		b.SetCompanyName(name)
	}
	return f
}

// SetCreationTime overrides the creation date and time written in the header.
func (f *File) SetCreationTime(t time.Time) *File {
	f.creationDate = t.Format("060102")
	f.creationTime = t.Format("1504")
	return f
}

func (f *File) CompanyID() string { return f.companyID }
func (f *File) DestinationRouting() string { return f.destinationRouting }

// BatchCount returns the number of held batches.
func (f *File) BatchCount() int {
	return len(f.batches)
}

// RecordCount sums the entry count of every batch.
func (f *File) RecordCount() int {
	total := 0
	for _, b := range f.batches {
		total += b.EntryCount()
	}
	return total
}

func (f *File) DebitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, b := range f.batches {
		total = total.Add(b.DebitTotal())
	}
	return total
}

func (f *File) CreditTotal() decimal.Decimal {
	total := decimal.Zero
	for _, b := range f.batches {
		total = total.Add(b.CreditTotal())
	}
	return total
}

// EntryHash is the last ten digits of every batch's routing sum added
// together. It is not zero filled.
func (f *File) EntryHash() string {
	var total int64
	for _, b := range f.batches {
		total += b.RoutingSum()
	}
	return lastDigits(total, 10)
}

// BlockCount is the number of 10 record blocks needed for every batch plus
// the file header and control records.
func (f *File) BlockCount() int {
	records := 2
	for _, b := range f.batches {
		records += b.BlockCount()
	}
	return (records + BlockingFactor - 1) / BlockingFactor
}

// Validate checks every batch can be rendered.
func (f *File) Validate() error {
	for i, b := range f.batches {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("batch %d: %w", i+1, err)
		}
	}
	return nil
}

func (f *File) updateControl() {
	f.batchCount = numeric(f.BatchCount(), 6)
	f.blockCount = numeric(f.BlockCount(), 6)
	f.recordCount = numeric(f.RecordCount(), 8)
	f.debitTotal = cents(f.DebitTotal(), 12)
	f.creditTotal = cents(f.CreditTotal(), 12)
	f.entryHash = padLeft(f.EntryHash(), 10, "0")
}

// Header returns the file header record in wire order.
func (f *File) Header() Record {
	return Record{
		{Name: "RecordType", Value: "1"},
		{Name: "PriorityCode", Value: "01"},
		{Name: "ImmediateDestination", Value: f.destination},
		{Name: "ImmediateOrigin", Value: f.origin},
		{Name: "FileCreationDate", Value: f.creationDate},
		{Name: "FileCreationTime", Value: f.creationTime},
		{Name: "FileIDModifier", Value: fileIDModifier},
		{Name: "RecordSize", Value: recordSize},
		{Name: "BlockingFactor", Value: blockingFactor},
		{Name: "FormatCode", Value: "1"},
		{Name: "ImmediateDestinationName", Value: f.destinationName},
		{Name: "ImmediateOriginName", Value: f.originName},
		{Name: "ReferenceCode", Value: strings.Repeat(" ", 8)},
		{Name: "LineEnding", Value: "\n"},
	}
}

// Control returns the file control record in wire order, as of the last
// render. It has no line ending.
func (f *File) Control() Record {
	return Record{
		{Name: "RecordType", Value: "9"},
		{Name: "BatchCount", Value: f.batchCount},
		{Name: "BlockCount", Value: f.blockCount},
		{Name: "EntryAddendaCount", Value: f.recordCount},
		{Name: "EntryHash", Value: f.entryHash},
		{Name: "TotalDebitEntryDollarAmountInFile", Value: f.debitTotal},
		{Name: "TotalCreditEntryDollarAmountInFile", Value: f.creditTotal},
		{Name: "Reserved", Value: strings.Repeat(" ", fileControlFiller)},
	}
}

// Render writes the header, every batch and the control record.
func (f *File) Render(format Format) string {
	var buf strings.Builder
	buf.WriteString(f.Header().Format(format.separator()))
	lines := 1
	for _, b := range f.batches {
		buf.WriteString(b.Render(format))
		lines += b.BlockCount()
	}
	f.updateControl()
	buf.WriteString(f.Control().Format(format.separator()))
	lines++

	if format.PadBlocks {
		return padToBlocks(buf.String(), lines)
	}
	return buf.String()
}

func (f *File) String() string {
	return f.Render(Format{})
}
