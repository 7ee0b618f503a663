// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package nacha

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Service class codes written on batch header and control records.
const (
	MixedDebitsAndCredits = 200
	CreditsOnly           = 220
	DebitsOnly            = 225
)

// PPD is the standard entry class code for Prearranged Payment and Deposit entries.
const PPD = "PPD"

const (
	companyNameLength      = 16
	entryDescriptionLength = 10
	originatingIDLength    = 8
	batchNumberDigits      = 7
)

// Batch is an ordered group of entries sharing company identity and an
// effective entry date. A Batch renders as its header record, each entry,
// then its control record.
type Batch struct {
	serviceClassCode      int
	companyName           string
	companyIdentification string
	entryDescription      string
	effectiveEntryDate    string
	originatingID         string
	batchNumber           int
	batchNumberField      string

	// control fields, recomputed on each render
	entryCount  string
	entryHash   string
	debitTotal  string
	creditTotal string

	entries []*Entry
}

// NewBatch returns an empty batch numbered 1 with today's effective entry date.
func NewBatch() *Batch {
	b := &Batch{
		serviceClassCode: MixedDebitsAndCredits,
		debitTotal:       strings.Repeat("0", 12),
		creditTotal:      strings.Repeat("0", 12),
	}
	b.SetEffectiveEntryDate(time.Now())
	b.SetBatchNumber(1)
	return b
}

// AddEntry assigns the entry this batch's number and the next sequence
// number, then appends it.
func (b *Batch) AddEntry(e *Entry) *Batch {
	e.SetBatchNumber(b.batchNumber).SetEntryNumber(len(b.entries) + 1)
	b.entries = append(b.entries, e)
	return b
}

// Entries returns the held entries in insertion order.
func (b *Batch) Entries() []*Entry {
	return b.entries
}

// SetBatchNumber updates the batch number on header, control and every entry.
func (b *Batch) SetBatchNumber(n int) *Batch {
	b.batchNumber = n
	b.batchNumberField = numeric(n, batchNumberDigits)
	for _, e := range b.entries {
		e.SetBatchNumber(n)
	}
	return b
}

func (b *Batch) BatchNumber() int {
	return b.batchNumber
}

// SetCompanyIdentification sets the originator's company id on header and
// control. It should match the file's company id.
func (b *Batch) SetCompanyIdentification(id string) *Batch {
	b.companyIdentification = id
	return b
}

// SetOriginatingID sets the originating DFI identification: the first 8
// characters of its routing number.
func (b *Batch) SetOriginatingID(id string) *Batch {
	b.originatingID = ABA8(id)
	return b
}

// SetCompanyName keeps up to 16 characters, upper-cased and space filled.
func (b *Batch) SetCompanyName(name string) *Batch {
	b.companyName = alpha(name, companyNameLength)
	return b
}

// SetEntryDescription keeps up to 10 characters, upper-cased and space
// filled. Receivers see this on their statements (e.g. PAYROLL).
func (b *Batch) SetEntryDescription(description string) *Batch {
	b.entryDescription = alpha(description, entryDescriptionLength)
	return b
}

// SetEffectiveEntryDate sets the date the entries are intended to settle.
func (b *Batch) SetEffectiveEntryDate(t time.Time) *Batch {
	b.effectiveEntryDate = t.Format("060102")
	return b
}

// ServiceClassCode returns the code computed on the last render.
func (b *Batch) ServiceClassCode() int {
	return b.serviceClassCode
}

// EntryCount returns the number of held entries.
func (b *Batch) EntryCount() int {
	return len(b.entries)
}

// DebitTotal sums the amounts of every debit entry, each rounded to the
// cent as its record carries it.
func (b *Batch) DebitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.entries {
		if e.IsDebit() {
			total = total.Add(e.roundedAmount())
		}
	}
	return total
}

// CreditTotal sums the amounts of every credit entry, each rounded to the
// cent as its record carries it.
func (b *Batch) CreditTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.entries {
		if e.IsCredit() {
			total = total.Add(e.roundedAmount())
		}
	}
	return total
}

// RoutingSum adds every entry's routing number.
func (b *Batch) RoutingSum() int64 {
	var total int64
	for _, e := range b.entries {
		total += e.routingValue()
	}
	return total
}

// EntryHash is the last ten digits of RoutingSum. It is not zero filled.
func (b *Batch) EntryHash() string {
	return lastDigits(b.RoutingSum(), 10)
}

// BlockCount counts the entries plus the header and control records.
func (b *Batch) BlockCount() int {
	return b.EntryCount() + 2
}

// Validate checks the batch can be rendered.
func (b *Batch) Validate() error {
	if len(b.entries) == 0 {
		return ErrEmptyBatch
	}
	return nil
}

// updateServiceClassCode compares every entry's direction against the
// first. An empty batch keeps its current code.
func (b *Batch) updateServiceClassCode() {
	if len(b.entries) == 0 {
		return
	}
	isCredit := b.entries[0].IsCredit()
	for _, e := range b.entries {
		if e.IsCredit() != isCredit {
			b.serviceClassCode = MixedDebitsAndCredits
			return
		}
	}
	if isCredit {
		b.serviceClassCode = CreditsOnly
	} else {
		b.serviceClassCode = DebitsOnly
	}
}

func (b *Batch) updateControl() {
	b.entryHash = padLeft(b.EntryHash(), 10, "0")
	b.debitTotal = cents(b.DebitTotal(), 12)
	b.creditTotal = cents(b.CreditTotal(), 12)
	b.entryCount = numeric(b.EntryCount(), 6)
}

// Header returns the batch header record in wire order.
func (b *Batch) Header() Record {
	return Record{
		{Name: "RecordType", Value: "5"},
		{Name: "ServiceClassCode", Value: strconv.Itoa(b.serviceClassCode)},
		{Name: "CompanyName", Value: b.companyName},
		{Name: "CompanyDiscretionaryData", Value: strings.Repeat(" ", 20)},
		{Name: "CompanyIdentification", Value: b.companyIdentification},
		{Name: "StandardEntryClassCode", Value: PPD},
		{Name: "CompanyEntryDescription", Value: b.entryDescription},
		{Name: "CompanyDescriptiveDate", Value: strings.Repeat(" ", 6)},
		{Name: "EffectiveEntryDate", Value: b.effectiveEntryDate},
		{Name: "SettlementDate", Value: strings.Repeat(" ", 3)},
		{Name: "OriginatorStatusCode", Value: "1"},
		{Name: "ODFIIdentification", Value: b.originatingID},
		{Name: "BatchNumber", Value: b.batchNumberField},
		{Name: "LineEnding", Value: "\n"},
	}
}

// Control returns the batch control record in wire order, as of the last render.
func (b *Batch) Control() Record {
	return Record{
		{Name: "RecordType", Value: "8"},
		{Name: "ServiceClassCode", Value: strconv.Itoa(b.serviceClassCode)},
		{Name: "EntryAddendaCount", Value: b.entryCount},
		{Name: "EntryHash", Value: b.entryHash},
		{Name: "TotalDebitEntryDollarAmount", Value: b.debitTotal},
		{Name: "TotalCreditEntryDollarAmount", Value: b.creditTotal},
		{Name: "CompanyIdentification", Value: b.companyIdentification},
		{Name: "MessageAuthenticationCode", Value: strings.Repeat(" ", 19)},
		{Name: "Reserved", Value: strings.Repeat(" ", 6)},
		{Name: "ODFIIdentification", Value: b.originatingID},
		{Name: "BatchNumber", Value: b.batchNumberField},
		{Name: "LineEnding", Value: "\n"},
	}
}

// Render recomputes the service class code and control totals, then writes
// the header, every entry and the control record.
//
// Callers must add at least one entry first; see Validate.
func (b *Batch) Render(f Format) string {
	b.updateServiceClassCode()

	var buf strings.Builder
	buf.WriteString(b.Header().Format(f.separator()))
	for _, e := range b.entries {
		buf.WriteString(e.Render(f))
	}
	b.updateControl()
	buf.WriteString(b.Control().Format(f.separator()))
	return buf.String()
}

func (b *Batch) String() string {
	return b.Render(Format{})
}
