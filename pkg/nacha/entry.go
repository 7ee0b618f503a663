// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package nacha

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// TransactionCode identifies the account type and direction of an Entry.
type TransactionCode int

const (
	// CheckingCredit is an automated deposit into a checking account.
	CheckingCredit TransactionCode = 22

	// CheckingDebit is an automated payment from a checking account.
	CheckingDebit TransactionCode = 27
)

// Validate returns ErrInvalidTransactionCode for any code other than
// CheckingCredit or CheckingDebit.
func (c TransactionCode) Validate() error {
	switch c {
	case CheckingCredit, CheckingDebit:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrInvalidTransactionCode, int(c))
}

func (c TransactionCode) IsDebit() bool {
	return c == CheckingDebit
}

func (c TransactionCode) IsCredit() bool {
	return !c.IsDebit()
}

func (c TransactionCode) String() string {
	return strconv.Itoa(int(c))
}

const (
	routingNumberLength = 9

	accountNumberLength  = 17
	amountLength         = 10
	receiverIDMaxLength  = 17
	receiverIDLength     = 15
	receiverNameLength   = 22
	entryRecordTypeCode  = "6"
	addendaRecordMissing = "0"
)

// Entry is one PPD entry detail record: a single payment to or from a
// receiver's account.
//
// Every setter normalizes its own field. Batch and entry numbers are
// overwritten by the Batch holding the Entry.
type Entry struct {
	transactionCode TransactionCode
	routingNumber   string
	accountNumber   string
	amount          decimal.Decimal
	amountField     string
	receiverID      string
	receiverName    string

	entryNumber int
	batchNumber int
	traceNumber string
}

// NewEntry creates an Entry from every required field.
func NewEntry(code TransactionCode, routingNumber, accountNumber, receiverID, receiverName string, amount decimal.Decimal) (*Entry, error) {
	e := &Entry{
		entryNumber: 1,
		batchNumber: 1,
	}
	if err := e.SetTransactionCode(code); err != nil {
		return nil, err
	}
	if err := e.SetRoutingNumber(routingNumber); err != nil {
		return nil, err
	}
	e.SetAccountNumber(accountNumber).
		SetReceiverID(receiverID).
		SetReceiverName(receiverName).
		SetAmount(amount)
	e.updateTrace()
	return e, nil
}

func (e *Entry) SetTransactionCode(code TransactionCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	e.transactionCode = code
	return nil
}

// SetRoutingNumber stores the first nine characters of the receiving DFI's
// routing number. Shorter values are rejected.
func (e *Entry) SetRoutingNumber(number string) error {
	if utf8.RuneCountInString(number) < routingNumberLength {
		return fmt.Errorf("%w: %q is shorter than %d characters", ErrRoutingNumberInvalid, number, routingNumberLength)
	}
	e.routingNumber = truncate(number, routingNumberLength)
	return nil
}

// SetAccountNumber keeps up to 17 characters, space filled on the right.
func (e *Entry) SetAccountNumber(number string) *Entry {
	e.accountNumber = padRight(truncate(number, accountNumberLength), accountNumberLength)
	return e
}

// SetAmount stores the amount in major units (dollars). The record carries
// it in minor units, rounded half away from zero.
func (e *Entry) SetAmount(amount decimal.Decimal) *Entry {
	e.amount = amount
	e.amountField = cents(amount, amountLength)
	return e
}

// SetReceiverID keeps up to 17 characters and right justifies the value in
// 15. Values of 16 or 17 characters are written as is.
func (e *Entry) SetReceiverID(id string) *Entry {
	e.receiverID = padLeft(truncate(id, receiverIDMaxLength), receiverIDLength, " ")
	return e
}

// SetReceiverName keeps up to 22 characters, upper-cased and space filled.
func (e *Entry) SetReceiverName(name string) *Entry {
	e.receiverName = alpha(name, receiverNameLength)
	return e
}

// SetEntryNumber sets the entry's position within its batch.
func (e *Entry) SetEntryNumber(n int) *Entry {
	e.entryNumber = n
	e.updateTrace()
	return e
}

func (e *Entry) SetBatchNumber(n int) *Entry {
	e.batchNumber = n
	e.updateTrace()
	return e
}

func (e *Entry) updateTrace() {
	e.traceNumber = traceNumber(e.batchNumber, e.entryNumber)
}

func (e *Entry) TransactionCode() TransactionCode { return e.transactionCode }
func (e *Entry) RoutingNumber() string { return e.routingNumber }
func (e *Entry) AccountNumber() string { return e.accountNumber }
func (e *Entry) Amount() decimal.Decimal { return e.amount }
func (e *Entry) ReceiverID() string { return e.receiverID }
func (e *Entry) ReceiverName() string { return e.receiverName }
func (e *Entry) EntryNumber() int { return e.entryNumber }
func (e *Entry) BatchNumber() int { return e.batchNumber }
func (e *Entry) TraceNumber() string { return e.traceNumber }

func (e *Entry) IsDebit() bool {
	return e.transactionCode.IsDebit()
}

func (e *Entry) IsCredit() bool {
	return !e.IsDebit()
}

// roundedAmount is the amount written into the record, in major units.
func (e *Entry) roundedAmount() decimal.Decimal {
	return e.amount.Round(2)
}

// routingValue is the routing number as an integer, used for entry hashes.
func (e *Entry) routingValue() int64 {
	return leadingInt(e.routingNumber)
}

// Fields returns the entry detail record in wire order.
func (e *Entry) Fields() Record {
	return Record{
		{Name: "RecordType", Value: entryRecordTypeCode},
		{Name: "TransactionCode", Value: e.transactionCode.String()},
		{Name: "RoutingNumber", Value: e.routingNumber},
		{Name: "AccountNumber", Value: e.accountNumber},
		{Name: "Amount", Value: e.amountField},
		{Name: "ReceiverID", Value: e.receiverID},
		{Name: "ReceiverName", Value: e.receiverName},
		{Name: "DiscretionaryData", Value: "  "},
		{Name: "AddendaRecordIndicator", Value: addendaRecordMissing},
		{Name: "TraceNumber", Value: e.traceNumber},
		{Name: "LineEnding", Value: "\n"},
	}
}

// Render writes the entry detail record followed by a newline.
func (e *Entry) Render(f Format) string {
	e.updateTrace()
	return e.Fields().Format(f.separator())
}

func (e *Entry) String() string {
	return e.Render(Format{})
}
