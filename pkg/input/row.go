// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package input

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/moov-io/ach"
	"github.com/moov-io/nachagen/pkg/model"
	"github.com/moov-io/nachagen/pkg/nacha"
	"github.com/moov-io/nachagen/pkg/util"
)

// Row is one payment read from a spreadsheet. Columns are matched by the
// header names in the csv tags.
type Row struct {
	Batch           string `csv:"batch"`
	Description     string `csv:"description"`
	EffectiveDate   string `csv:"effective_date"`
	TransactionCode string `csv:"transaction_code"`
	RoutingNumber   string `csv:"routing_number"`
	AccountNumber   string `csv:"account_number"`
	ReceiverID      string `csv:"receiver_id"`
	ReceiverName    string `csv:"receiver_name"`
	Amount          string `csv:"amount"`

	// Line is where the row was found, counting the header as line 1.
	Line int `csv:"-"`
}

var (
	errUnsupportedCurrency = errors.New("only USD amounts can be originated")
	errFractionalCents     = errors.New("fractions of a cent cannot be originated")
	errAmountTooLarge      = errors.New("exceeds 99999999.99")
)

// maxAmountCents is the largest value the ten digit amount field holds.
const maxAmountCents = 9999999999

// ParseTransactionCode accepts the numeric code or its direction.
func ParseTransactionCode(v string) (nacha.TransactionCode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "22", "credit":
		return nacha.CheckingCredit, nil
	case "27", "debit":
		return nacha.CheckingDebit, nil
	}
	return 0, fmt.Errorf("%w: %q", nacha.ErrInvalidTransactionCode, v)
}

// Entry validates the row and converts it into an entry. Free text columns
// are reduced to printable ASCII first.
func (r Row) Entry() (*nacha.Entry, error) {
	entry, _, err := r.entry()
	return entry, err
}

func (r Row) entry() (*nacha.Entry, *model.Amount, error) {
	code, err := ParseTransactionCode(r.TransactionCode)
	if err != nil {
		return nil, nil, err
	}

	routing := strings.TrimSpace(r.RoutingNumber)
	if err := ach.CheckRoutingNumber(routing); err != nil {
		return nil, nil, fmt.Errorf("routing_number: %v", err)
	}

	account := Sanitize(r.AccountNumber)
	if account == "" {
		return nil, nil, errors.New("account_number: missing")
	}

	amt, err := r.amount()
	if err != nil {
		return nil, nil, fmt.Errorf("amount: %w", err)
	}

	entry, err := nacha.NewEntry(code, routing, account, Sanitize(r.ReceiverID), Sanitize(r.ReceiverName), amt.Decimal())
	if err != nil {
		return nil, nil, err
	}
	return entry, amt, nil
}

// amount parses the amount column. Entries carry whole cents in a ten digit field.
func (r Row) amount() (*model.Amount, error) {
	amt, err := model.ParseAmount(r.Amount)
	if err != nil {
		return nil, err
	}
	if amt.Symbol() != "USD" {
		return nil, errUnsupportedCurrency
	}
	if !amt.WholeCents() {
		return nil, fmt.Errorf("%s: %w", amt, errFractionalCents)
	}
	if amt.Cents() > maxAmountCents {
		return nil, fmt.Errorf("%s %w", amt, errAmountTooLarge)
	}
	return amt, nil
}

// effectiveDate returns the zero time when the column is blank.
func (r Row) effectiveDate() (time.Time, error) {
	v := strings.TrimSpace(r.EffectiveDate)
	if v == "" {
		return time.Time{}, nil
	}
	when := util.FirstParsedTime(v, util.DateFormats...)
	if when.IsZero() {
		return when, fmt.Errorf("effective_date: unable to parse %q", v)
	}
	return when, nil
}
