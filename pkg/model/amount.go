// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	// ErrDifferentCurrencies is returned when an operation on an Amount instance is attempted with another Amount of a different currency (symbol).
	ErrDifferentCurrencies = errors.New("different currencies")

	// ErrNegativeAmount is returned when a parsed amount is below zero. ACH entries carry their
	// direction in the transaction code, never in the sign of the amount.
	ErrNegativeAmount = errors.New("negative amount")
)

const defaultSymbol = "USD"

// Amount represents units of a particular currency.
type Amount struct {
	number decimal.Decimal
	symbol string // ISO 4217, i.e. USD, GBP
}

// Cents returns the currency amount in minor units, rounding half cents up.
// Example: "USD 1.115" returns 112
func (a *Amount) Cents() int64 {
	if a == nil {
		return 0
	}
	return a.number.Shift(2).Round(0).IntPart()
}

// Decimal returns the amount in major units.
func (a *Amount) Decimal() decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	return a.number
}

func (a *Amount) Symbol() string {
	if a == nil || a.symbol == "" {
		return defaultSymbol
	}
	return a.symbol
}

// Plus returns an Amount of adding both Amount instances together.
// Currency symbols must match for Plus to return without errors.
func (a Amount) Plus(other Amount) (Amount, error) {
	if a.Symbol() != other.Symbol() {
		return a, ErrDifferentCurrencies
	}
	return Amount{number: a.number.Add(other.number), symbol: a.Symbol()}, nil
}

// String returns an amount formatted with the currency.
// Examples:
//   USD 12.53
//   GBP 4.02
//
// The symbol returned corresponds to the ISO 4217 standard.
func (a *Amount) String() string {
	if a == nil {
		return "USD 0.00"
	}
	return fmt.Sprintf("%s %s", a.Symbol(), a.number.StringFixed(2))
}

// WholeCents reports whether the amount has no fraction of a minor unit.
func (a *Amount) WholeCents() bool {
	return a == nil || a.number.Equal(decimal.New(a.Cents(), -2))
}

// ParseAmount attempts to read a string as a valid currency symbol and number.
// The symbol is optional and defaults to USD.
// Examples:
//   USD 12.53
//   12.53
func ParseAmount(in string) (*Amount, error) {
	in = strings.TrimSpace(in)
	if len(strings.Fields(in)) == 1 {
		in = fmt.Sprintf("%s %s", defaultSymbol, in)
	}
	amt := &Amount{}
	if err := amt.FromString(in); err != nil {
		return nil, err
	}
	return amt, nil
}

// FromString attempts to parse str as a valid currency symbol and
// the quantity. Thousands separators are accepted.
// Examples:
//   USD 12.53
//   GBP 4.02
//   USD 1,204.00
func (a *Amount) FromString(str string) error {
	if a == nil {
		return errors.New("nil Amount")
	}

	parts := strings.Fields(str)
	if len(parts) != 2 {
		return fmt.Errorf("invalid Amount format: %q", str)
	}

	sym, err := currency.ParseISO(parts[0])
	if err != nil {
		return err
	}

	number, err := decimal.NewFromString(strings.ReplaceAll(parts[1], ",", ""))
	if err != nil {
		return fmt.Errorf("unable to read %s: %v", parts[1], err)
	}
	if number.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, parts[1])
	}

	a.number = number
	a.symbol = sym.String()
	return nil
}
