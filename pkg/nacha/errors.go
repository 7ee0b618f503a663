// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package nacha

import (
	"errors"
)

var (
	// ErrRoutingNumberInvalid is returned when a routing number is shorter
	// than an Entry accepts or is not exactly nine characters on a File.
	ErrRoutingNumberInvalid = errors.New("routing number invalid")

	// ErrInvalidTransactionCode is returned for transaction codes other than
	// CheckingCredit and CheckingDebit.
	ErrInvalidTransactionCode = errors.New("invalid transaction code")

	// ErrCompanyIDInvalid is returned when a company identification is not
	// exactly ten characters.
	ErrCompanyIDInvalid = errors.New("company identification invalid")

	// ErrEmptyBatch is returned from Validate when a Batch holds no entries.
	// The service class code of an empty batch cannot be derived.
	ErrEmptyBatch = errors.New("batch has no entries")
)
