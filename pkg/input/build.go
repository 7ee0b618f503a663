// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package input

import (
	"errors"
	"fmt"

	"github.com/moov-io/nachagen/pkg/config"
	"github.com/moov-io/nachagen/pkg/model"
	"github.com/moov-io/nachagen/pkg/nacha"
	"github.com/moov-io/nachagen/x/mask"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/moov-io/base"
)

var ErrNoRows = errors.New("no payment rows")

// Build converts rows into a file for the configured ODFI and company.
// Rows sharing a batch column value are grouped into one batch, and batches
// are ordered by the first row naming them. The first row of each batch
// supplies its description and effective date.
//
// Every invalid row is reported in the returned error, not only the first.
func Build(logger log.Logger, cfg *config.Config, rows []Row) (*nacha.File, error) {
	if cfg == nil {
		return nil, errors.New("missing Config")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	file := nacha.NewFile()
	if err := file.SetCompanyID(cfg.Company.Identification); err != nil {
		return nil, fmt.Errorf("company: %w", err)
	}
	if err := file.SetDestinationRouting(cfg.ODFI.RoutingNumber); err != nil {
		return nil, fmt.Errorf("odfi: %w", err)
	}
	file.SetDestinationName(Sanitize(cfg.ODFI.DestinationName)).
		SetCompanyName(Sanitize(cfg.Company.Name))

	var el base.ErrorList
	var credits, debits []*model.Amount
	batches := make(map[string]*nacha.Batch)

	for _, row := range rows {
		entry, amt, err := row.entry()
		if err != nil {
			el.Add(fmt.Errorf("line %d: %v", row.Line, err))
			continue
		}

		key := Sanitize(row.Batch)
		batch, exists := batches[key]
		if !exists {
			batch, err = newBatch(cfg, row)
			if err != nil {
				el.Add(fmt.Errorf("line %d: %v", row.Line, err))
				continue
			}
			batches[key] = batch
			file.AddBatch(batch)
		}
		batch.AddEntry(entry)

		direction := "credit"
		if entry.IsDebit() {
			direction = "debit"
			debits = append(debits, amt)
		} else {
			credits = append(credits, amt)
		}
		level.Debug(logger).Log("input", fmt.Sprintf("line %d: added %s entry", row.Line, direction),
			"batch", batch.BatchNumber(), "account", mask.AccountNumber(row.AccountNumber), "amount", amt.String())
	}
	if !el.Empty() {
		level.Error(logger).Log("input", fmt.Sprintf("%d invalid rows", len(el)))
		return nil, el
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}

	debitTotal, err := model.SumAmounts(debits...)
	if err != nil {
		return nil, fmt.Errorf("debits: %v", err)
	}
	creditTotal, err := model.SumAmounts(credits...)
	if err != nil {
		return nil, fmt.Errorf("credits: %v", err)
	}
	level.Info(logger).Log("input", fmt.Sprintf("built file with %d batches and %d entries", file.BatchCount(), file.RecordCount()),
		"debits", debitTotal.String(), "credits", creditTotal.String())

	return file, nil
}

func newBatch(cfg *config.Config, row Row) (*nacha.Batch, error) {
	batch := nacha.NewBatch()

	description := Sanitize(row.Description)
	if description == "" {
		description = Sanitize(cfg.Company.EntryDescription)
	}
	batch.SetEntryDescription(description)

	when, err := row.effectiveDate()
	if err != nil {
		return nil, err
	}
	if !when.IsZero() {
		batch.SetEffectiveEntryDate(when)
	}
	return batch, nil
}
