// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
)

// SumAmounts adds every amount together. Each must share the first amount's currency.
func SumAmounts(amounts ...*Amount) (*Amount, error) {
	total := &Amount{symbol: defaultSymbol}
	for i := range amounts {
		if amounts[i] == nil {
			continue
		}
		if i == 0 {
			total.symbol = amounts[i].Symbol()
		}
		sum, err := total.Plus(*amounts[i])
		if err != nil {
			return nil, fmt.Errorf("problem adding '%s': %v", amounts[i], err)
		}
		total = &sum
	}
	return total, nil
}
