// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/finance-calculators/pkg/salary"
)

// FindRow finds a row by label in a comparison table.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(table salary.Table, label string) *salary.TableRow {
	for i := range table.Rows {
		if table.Rows[i].Label == label {
			return &table.Rows[i]
		}
	}
	return nil
}

