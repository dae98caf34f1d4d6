// Package ingest reads and validates the two required spreadsheet exports:
// the Caterease order list and the Intuit timesheet.
package ingest

import (
	"fmt"
	"strings"

	"github.com/jlsnow301/payroll-app/internal/common"
	"github.com/jlsnow301/payroll-app/internal/model"
)

// CatereaseHeaders is the required header row of the order export.
var CatereaseHeaders = []string{
	"Date",
	"Delivery Person",
	"Client/Organization",
	"Description",
	"Actual",
	"Grat",
	"Delivery Category",
	"Sub-Event #",
	"Kitchen Ready by",
	"Subtotal",
}

// IntuitHeaders is the required header row of the timesheet export.
var IntuitHeaders = []string{
	"First name",
	"Last name",
	"Username",
	"Start time",
	"End time",
	"Customer",
	"Hours",
	"Miles",
}

// ExpectedHeaders returns both header rows for display to the user.
func ExpectedHeaders() model.ExpectedHeaders {
	return model.ExpectedHeaders{
		Caterease: append([]string(nil), CatereaseHeaders...),
		Intuit:    append([]string(nil), IntuitHeaders...),
	}
}

// validateHeaders checks the first row of a sheet against the expected
// headers, comparing trimmed and lowercased.
func validateHeaders(row []string, expected []string) error {
	for col, header := range expected {
		if col >= len(row) {
			return fmt.Errorf("%w: missing column %d (expected: %q)",
				common.ErrInvalidHeader, col, header)
		}

		value := strings.TrimSpace(row[col])
		if !strings.EqualFold(header, value) {
			return fmt.Errorf("%w: %q (expected: %q)",
				common.ErrInvalidHeader, value, header)
		}
	}

	return nil
}
