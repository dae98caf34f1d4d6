// Package backend implements the command contract the review front end
// depends on: file ingestion, automatic submission, manual review and
// manual commit. State lives in memory for the length of the session.
package backend

import (
	"context"

	"github.com/jlsnow301/payroll-app/internal/model"
)

// Commander is the asynchronous command surface exposed to the front end.
// Every call is at-most-once per user action; failures come back as plain
// errors with human-readable messages.
type Commander interface {
	// Headers reports the header rows the two input files must carry.
	Headers(ctx context.Context) model.ExpectedHeaders
	// CatereaseInput parses and validates the order export at path,
	// returning a confirmed label for display.
	CatereaseInput(ctx context.Context, path string) (string, error)
	// IntuitInput parses and validates the timesheet export at path.
	IntuitInput(ctx context.Context, path string) (string, error)
	// Submit runs the full automatic pipeline at the given precision and
	// writes the report workbook.
	Submit(ctx context.Context, precision int) (model.ProcessResult, error)
	// ManualReview cross-references at the given precision and returns
	// the proposed pairings for user approval, without writing anything.
	ManualReview(ctx context.Context, precision int) (model.ReferenceResult, error)
	// ManualInput commits a manually reviewed batch, rejected rows
	// included with their zeroed fields, and writes the report workbook.
	ManualInput(ctx context.Context, rows []model.ReviewRow) (string, error)
}
