package model

import "time"

// PreparedRow pairs one order with the timesheet entry matched to it, if any.
// SuggestedIn and SuggestedOut are nil when no clock entry fell within the
// matching tolerance.
type PreparedRow struct {
	SuggestedIn  *time.Time
	SuggestedOut *time.Time
	Order        Order
	Hours        float64
	Miles        float64
}

// HasSuggestion reports whether the matcher found a clock-in for this row.
func (r PreparedRow) HasSuggestion() bool {
	return r.SuggestedIn != nil
}

// ReviewRow is a PreparedRow with a stable identity and an approval flag,
// used during manual review. ID is the row's position in the original batch.
type ReviewRow struct {
	PreparedRow
	ID       int
	Approved bool
}

// ReferenceResult is the outcome of cross-referencing orders against the
// timesheet at a given precision.
type ReferenceResult struct {
	Rows    []PreparedRow
	Matched int
	Skipped int
}

// ExpectedHeaders lists the header rows required of each input file.
type ExpectedHeaders struct {
	Caterease []string
	Intuit    []string
}
