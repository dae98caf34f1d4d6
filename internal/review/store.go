package review

import (
	"iter"

	"github.com/jlsnow301/payroll-app/internal/async"
	"github.com/jlsnow301/payroll-app/internal/model"
)

// Store owns the batch of rows under manual review. Rows are mutated only
// through Load and Toggle; the backend's original suggestions are kept as an
// immutable baseline so a rejection can always be reversed without loss.
type Store struct {
	baseline   []model.PreparedRow
	rows       []model.ReviewRow
	submission async.Call[string]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the store's contents with a fresh batch. Identities are
// assigned sequentially from zero and every row starts approved. A new
// batch invalidates all prior decisions, so rows are re-derived rather
// than merged, and any in-flight or completed submission is forgotten.
func (s *Store) Load(rows []model.PreparedRow) {
	s.baseline = make([]model.PreparedRow, len(rows))
	copy(s.baseline, rows)

	s.rows = make([]model.ReviewRow, len(rows))
	for i, row := range rows {
		s.rows[i] = model.ReviewRow{
			PreparedRow: row,
			ID:          i,
			Approved:    true,
		}
	}

	s.submission.Reset()
}

// Clear discards the batch and any submission state.
func (s *Store) Clear() {
	s.baseline = nil
	s.rows = nil
	s.submission.Reset()
}

// Len returns the number of rows in the batch.
func (s *Store) Len() int {
	return len(s.rows)
}

// Row returns the row with the given identity.
func (s *Store) Row(id int) (model.ReviewRow, bool) {
	if id < 0 || id >= len(s.rows) {
		return model.ReviewRow{}, false
	}
	return s.rows[id], true
}

// Rows returns the full batch, rejected rows included, in identity order.
func (s *Store) Rows() []model.ReviewRow {
	out := make([]model.ReviewRow, len(s.rows))
	copy(out, s.rows)
	return out
}

// Toggle flips one row between approved and rejected. Rejecting zeroes the
// hours, miles and suggested times; approving again restores the baseline
// exactly. Returns false for an unknown identity.
func (s *Store) Toggle(id int) bool {
	if id < 0 || id >= len(s.rows) {
		return false
	}

	if s.rows[id].Approved {
		row := &s.rows[id]
		row.Approved = false
		row.Hours = 0
		row.Miles = 0
		row.SuggestedIn = nil
		row.SuggestedOut = nil
		return true
	}

	s.rows[id] = model.ReviewRow{
		PreparedRow: s.baseline[id],
		ID:          id,
		Approved:    true,
	}
	return true
}

// VisibleRows yields the rows eligible for manual approval: those whose
// baseline carries a suggested clock-in. The sequence is lazy and can be
// ranged over any number of times.
func (s *Store) VisibleRows() iter.Seq[model.ReviewRow] {
	return func(yield func(model.ReviewRow) bool) {
		for i, row := range s.rows {
			if !s.baseline[i].HasSuggestion() {
				continue
			}
			if !yield(row) {
				return
			}
		}
	}
}

// CanSubmit reports whether the batch may be committed: at most one commit
// per batch, and never while one is in flight.
func (s *Store) CanSubmit() bool {
	if len(s.rows) == 0 {
		return false
	}
	return s.submission.IsIdle() || s.submission.IsError()
}

// BeginSubmit marks a commit in flight. Returns false when the gate is
// closed.
func (s *Store) BeginSubmit() bool {
	if !s.CanSubmit() {
		return false
	}
	s.submission.Begin()
	return true
}

// FinishSubmit resolves the in-flight commit.
func (s *Store) FinishSubmit(confirmation string, err error) {
	if err != nil {
		s.submission.Fail(err)
		return
	}
	s.submission.Succeed(confirmation)
}

// Submission exposes the commit lifecycle for display.
func (s *Store) Submission() *async.Call[string] {
	return &s.submission
}
