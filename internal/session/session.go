// Package session orchestrates one reconciliation cycle: two file intakes,
// the tolerance setting, the automatic submission and the manual review
// fetch. All transitions are synchronous; asynchronous command completions
// are fed back in as events by the caller's event loop.
package session

import (
	"fmt"

	"github.com/jlsnow301/payroll-app/internal/async"
	"github.com/jlsnow301/payroll-app/internal/intake"
	"github.com/jlsnow301/payroll-app/internal/model"
)

// Precision bounds, in hours.
const (
	MinPrecision = 1
	MaxPrecision = 5
)

// Intake identifiers, also used as drop-zone ids.
const (
	ZoneCaterease = "caterease"
	ZoneIntuit    = "intuit"
)

// ReviewToken identifies one review fetch. A resolution carrying a stale
// token is discarded: the latest fetch wins.
type ReviewToken struct {
	Seq       int
	Precision int
}

// Session owns the client-visible state of one reconciliation cycle.
type Session struct {
	Caterease *intake.Machine
	Intuit    *intake.Machine

	precision int
	submit    async.Call[model.ProcessResult]
	review    async.Call[model.ReferenceResult]
	reviewSeq int
}

// New returns a fresh session with both intakes idle.
func New() *Session {
	return &Session{
		Caterease: intake.NewMachine("Caterease"),
		Intuit:    intake.NewMachine("Intuit"),
		precision: MinPrecision,
	}
}

// Precision returns the current matching tolerance in hours.
func (s *Session) Precision() int {
	return s.precision
}

// SetPrecision adjusts the tolerance, clamped to its bounds. Changing it
// supersedes any in-flight or resolved review fetch, since the batch it
// produced no longer reflects the current tolerance.
func (s *Session) SetPrecision(p int) {
	if p < MinPrecision {
		p = MinPrecision
	}
	if p > MaxPrecision {
		p = MaxPrecision
	}

	if p == s.precision {
		return
	}

	s.precision = p
	s.reviewSeq++
	s.review.Reset()
}

// Machine returns the intake registered under the given zone id.
func (s *Session) Machine(zoneID string) *intake.Machine {
	switch zoneID {
	case ZoneCaterease:
		return s.Caterease
	case ZoneIntuit:
		return s.Intuit
	default:
		return nil
	}
}

// BeginUpload starts an upload attempt on the named intake. While a prior
// submission result is showing, a new drop on either zone clears it so the
// next cycle starts clean.
func (s *Session) BeginUpload(zoneID string) bool {
	m := s.Machine(zoneID)
	if m == nil {
		return false
	}

	if !s.submit.IsIdle() {
		s.submit.Reset()
	}

	m.Begin()
	return true
}

// FinishUpload resolves the named intake's attempt.
func (s *Session) FinishUpload(zoneID, label string, err error) {
	m := s.Machine(zoneID)
	if m == nil {
		return
	}

	if err != nil {
		m.Reject(err)
		return
	}
	m.Resolve(label)
}

// Ready derives the submission gate: both inputs validated and no
// submission pending or already completed. Derived, never stored, so it
// cannot drift from the intake states.
func (s *Session) Ready() bool {
	return s.Caterease.Succeeded() && s.Intuit.Succeeded() && s.submit.IsIdle()
}

// BeginSubmit opens an automatic submission if the gate allows it.
func (s *Session) BeginSubmit() bool {
	if !s.Ready() {
		return false
	}
	s.submit.Begin()
	return true
}

// FinishSubmit resolves the automatic submission. On failure the intakes
// are left untouched so the user can retry without re-uploading.
func (s *Session) FinishSubmit(result model.ProcessResult, err error) {
	if !s.submit.IsPending() {
		return
	}

	if err != nil {
		s.submit.Fail(err)
		return
	}
	s.submit.Succeed(result)
}

// Submission exposes the submission lifecycle for display.
func (s *Session) Submission() *async.Call[model.ProcessResult] {
	return &s.submit
}

// BeginReview starts a review fetch at the current precision. The returned
// token must accompany the resolution. It shares the submission gate:
// while an automatic submission is in flight or its result is showing, a
// manual batch could race it for the workbook.
func (s *Session) BeginReview() (ReviewToken, bool) {
	if !s.Ready() {
		return ReviewToken{}, false
	}

	s.reviewSeq++
	s.review.Begin()

	return ReviewToken{Seq: s.reviewSeq, Precision: s.precision}, true
}

// FinishReview resolves a review fetch. Resolutions for superseded tokens
// are dropped on arrival; whoever fetched last wins.
func (s *Session) FinishReview(token ReviewToken, result model.ReferenceResult, err error) bool {
	if token.Seq != s.reviewSeq {
		return false
	}

	if err != nil {
		s.review.Fail(err)
		return true
	}
	s.review.Succeed(result)
	return true
}

// Review exposes the review fetch lifecycle for display.
func (s *Session) Review() *async.Call[model.ReferenceResult] {
	return &s.review
}

// Errors collects every currently failed state with a labeled prefix.
func (s *Session) Errors() []string {
	var errs []string

	if s.Caterease.Failed() {
		errs = append(errs, fmt.Sprintf("Caterease- %v", s.Caterease.Err()))
	}
	if s.Intuit.Failed() {
		errs = append(errs, fmt.Sprintf("Intuit- %v", s.Intuit.Err()))
	}
	if s.submit.IsError() {
		errs = append(errs, fmt.Sprintf("Process- %v", s.submit.Err()))
	}
	if s.review.IsError() {
		errs = append(errs, fmt.Sprintf("Review- %v", s.review.Err()))
	}

	return errs
}

// Reset returns the whole session to its initial state. Any in-flight
// review resolution is orphaned by bumping the sequence.
func (s *Session) Reset() {
	s.Caterease.Reset()
	s.Intuit.Reset()
	s.submit.Reset()
	s.review.Reset()
	s.reviewSeq++
}
