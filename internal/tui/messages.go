package tui

import (
	"github.com/jlsnow301/payroll-app/internal/model"
	"github.com/jlsnow301/payroll-app/internal/session"
)

// Upload completion messages, one per intake.
type ordersUploadedMsg struct {
	err   error
	label string
}

type hoursUploadedMsg struct {
	err   error
	label string
}

// submitDoneMsg resolves the automatic submission.
type submitDoneMsg struct {
	err    error
	result model.ProcessResult
}

// reviewLoadedMsg resolves a review fetch. The token lets the model drop
// batches from a fetch that has since been superseded.
type reviewLoadedMsg struct {
	err    error
	result model.ReferenceResult
	token  session.ReviewToken
}

// manualSubmitDoneMsg resolves a manual submission from the review screen.
type manualSubmitDoneMsg struct {
	err          error
	confirmation string
}

// clearConfirmationMsg expires a transient confirmation banner.
type clearConfirmationMsg struct{}

// zoneDroppedMsg carries a routed file drop to the matching intake.
type zoneDroppedMsg struct {
	zoneID string
	path   string
}
