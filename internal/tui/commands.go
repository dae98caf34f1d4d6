package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jlsnow301/payroll-app/internal/model"
	"github.com/jlsnow301/payroll-app/internal/session"
)

const (
	uploadTimeout  = 30 * time.Second
	processTimeout = 2 * time.Minute

	// How long a submission confirmation stays on screen.
	confirmationTTL = 5 * time.Second
)

// uploadOrders sends the orders spreadsheet to the backend.
func (m Model) uploadOrders(path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
		defer cancel()

		label, err := m.backend.CatereaseInput(ctx, path)
		return ordersUploadedMsg{label: label, err: err}
	}
}

// uploadHours sends the timesheet spreadsheet to the backend.
func (m Model) uploadHours(path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
		defer cancel()

		label, err := m.backend.IntuitInput(ctx, path)
		return hoursUploadedMsg{label: label, err: err}
	}
}

// runSubmit runs the automatic pipeline at the given tolerance.
func (m Model) runSubmit(precision int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()

		result, err := m.backend.Submit(ctx, precision)
		return submitDoneMsg{result: result, err: err}
	}
}

// fetchReview loads the prepared batch for manual review. The token travels
// with the result so a superseded fetch can be discarded on arrival.
func (m Model) fetchReview(token session.ReviewToken) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()

		result, err := m.backend.ManualReview(ctx, token.Precision)
		return reviewLoadedMsg{token: token, result: result, err: err}
	}
}

// submitManual writes the reviewed batch as-is.
func (m Model) submitManual(rows []model.ReviewRow) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()

		confirmation, err := m.backend.ManualInput(ctx, rows)
		return manualSubmitDoneMsg{confirmation: confirmation, err: err}
	}
}

// expireConfirmation clears the confirmation banner after its TTL.
func expireConfirmation() tea.Cmd {
	return tea.Tick(confirmationTTL, func(time.Time) tea.Msg {
		return clearConfirmationMsg{}
	})
}
