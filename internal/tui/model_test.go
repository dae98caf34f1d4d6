package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlsnow301/payroll-app/internal/model"
	"github.com/jlsnow301/payroll-app/internal/session"
)

type stubBackend struct {
	reviewResult model.ReferenceResult
	submitResult model.ProcessResult
	err          error
}

func (s *stubBackend) Headers(context.Context) model.ExpectedHeaders {
	return model.ExpectedHeaders{}
}

func (s *stubBackend) CatereaseInput(_ context.Context, path string) (string, error) {
	return "orders", s.err
}

func (s *stubBackend) IntuitInput(_ context.Context, path string) (string, error) {
	return "timesheet", s.err
}

func (s *stubBackend) Submit(context.Context, int) (model.ProcessResult, error) {
	return s.submitResult, s.err
}

func (s *stubBackend) ManualReview(context.Context, int) (model.ReferenceResult, error) {
	return s.reviewResult, s.err
}

func (s *stubBackend) ManualInput(context.Context, []model.ReviewRow) (string, error) {
	return "Wrote 1 rows", s.err
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func preparedRows() []model.PreparedRow {
	in := time.Date(2025, 3, 14, 12, 10, 0, 0, time.UTC)
	return []model.PreparedRow{
		{
			Order:       model.Order{Employee: "Alice Smith", Client: "Acme", Ready: 0.5},
			SuggestedIn: &in,
			Hours:       4,
			Miles:       10,
		},
		{
			Order: model.Order{Employee: "Bob Jones", Client: "Globex"},
		},
	}
}

func TestUploadMessagesResolveIntakes(t *testing.T) {
	m := newModel(&stubBackend{})
	m.session.BeginUpload(session.ZoneCaterease)

	m, _ = update(t, m, ordersUploadedMsg{label: "orders"})
	assert.True(t, m.session.Caterease.Succeeded())
	assert.Equal(t, "orders", m.session.Caterease.Label())

	m.session.BeginUpload(session.ZoneIntuit)
	m, _ = update(t, m, hoursUploadedMsg{err: errors.New("bad header")})
	assert.True(t, m.session.Intuit.Failed())
}

func TestReviewLoadedOpensReviewScreen(t *testing.T) {
	m := newModel(&stubBackend{})
	m.session.BeginUpload(session.ZoneCaterease)
	m.session.FinishUpload(session.ZoneCaterease, "orders", nil)
	m.session.BeginUpload(session.ZoneIntuit)
	m.session.FinishUpload(session.ZoneIntuit, "timesheet", nil)

	token, ok := m.session.BeginReview()
	require.True(t, ok)

	m, _ = update(t, m, reviewLoadedMsg{
		token:  token,
		result: model.ReferenceResult{Rows: preparedRows(), Matched: 1, Skipped: 1},
	})

	assert.Equal(t, ScreenReview, m.screen)
	// Only the row with a suggestion is listed.
	assert.Len(t, m.visible, 1)
}

func TestStaleReviewLoadIgnored(t *testing.T) {
	m := newModel(&stubBackend{})
	m.session.BeginUpload(session.ZoneCaterease)
	m.session.FinishUpload(session.ZoneCaterease, "orders", nil)
	m.session.BeginUpload(session.ZoneIntuit)
	m.session.FinishUpload(session.ZoneIntuit, "timesheet", nil)

	stale, ok := m.session.BeginReview()
	require.True(t, ok)
	_, ok = m.session.BeginReview()
	require.True(t, ok)

	m, _ = update(t, m, reviewLoadedMsg{
		token:  stale,
		result: model.ReferenceResult{Rows: preparedRows()},
	})

	assert.Equal(t, ScreenHome, m.screen)
	assert.Zero(t, m.store.Len())
}

func TestToggleKeyDeniesRow(t *testing.T) {
	m := newModel(&stubBackend{})
	m.store.Load(preparedRows())
	m.rebuildVisible()
	m.screen = ScreenReview

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	row, ok := m.store.Row(m.visible[0])
	require.True(t, ok)
	assert.False(t, row.Approved)
	assert.Zero(t, row.Hours)
}

func TestDropRejectsWrongExtension(t *testing.T) {
	m := newModel(&stubBackend{})

	m, cmd := update(t, m, zoneDroppedMsg{zoneID: session.ZoneCaterease, path: "notes.txt"})

	assert.Nil(t, cmd)
	assert.False(t, m.session.Caterease.Pending())
}

func TestDropStartsUpload(t *testing.T) {
	m := newModel(&stubBackend{})

	m, cmd := update(t, m, zoneDroppedMsg{zoneID: session.ZoneCaterease, path: "orders.xlsx"})

	require.NotNil(t, cmd)
	assert.True(t, m.session.Caterease.Pending())

	// The command resolves against the stub backend.
	msg := cmd()
	uploaded, ok := msg.(ordersUploadedMsg)
	require.True(t, ok)
	assert.Equal(t, "orders", uploaded.label)
}

func TestMouseClickRoutesToZone(t *testing.T) {
	m := newModel(&stubBackend{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	// Left half is the orders zone.
	m, _ = update(t, m, tea.MouseMsg{
		X: 5, Y: 2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.True(t, m.typing)
	assert.Equal(t, session.ZoneCaterease, m.pathTarget)

	// Right half is the timesheet zone.
	m.typing = false
	m, _ = update(t, m, tea.MouseMsg{
		X: 60, Y: 2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, session.ZoneIntuit, m.pathTarget)
}

func TestResetKeyClearsSession(t *testing.T) {
	m := newModel(&stubBackend{})
	m.session.BeginUpload(session.ZoneCaterease)
	m.session.FinishUpload(session.ZoneCaterease, "orders", nil)
	m.store.Load(preparedRows())
	m.rebuildVisible()
	m.screen = ScreenReview

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, ScreenHome, m.screen)
	assert.False(t, m.session.Caterease.Succeeded())
	assert.Zero(t, m.store.Len())
	assert.Empty(t, m.visible)
}
