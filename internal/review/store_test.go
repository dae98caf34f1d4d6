package review

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlsnow301/payroll-app/internal/model"
)

func sampleBatch() []model.PreparedRow {
	in := time.Date(2025, time.March, 14, 11, 45, 0, 0, time.UTC)
	out := in.Add(4 * time.Hour)

	return []model.PreparedRow{
		{
			Order:        model.Order{Employee: "Alice Smith", Client: "Acme", Ready: 0.5},
			Hours:        4.25,
			Miles:        12.5,
			SuggestedIn:  &in,
			SuggestedOut: &out,
		},
		{
			// No candidate match found by the backend.
			Order: model.Order{Employee: "Bob Jones", Client: "Globex", Ready: 0.75},
		},
		{
			Order:        model.Order{Employee: "Cara Lee", Client: "Initech", Ready: 0.25},
			Hours:        6,
			Miles:        3,
			SuggestedIn:  &in,
			SuggestedOut: &out,
		},
	}
}

func TestStore_LoadAssignsSequentialIdentities(t *testing.T) {
	s := NewStore()
	s.Load(sampleBatch())

	require.Equal(t, 3, s.Len())
	for i, row := range s.Rows() {
		assert.Equal(t, i, row.ID)
		assert.True(t, row.Approved, "rows default to approved")
	}
}

func TestStore_ToggleRejectZeroesRow(t *testing.T) {
	s := NewStore()
	s.Load(sampleBatch())

	require.True(t, s.Toggle(0))

	row, ok := s.Row(0)
	require.True(t, ok)
	assert.False(t, row.Approved)
	assert.Zero(t, row.Hours)
	assert.Zero(t, row.Miles)
	assert.Nil(t, row.SuggestedIn)
	assert.Nil(t, row.SuggestedOut)
}

func TestStore_ToggleRoundTripRestoresBaseline(t *testing.T) {
	s := NewStore()
	batch := sampleBatch()
	s.Load(batch)

	before, ok := s.Row(0)
	require.True(t, ok)

	require.True(t, s.Toggle(0))
	require.True(t, s.Toggle(0))

	after, ok := s.Row(0)
	require.True(t, ok)
	assert.Equal(t, before, after, "approve after reject restores the exact baseline")
	assert.Equal(t, batch[0].Hours, after.Hours)
	require.NotNil(t, after.SuggestedIn)
	assert.Equal(t, *batch[0].SuggestedIn, *after.SuggestedIn)
}

func TestStore_RejectDoesNotMutateBaseline(t *testing.T) {
	s := NewStore()
	s.Load(sampleBatch())

	require.True(t, s.Toggle(2))

	// The underlying suggestion survives: rows stay visible and the
	// original values return on re-approval.
	var visible []model.ReviewRow
	for row := range s.VisibleRows() {
		visible = append(visible, row)
	}
	require.Len(t, visible, 2)
	assert.Equal(t, 2, visible[1].ID)

	require.True(t, s.Toggle(2))
	row, _ := s.Row(2)
	assert.Equal(t, 6.0, row.Hours)
}

func TestStore_ToggleUnknownID(t *testing.T) {
	s := NewStore()
	s.Load(sampleBatch())

	assert.False(t, s.Toggle(-1))
	assert.False(t, s.Toggle(3))
}

func TestStore_VisibleRowsSkipsUnsuggested(t *testing.T) {
	s := NewStore()
	s.Load(sampleBatch())

	var ids []int
	for row := range s.VisibleRows() {
		ids = append(ids, row.ID)
	}
	assert.Equal(t, []int{0, 2}, ids, "row without a suggested clock-in is hidden")

	// The sequence restarts cleanly.
	count := 0
	for range s.VisibleRows() {
		count++
	}
	assert.Equal(t, 2, count)

	// Early break does not poison later iterations.
	for range s.VisibleRows() {
		break
	}
	count = 0
	for range s.VisibleRows() {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestStore_LoadReplacesPriorBatch(t *testing.T) {
	s := NewStore()
	s.Load(sampleBatch())
	require.True(t, s.Toggle(1))

	replacement := sampleBatch()[:2]
	s.Load(replacement)

	require.Equal(t, 2, s.Len())
	for i, row := range s.Rows() {
		assert.Equal(t, i, row.ID)
		assert.True(t, row.Approved, "decisions from the prior batch are discarded")
	}
}

func TestStore_SubmitGate(t *testing.T) {
	s := NewStore()
	assert.False(t, s.CanSubmit(), "empty store never submits")

	s.Load(sampleBatch())
	require.True(t, s.CanSubmit())

	require.True(t, s.BeginSubmit())
	assert.False(t, s.CanSubmit(), "no overlapping commits")
	assert.False(t, s.BeginSubmit())

	s.FinishSubmit("ok", nil)
	assert.False(t, s.CanSubmit(), "at most one commit per batch")

	// A failure reopens the gate for a retry.
	s.Load(sampleBatch())
	require.True(t, s.BeginSubmit())
	s.FinishSubmit("", errors.New("write failed"))
	assert.True(t, s.CanSubmit())

	// A fresh batch clears any prior submission state.
	s.Load(sampleBatch())
	assert.True(t, s.Submission().IsIdle())
	assert.True(t, s.CanSubmit())
}
