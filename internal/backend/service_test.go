package backend_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlsnow301/payroll-app/internal/backend"
	"github.com/jlsnow301/payroll-app/internal/common"
	"github.com/jlsnow301/payroll-app/internal/model"
	"github.com/jlsnow301/payroll-app/internal/testutil"
)

func linkedService(t *testing.T) *backend.Service {
	t.Helper()

	ordersPath := testutil.WriteOrdersFile(t, []testutil.OrderFixture{
		{
			Date:     45730, // 2025-03-14
			Employee: "Alice Smith",
			Client:   "Acme Corp",
			Count:    24,
			Ready:    0.5,
			Total:    412.80,
		},
		{
			Date:     45730,
			Employee: "Patio Party",
			Client:   "Globex",
			Ready:    0.75,
		},
	})

	in := time.Date(2025, time.March, 14, 12, 15, 0, 0, time.UTC)
	hoursPath := testutil.WriteTimesheetFile(t, []testutil.ShiftFixture{
		{
			FirstName: "Alice",
			LastName:  "Smith",
			InTime:    in,
			OutTime:   in.Add(4 * time.Hour),
			Hours:     4,
			Miles:     12.5,
		},
	})

	svc := backend.NewService(filepath.Join(t.TempDir(), "report.xlsx"))

	ctx := context.Background()
	label, err := svc.CatereaseInput(ctx, ordersPath)
	require.NoError(t, err)
	assert.Equal(t, "orders", label, "label is the file name without extension")

	label, err = svc.IntuitInput(ctx, hoursPath)
	require.NoError(t, err)
	assert.Equal(t, "timesheet", label)

	return svc
}

func TestService_Headers(t *testing.T) {
	svc := backend.NewService("")
	headers := svc.Headers(context.Background())

	assert.Equal(t, "Date", headers.Caterease[0])
	assert.Equal(t, "First name", headers.Intuit[0])
}

func TestService_InputRejectsMissingFile(t *testing.T) {
	svc := backend.NewService("")

	_, err := svc.CatereaseInput(context.Background(), "/nope/orders.xlsx")
	require.ErrorIs(t, err, common.ErrFileNotFound)

	_, err = svc.IntuitInput(context.Background(), "/nope/timesheet.xlsx")
	require.ErrorIs(t, err, common.ErrFileNotFound)
}

func TestService_InputWrapsUnreadableFile(t *testing.T) {
	garbage := filepath.Join(t.TempDir(), "orders.xlsx")
	require.NoError(t, os.WriteFile(garbage, []byte("not a workbook"), 0o600))

	svc := backend.NewService("")

	_, err := svc.CatereaseInput(context.Background(), garbage)
	require.Error(t, err)

	var uerr *common.UserError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "Couldn't read the orders export", uerr.UserMessage)

	_, err = svc.IntuitInput(context.Background(), garbage)
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "Couldn't read the timesheet export", uerr.UserMessage)
}

func TestService_SubmitRequiresBothInputs(t *testing.T) {
	svc := backend.NewService("")

	_, err := svc.Submit(context.Background(), 2)
	require.ErrorIs(t, err, common.ErrNotLinked)
}

func TestService_SubmitRejectsBadPrecision(t *testing.T) {
	svc := linkedService(t)

	for _, precision := range []int{0, -1, 6} {
		_, err := svc.Submit(context.Background(), precision)
		assert.ErrorIs(t, err, common.ErrInvalidPrecision, "precision %d", precision)
	}
}

func TestService_Submit(t *testing.T) {
	svc := linkedService(t)

	result, err := svc.Submit(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, 1, result.Skipped, "patio party has no driver to pay")
	assert.Equal(t, 0, result.Expanded)
	assert.Equal(t, "Alice", result.TopUsed)
}

func TestService_ManualReview(t *testing.T) {
	svc := linkedService(t)

	reference, err := svc.ManualReview(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, reference.Rows, 2)
	assert.Equal(t, 1, reference.Matched)

	matched := reference.Rows[0]
	require.NotNil(t, matched.SuggestedIn)
	assert.InDelta(t, 4.0, matched.Hours, 0.001)

	// Review never consumes the session: a second fetch sees the same data.
	again, err := svc.ManualReview(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, reference.Matched, again.Matched)
}

func TestService_ManualInput(t *testing.T) {
	svc := linkedService(t)

	reference, err := svc.ManualReview(context.Background(), 2)
	require.NoError(t, err)

	rows := make([]model.ReviewRow, len(reference.Rows))
	for i, row := range reference.Rows {
		rows[i] = model.ReviewRow{PreparedRow: row, ID: i, Approved: true}
	}

	confirmation, err := svc.ManualInput(context.Background(), rows)
	require.NoError(t, err)
	assert.Contains(t, confirmation, "2 rows")
}

func TestService_ResetUnlinksInputs(t *testing.T) {
	svc := linkedService(t)
	svc.Reset()

	_, err := svc.Submit(context.Background(), 2)
	require.ErrorIs(t, err, common.ErrNotLinked)
}

func TestService_CanceledContext(t *testing.T) {
	svc := linkedService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, 2)
	require.ErrorIs(t, err, context.Canceled)
}
