package intake

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlsnow301/payroll-app/internal/async"
)

func TestMachine_Accept(t *testing.T) {
	m := NewMachine("caterease")

	tests := []struct {
		name     string
		paths    []string
		wantPath string
		wantOK   bool
	}{
		{name: "spreadsheet", paths: []string{"/tmp/orders.xlsx"}, wantPath: "/tmp/orders.xlsx", wantOK: true},
		{name: "uppercase extension", paths: []string{"/tmp/ORDERS.XLSX"}, wantPath: "/tmp/ORDERS.XLSX", wantOK: true},
		{name: "wrong extension", paths: []string{"/tmp/orders.csv"}, wantOK: false},
		{name: "no paths", paths: nil, wantOK: false},
		{name: "first path wins", paths: []string{"/tmp/a.xlsx", "/tmp/b.xlsx"}, wantPath: "/tmp/a.xlsx", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := m.Accept(tt.paths)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestMachine_Lifecycle(t *testing.T) {
	m := NewMachine("intuit")
	require.Equal(t, async.Idle, m.Phase())

	m.Begin()
	assert.True(t, m.Pending())

	m.Resolve("timesheet_march")
	require.True(t, m.Succeeded())
	assert.Equal(t, "timesheet_march", m.Label())

	// A new attempt from Succeeded.
	m.Begin()
	assert.True(t, m.Pending())
	assert.Empty(t, m.Label())

	m.Reject(errors.New("cannot find sheet named 'Timesheets'"))
	require.True(t, m.Failed())
	assert.EqualError(t, m.Err(), "cannot find sheet named 'Timesheets'")

	// A new attempt from Failed.
	m.Begin()
	assert.True(t, m.Pending())
	assert.NoError(t, m.Err())

	m.Resolve("timesheet_april")
	m.Reset()
	assert.Equal(t, async.Idle, m.Phase())
	assert.Empty(t, m.Label())
}
