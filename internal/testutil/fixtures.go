// Package testutil builds real spreadsheet fixtures for ingest and backend
// tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// OrderFixture is one data row of a Caterease export fixture.
type OrderFixture struct {
	Employee    string
	Client      string
	Description string
	Origin      string
	Event       string
	Date        float64
	Ready       float64
	Grat        float64
	Total       float64
	Count       int
}

// ShiftFixture is one "Shift Total" row of an Intuit timesheet fixture.
type ShiftFixture struct {
	FirstName string
	LastName  string
	InTime    time.Time
	OutTime   time.Time
	Hours     float64
	Miles     float64
}

const timesheetLayout = "2006-01-02 15:04:05"

// WriteOrdersFile authors a Caterease-shaped workbook in t's temp dir and
// returns its path. A totals row is appended the way the real export ends.
func WriteOrdersFile(t *testing.T, orders []OrderFixture) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []any{
		"Date", "Delivery Person", "Client/Organization", "Description",
		"Actual", "Grat", "Delivery Category", "Sub-Event #",
		"Kitchen Ready by", "Subtotal",
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &headers))

	for i, o := range orders {
		row := []any{
			o.Date, o.Employee, o.Client, o.Description,
			o.Count, o.Grat, o.Origin, o.Event, o.Ready, o.Total,
		}
		cell := fmt.Sprintf("A%d", i+2)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	totals := []any{"", "", "", "", len(orders), "", "", "", "", ""}
	cell := fmt.Sprintf("A%d", len(orders)+2)
	require.NoError(t, f.SetSheetRow(sheet, cell, &totals))

	path := filepath.Join(t.TempDir(), "orders.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	return path
}

// WriteTimesheetFile authors an Intuit-shaped workbook in t's temp dir and
// returns its path. Each shift gets a breakdown row (ignored by ingest)
// followed by its Shift Total row.
func WriteTimesheetFile(t *testing.T, shifts []ShiftFixture) string {
	t.Helper()

	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	_, err := f.NewSheet("Timesheets")
	require.NoError(t, err)
	require.NoError(t, f.DeleteSheet(defaultSheet))

	headers := []any{
		"First name", "Last name", "Username", "Start time",
		"End time", "Customer", "Hours", "Miles",
	}
	require.NoError(t, f.SetSheetRow("Timesheets", "A1", &headers))

	rowNum := 2
	for _, s := range shifts {
		breakdown := []any{
			s.FirstName, s.LastName, "", s.InTime.Format(timesheetLayout),
			s.OutTime.Format(timesheetLayout), s.FirstName + "'s route", s.Hours, s.Miles,
		}
		require.NoError(t, f.SetSheetRow("Timesheets", fmt.Sprintf("A%d", rowNum), &breakdown))
		rowNum++

		total := []any{
			s.FirstName, s.LastName, "", s.InTime.Format(timesheetLayout),
			s.OutTime.Format(timesheetLayout), "Shift Total", s.Hours, s.Miles,
		}
		require.NoError(t, f.SetSheetRow("Timesheets", fmt.Sprintf("A%d", rowNum), &total))
		rowNum++
	}

	path := filepath.Join(t.TempDir(), "timesheet.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	return path
}
