package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jlsnow301/payroll-app/internal/model"
)

// timesheetSheet is the tab the Intuit export keeps shift data on.
const timesheetSheet = "Timesheets"

// shiftTotal marks the per-shift summary rows; all other rows are
// intermediate breakdowns and are skipped.
const shiftTotal = "Shift Total"

// ReadTimeActivities parses an Intuit timesheet export.
func ReadTimeActivities(path string) ([]model.TimeActivity, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(timesheetSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("cannot find sheet named %q: %w", timesheetSheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("cannot find sheet named %q: empty sheet", timesheetSheet)
	}

	if err := validateHeaders(rows[0], IntuitHeaders); err != nil {
		return nil, err
	}

	var activities []model.TimeActivity
	for _, row := range rows[1:] {
		if stringCell(row, 5) != shiftTotal {
			continue
		}

		inTime, err := timeCell(row, 3)
		if err != nil {
			continue
		}

		outTime, err := timeCell(row, 4)
		if err != nil {
			continue
		}

		activities = append(activities, model.TimeActivity{
			FirstName: stringCell(row, 0),
			LastName:  stringCell(row, 1),
			InTime:    inTime,
			OutTime:   outTime,
			Hours:     floatCell(row, 6, 0),
			Miles:     floatCell(row, 7, 0),
		})
	}

	return activities, nil
}
