package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jlsnow301/payroll-app/internal/model"
)

// badDateSerial is the placeholder Caterease emits for a missing date.
const badDateSerial = 45658.0

// ReadOrders parses a Caterease export. The order list lives on the first
// sheet; the final row is a totals row and is skipped.
func ReadOrders(path string) ([]model.Order, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("couldn't find first worksheet in %s", path)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error reading worksheet data: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("error reading worksheet data: empty sheet")
	}

	if err := validateHeaders(rows[0], CatereaseHeaders); err != nil {
		return nil, err
	}

	last := len(rows) - 1

	var orders []model.Order
	for i, row := range rows {
		if i == 0 || i == last {
			continue
		}

		dateSerial := serialCell(row, 0, badDateSerial)
		readySerial := serialCell(row, 8, 0)

		orders = append(orders, model.Order{
			Date:        dateSerial,
			Employee:    stringCell(row, 1),
			Client:      stringCell(row, 2),
			Description: stringCell(row, 3),
			Count:       intCell(row, 4, 0),
			Grat:        floatCell(row, 5, 0),
			Origin:      stringCell(row, 6),
			Event:       stringCell(row, 7),
			Ready:       readySerial,
			Total:       floatCell(row, 9, 0),
			DateTime:    joinDateAndTime(dateSerial, readySerial),
		})
	}

	return orders, nil
}
