// Package export writes the formatted payroll workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jlsnow301/payroll-app/internal/common"
	"github.com/jlsnow301/payroll-app/internal/model"
)

// Headers is the column layout of the report.
var Headers = []string{
	"Date", "Employee", "Client", "Description", "Count",
	"Hours", "Miles", "Grat", "Origin", "Event", "Ready", "Total",
}

const sheetName = "Payroll"

// WriteWorkbook writes one formatted sheet of prepared rows to path.
func WriteWorkbook(path string, rows []model.PreparedRow) error {
	if len(rows) == 0 {
		return common.ErrNoRows
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	if err := setColumnWidths(f); err != nil {
		return err
	}

	headerRow := make([]any, len(Headers))
	for i, h := range Headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", cellRef(len(Headers)-1, 1), styles.header); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	for i, entry := range rows {
		rowNum := i + 2
		values := []any{
			entry.Order.Date,
			entry.Order.Employee,
			entry.Order.Client,
			entry.Order.Description,
			entry.Order.Count,
			entry.Hours,
			entry.Miles,
			entry.Order.Grat,
			entry.Order.Origin,
			entry.Order.Event,
			entry.Order.Ready,
			entry.Order.Total,
		}

		cell := fmt.Sprintf("A%d", rowNum)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}

		if err := styleRow(f, styles, rowNum); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

type styleSet struct {
	standard int
	header   int
	money    int
	right    int
	date     int
	time     int
}

func newStyles(f *excelize.File) (styleSet, error) {
	border := []excelize.Border{
		{Type: "left", Color: "808080", Style: 1},
		{Type: "right", Color: "808080", Style: 1},
		{Type: "top", Color: "808080", Style: 1},
		{Type: "bottom", Color: "808080", Style: 1},
	}

	moneyFormat := "[$$-409]#,##0.0"
	dateFormat := "mm/dd/yyyy"
	timeFormat := "hh:mm AM/PM"

	standard, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return styleSet{}, fmt.Errorf("failed to create style: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Border: border,
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E5E7EB"}},
	})
	if err != nil {
		return styleSet{}, fmt.Errorf("failed to create style: %w", err)
	}

	money, err := f.NewStyle(&excelize.Style{
		Border:       border,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		CustomNumFmt: &moneyFormat,
	})
	if err != nil {
		return styleSet{}, fmt.Errorf("failed to create style: %w", err)
	}

	right, err := f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return styleSet{}, fmt.Errorf("failed to create style: %w", err)
	}

	date, err := f.NewStyle(&excelize.Style{Border: border, CustomNumFmt: &dateFormat})
	if err != nil {
		return styleSet{}, fmt.Errorf("failed to create style: %w", err)
	}

	timeStyle, err := f.NewStyle(&excelize.Style{Border: border, CustomNumFmt: &timeFormat})
	if err != nil {
		return styleSet{}, fmt.Errorf("failed to create style: %w", err)
	}

	return styleSet{
		standard: standard,
		header:   header,
		money:    money,
		right:    right,
		date:     date,
		time:     timeStyle,
	}, nil
}

func setColumnWidths(f *excelize.File) error {
	widths := map[string]float64{
		"A": 12, "B": 24, "C": 48, "D": 36,
		"H": 12, "I": 12, "J": 12, "K": 12, "L": 12,
	}
	for col, width := range widths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}
	return nil
}

// styleRow applies per-column formats to one data row.
func styleRow(f *excelize.File, styles styleSet, rowNum int) error {
	perColumn := []int{
		styles.date,     // Date
		styles.standard, // Employee
		styles.standard, // Client
		styles.standard, // Description
		styles.right,    // Count
		styles.right,    // Hours
		styles.right,    // Miles
		styles.money,    // Grat
		styles.standard, // Origin
		styles.standard, // Event
		styles.time,     // Ready
		styles.money,    // Total
	}

	for col, style := range perColumn {
		ref := cellRef(col, rowNum)
		if err := f.SetCellStyle(sheetName, ref, ref, style); err != nil {
			return fmt.Errorf("failed to style cell %s: %w", ref, err)
		}
	}

	return nil
}

func cellRef(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
