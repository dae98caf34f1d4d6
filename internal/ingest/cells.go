package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serial dates count days from 1899-12-30; the fractional part
// is the time of day.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// timesheetLayout is the format Intuit uses for its start/end time strings.
const timesheetLayout = "2006-01-02 15:04:05"

func stringCell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func floatCell(row []string, col int, def float64) float64 {
	raw := stringCell(row, col)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func intCell(row []string, col int, def int64) int64 {
	return int64(floatCell(row, col, float64(def)))
}

// serialCell reads a date or time cell as its raw serial value.
func serialCell(row []string, col int, def float64) float64 {
	return floatCell(row, col, def)
}

// timeCell parses a timesheet timestamp string.
func timeCell(row []string, col int) (time.Time, error) {
	return time.Parse(timesheetLayout, stringCell(row, col))
}

// joinDateAndTime combines an order's date serial with its ready-time
// serial into a single timestamp.
func joinDateAndTime(dateSerial, timeSerial float64) time.Time {
	days := int(math.Floor(dateSerial))
	seconds := int(math.Round((timeSerial - math.Floor(timeSerial)) * 86_400))

	return serialEpoch.AddDate(0, 0, days).Add(time.Duration(seconds) * time.Second)
}
