// Package stats aggregates per-driver statistics from a processed batch.
package stats

import (
	"log/slog"
	"strings"

	"github.com/jlsnow301/payroll-app/internal/model"
	"github.com/jlsnow301/payroll-app/internal/review"
)

// minDeliveries is the qualification floor for the punctuality and
// late-percentage leaderboards.
const minDeliveries = 3

// maxRealisticDiff discards clock-in gaps over 24h as data errors.
const maxRealisticDiff = 86_400

// accumulator gathers one driver's running totals.
type accumulator struct {
	totalDiffSeconds int64
	count            int
	lateCount        int
	// Largest single positive diff (latest clock-in).
	maxLateDiffSeconds int64
}

// normalizeDriver reduces an employee field to its first word so expanded
// and plain rows aggregate under one driver.
func normalizeDriver(employee string) string {
	fields := strings.Fields(employee)
	if len(fields) == 0 {
		return employee
	}
	return fields[0]
}

// timeDifference returns the signed gap in seconds between the suggested
// clock-in and the kitchen-ready time decoded onto the clock-in's date.
// Positive means late. Returns false for rows without usable data.
func timeDifference(row model.PreparedRow) (int64, bool) {
	if row.SuggestedIn == nil || row.Order.Ready <= 0 {
		return 0, false
	}

	ready := review.DecodeSerialTime(row.Order.Ready, *row.SuggestedIn)
	diff := int64(row.SuggestedIn.Sub(ready).Seconds())

	if diff > maxRealisticDiff || diff < -maxRealisticDiff {
		slog.Debug("Discarding unrealistic clock-in diff",
			"driver", normalizeDriver(row.Order.Employee),
			"diff_hours", diff/3600)
		return 0, false
	}

	return diff, true
}

func buildAccumulators(rows []model.PreparedRow) map[string]*accumulator {
	acc := make(map[string]*accumulator)

	for _, row := range rows {
		diff, ok := timeDifference(row)
		if !ok {
			continue
		}

		driver := normalizeDriver(row.Order.Employee)
		entry := acc[driver]
		if entry == nil {
			entry = &accumulator{}
			acc[driver] = entry
		}

		entry.totalDiffSeconds += diff
		entry.count++
		if diff > 0 {
			entry.lateCount++
			if diff > entry.maxLateDiffSeconds {
				entry.maxLateDiffSeconds = diff
			}
		}
	}

	return acc
}

// Compute builds the full driver leaderboard from a processed batch.
func Compute(rows []model.PreparedRow) model.DriverStats {
	acc := buildAccumulators(rows)

	stats := model.DriverStats{}
	stats.TopUsed, stats.TopUsedCount = mostUsed(acc)
	stats.MostLate, stats.MostLateCount = mostLate(acc)
	stats.HighestLatePercentDriver, stats.HighestLatePercent = highestLatePercent(acc)
	stats.LatestClockInDriver, stats.LatestClockInDiffMinutes = latestClockIn(acc)
	stats.Punctual, stats.PunctualAvg, stats.PunctualLateCount = mostPunctual(acc)

	return stats
}
