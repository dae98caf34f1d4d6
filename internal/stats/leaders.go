package stats

import (
	"math"
	"sort"
	"strings"
)

// joinWinners names up to three tied drivers, alphabetically.
func joinWinners(winners []string) string {
	sort.Strings(winners)
	if len(winners) > 3 {
		winners = winners[:3]
	}
	return strings.Join(winners, ", ")
}

// mostUsed finds the driver(s) with the most deliveries.
func mostUsed(acc map[string]*accumulator) (string, int) {
	maxCount := 0
	for _, v := range acc {
		if v.count > maxCount {
			maxCount = v.count
		}
	}
	if maxCount == 0 {
		return "", 0
	}

	var winners []string
	for driver, v := range acc {
		if v.count == maxCount {
			winners = append(winners, driver)
		}
	}

	return joinWinners(winners), maxCount
}

// mostLate finds the driver(s) with the most late clock-ins.
func mostLate(acc map[string]*accumulator) (string, int) {
	maxLate := 0
	for _, v := range acc {
		if v.lateCount > maxLate {
			maxLate = v.lateCount
		}
	}
	if maxLate == 0 {
		return "", 0
	}

	var winners []string
	for driver, v := range acc {
		if v.lateCount == maxLate {
			winners = append(winners, driver)
		}
	}

	return joinWinners(winners), maxLate
}

// highestLatePercent finds the driver with the highest share of late
// clock-ins, among drivers with enough deliveries to judge.
func highestLatePercent(acc map[string]*accumulator) (string, float64) {
	bestDriver := ""
	bestPercent := 0.0

	for driver, v := range acc {
		if v.count < minDeliveries || v.lateCount == 0 {
			continue
		}

		percent := float64(v.lateCount) / float64(v.count) * 100

		if percent > bestPercent || (percent == bestPercent && driver < bestDriver) {
			bestDriver = driver
			bestPercent = percent
		}
	}

	return bestDriver, bestPercent
}

// latestClockIn finds the driver with the single latest clock-in.
func latestClockIn(acc map[string]*accumulator) (string, float64) {
	bestDriver := ""
	var bestDiff int64

	for driver, v := range acc {
		if v.maxLateDiffSeconds > bestDiff ||
			(v.maxLateDiffSeconds == bestDiff && bestDiff > 0 && driver < bestDriver) {
			bestDriver = driver
			bestDiff = v.maxLateDiffSeconds
		}
	}

	if bestDiff == 0 {
		return "", 0
	}

	return bestDriver, float64(bestDiff) / 60
}

// mostPunctual ranks drivers by fewest late clock-ins, breaking ties with
// the average diff closest to zero. Requires at least minDeliveries.
func mostPunctual(acc map[string]*accumulator) (string, float64, int) {
	bestDriver := ""
	bestAvg := 0.0
	bestLate := 0
	found := false

	for driver, v := range acc {
		if v.count < minDeliveries {
			continue
		}

		avgMinutes := float64(v.totalDiffSeconds) / float64(v.count) / 60

		better := !found ||
			v.lateCount < bestLate ||
			(v.lateCount == bestLate && math.Abs(avgMinutes) < math.Abs(bestAvg)) ||
			(v.lateCount == bestLate && math.Abs(avgMinutes) == math.Abs(bestAvg) && driver < bestDriver)

		if better {
			bestDriver = driver
			bestAvg = avgMinutes
			bestLate = v.lateCount
			found = true
		}
	}

	if !found {
		return "", 0, 0
	}

	return bestDriver, bestAvg, bestLate
}
