// Package review implements the manual review core: the confidence
// classifier for proposed order/clock-in pairings and the store of rows
// awaiting approval.
package review

import (
	"math"
	"time"
)

// Band is the four-level confidence classification of a proposed pairing.
type Band int

const (
	// BandGray means no comparison was performed (no suggested time).
	BandGray Band = iota
	// BandGreen is a high-confidence match.
	BandGreen
	// BandYellow is a plausible match near the edge of the tolerance.
	BandYellow
	// BandRed is a likely mismatch.
	BandRed
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandGreen:
		return "green"
	case BandYellow:
		return "yellow"
	case BandRed:
		return "red"
	default:
		return "gray"
	}
}

// DecodeSerialTime converts the fractional part of a spreadsheet serial
// into a timestamp on the same calendar date as ref. The serial carries no
// usable date information, so the reference supplies it.
func DecodeSerialTime(serial float64, ref time.Time) time.Time {
	fraction := serial - math.Floor(serial)
	seconds := int(math.Round(fraction * 86_400))

	year, month, day := ref.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, ref.Location())

	return midnight.Add(time.Duration(seconds) * time.Second)
}

// Classify scores the gap between an order's scheduled ready time and an
// actual clock-in against a tolerance in hours. Lateness is judged at half
// the leniency of earliness: a late clock-in is a stronger mismatch signal
// than an early one. A tolerance of zero marks every inexact time red.
func Classify(tolerance float64, readySerial float64, actual time.Time) Band {
	scheduled := DecodeSerialTime(readySerial, actual)
	diffHours := actual.Sub(scheduled).Hours()

	if diffHours <= 0 {
		// Early or exactly on time.
		absDiff := -diffHours
		switch {
		case absDiff <= 0.5*tolerance:
			return BandGreen
		case absDiff <= tolerance:
			return BandYellow
		default:
			return BandRed
		}
	}

	switch {
	case diffHours <= 0.25*tolerance:
		return BandGreen
	case diffHours <= 0.5*tolerance:
		return BandYellow
	default:
		return BandRed
	}
}
