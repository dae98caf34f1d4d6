package match

import (
	"strings"
	"time"

	"github.com/jlsnow301/payroll-app/internal/model"
)

// invalidNames marks orders that have no driver to pay out.
var invalidNames = []string{"patio party", "pickup"}

// validAssignee reports whether an order's assignee can be matched against
// the timesheet at all.
func validAssignee(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}

	for _, invalid := range invalidNames {
		if strings.Contains(name, invalid) {
			return false
		}
	}

	return true
}

// withinTime reports whether two timestamps fall within precision hours of
// each other.
func withinTime(a, b time.Time, precision int) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Duration(precision)*time.Hour
}

// nameMatch pairs an order assignee with a timesheet entry. Plain orders
// carry "First Last" and match on last name; expanded orders carry a bare
// first name and match on the leading word.
func nameMatch(assignee string, activity model.TimeActivity, expanded bool) bool {
	if !expanded {
		return strings.Contains(assignee, strings.ToLower(activity.LastName))
	}

	first, _, _ := strings.Cut(assignee, " ")
	return strings.Contains(first, strings.ToLower(activity.FirstName))
}

// CrossReference greedily pairs each order with the first unconsumed
// timesheet entry whose name matches and whose clock-in lies within
// precision hours of the order's datetime. Matched entries are consumed so
// one shift never pays out twice. Orders with an unmatchable assignee are
// kept in the output but counted as skipped.
func CrossReference(orders []model.Order, activities []model.TimeActivity, precision int) model.ReferenceResult {
	var rows []model.PreparedRow
	matched := 0
	skipped := 0

	for _, order := range orders {
		entry := model.PreparedRow{Order: order}

		assignee := strings.ToLower(order.Employee)
		if !validAssignee(assignee) {
			// Patio party or something.
			rows = append(rows, entry)
			skipped++
			continue
		}

		for i := range activities {
			activity := &activities[i]
			if activity.Matched {
				continue
			}

			if !nameMatch(assignee, *activity, order.Expanded) {
				continue
			}

			if withinTime(order.DateTime, activity.InTime, precision) {
				entry.Hours = activity.Hours
				entry.Miles = activity.Miles
				in := activity.InTime
				out := activity.OutTime
				entry.SuggestedIn = &in
				entry.SuggestedOut = &out
				matched++
				activity.Matched = true

				break
			}
		}

		rows = append(rows, entry)
	}

	return model.ReferenceResult{
		Rows:    rows,
		Matched: matched,
		Skipped: skipped,
	}
}
