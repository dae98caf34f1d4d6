// Package match pairs catering orders with timesheet clock entries.
package match

import (
	"strings"

	"github.com/jlsnow301/payroll-app/internal/model"
)

// assignees splits an order's delivery-person field into individual names.
// The field may carry a parenthesized helper, a comma list, or an "and"
// list. Patio parties are staffed, not delivered, and never split.
func assignees(order model.Order) []string {
	driver := order.Employee

	if strings.Contains(strings.ToLower(driver), "patio party") {
		return []string{driver}
	}

	var names []string

	if start := strings.Index(driver, "("); start >= 0 {
		if end := strings.Index(driver, ")"); end > start {
			names = append(names, driver[start+1:end])
			driver = strings.TrimSpace(driver[:start])
		}
	}

	switch {
	case strings.Contains(driver, ","):
		for _, name := range strings.Split(driver, ",") {
			names = append(names, strings.TrimSpace(name))
		}
	case strings.Contains(driver, " and "):
		for _, name := range strings.Split(driver, " and ") {
			names = append(names, strings.TrimSpace(name))
		}
	default:
		names = append(names, driver)
	}

	return names
}

// Expand duplicates multi-assignee orders into one order per driver,
// marking each copy expanded. Helpers are ordered after the primary
// driver so they match timesheet entries last.
func Expand(orders []model.Order) []model.Order {
	var expanded []model.Order

	for _, order := range orders {
		names := assignees(order)

		wasExpanded := len(names) > 1
		if wasExpanded {
			// Put helpers last.
			for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
				names[i], names[j] = names[j], names[i]
			}
		}

		for _, name := range names {
			next := order
			next.Employee = name
			next.Expanded = wasExpanded
			expanded = append(expanded, next)
		}
	}

	return expanded
}
