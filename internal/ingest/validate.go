package ingest

import (
	"fmt"

	"github.com/jlsnow301/payroll-app/internal/common"
	"github.com/jlsnow301/payroll-app/internal/model"
)

// ValidateOrders rejects an order batch the matcher cannot work with.
func ValidateOrders(orders []model.Order) error {
	if len(orders) == 0 {
		return common.ErrNoOrders
	}

	for i, order := range orders {
		if order.Date == badDateSerial {
			if i == 0 {
				return fmt.Errorf("%w: first order date is missing", common.ErrInvalidDate)
			}
			return common.ErrInvalidDate
		}
	}

	return nil
}

// ValidateTimeActivities rejects a timesheet batch with unmatchable rows.
func ValidateTimeActivities(activities []model.TimeActivity) error {
	if len(activities) == 0 {
		return common.ErrNoTimeEntries
	}

	for _, entry := range activities {
		if entry.FirstName == "" {
			return common.ErrUnknownEntry
		}
	}

	return nil
}
