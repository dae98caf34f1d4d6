// Package model defines the core domain models used throughout the application.
package model

import "time"

// Order represents a single catering order parsed from a Caterease export.
// Date and Ready carry the spreadsheet's serial encoding: the integer part
// counts days from the epoch, the fractional part is the time of day.
type Order struct {
	DateTime    time.Time
	Employee    string
	Client      string
	Description string
	Origin      string
	Event       string
	Date        float64
	Ready       float64
	Grat        float64
	Total       float64
	Count       int64
	Expanded    bool
}

// TimeActivity represents one employee shift parsed from an Intuit timesheet.
type TimeActivity struct {
	InTime    time.Time
	OutTime   time.Time
	FirstName string
	LastName  string
	Hours     float64
	Miles     float64
	Matched   bool
}
