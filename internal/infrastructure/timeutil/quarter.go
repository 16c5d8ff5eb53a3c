// Package timeutil provides calendar helpers for scoping tables to a fare
// quarter.
package timeutil

import "time"

// QuarterOf returns the calendar quarter (1-4) of t.
func QuarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// InQuarter reports whether t falls inside the given year and quarter.
func InQuarter(t time.Time, year, quarter int) bool {
	return t.Year() == year && QuarterOf(t) == quarter
}
