package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// LastMonthEnd returns the most recent calendar month end on or before t.
func LastMonthEnd(t time.Time) time.Time {
	endOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	if endOfMonth.After(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)) {
		// t is mid-month, use the previous month's end
		endOfMonth = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}
	return endOfMonth
}

// MonthEnds returns n consecutive calendar month ends, the last being the
// most recent month end on or before end.
func MonthEnds(n int, end time.Time) []time.Time {
	dates := make([]time.Time, n)
	current := LastMonthEnd(end)
	for i := n - 1; i >= 0; i-- {
		dates[i] = current
		// first of current's month, minus a day, is the prior month end
		current = time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}
	return dates
}
