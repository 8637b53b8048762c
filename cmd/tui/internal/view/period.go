package view

import "time"

// Period is a creation-date window used to filter quotations.
type Period int

const (
	PeriodAll Period = iota
	PeriodThisMonth
	PeriodLastMonth
	PeriodThisYear
)

var Periods = []Period{PeriodAll, PeriodThisMonth, PeriodLastMonth, PeriodThisYear}

func (p Period) String() string {
	switch p {
	case PeriodAll:
		return "All Time"
	case PeriodThisMonth:
		return "This Month"
	case PeriodLastMonth:
		return "Last Month"
	case PeriodThisYear:
		return "This Year"
	}

	return "Unknown"
}

// Range returns the inclusive bounds of the period relative to now.
// ok is false for PeriodAll.
func (p Period) Range(now time.Time) (start, end time.Time, ok bool) {
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	switch p {
	case PeriodThisMonth:
		start = month
	case PeriodLastMonth:
		start = month.AddDate(0, -1, 0)
	case PeriodThisYear:
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(1, 0, 0).Add(-time.Nanosecond), true
	default:
		return time.Time{}, time.Time{}, false
	}

	return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond), true
}

func (p Period) Next() Period {
	return Periods[(int(p)+1)%len(Periods)]
}
