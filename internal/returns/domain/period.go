// Package domain contains the GST return period and summary shapes. All
// summaries are recomputed from persisted documents on every request; nothing
// here is stored.
package domain

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid_period")

// Period is one calendar month return period, [Start, End] inclusive.
type Period struct {
	Month int
	Year  int
	Start time.Time
	End   time.Time
}

// NewPeriod builds the period for a month (1-12) and year.
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 || year < 1 {
		return Period{}, ErrInvalidPeriod
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return Period{Month: month, Year: year, Start: start, End: end}, nil
}

// Label is the period name used in API payloads, e.g. "Apr 2024".
func (p Period) Label() string { return p.Start.Format("Jan 2006") }

// SheetLabel is the period name used on exported worksheets, e.g. "Apr-2024".
// The two formats are consumed by different downstreams and stay distinct.
func (p Period) SheetLabel() string { return p.Start.Format("Jan-2006") }
